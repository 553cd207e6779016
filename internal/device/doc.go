// Package device implements loading and validation of per-device settings
// for the experiment I/O hub. A partial key/value document is overlaid onto
// documented defaults and checked wholesale; a device never sees a half
// applied configuration.
package device
