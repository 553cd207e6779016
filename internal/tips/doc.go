// Package tips serves the startup hint strings shown by the hosting
// application. Tip lists are embedded per locale, loaded once, and
// exposed read-only; selection strategies pick the next tip to show:
//
//   - Cyclic: sequential rotation through the list
//   - Random: uniform random pick
//
// Locale lookup falls back to the configured default locale, so a request
// for an unknown locale never fails.
package tips
