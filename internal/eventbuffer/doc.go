// Package eventbuffer provides the fixed-capacity event queues backing a
// monitored device: one oldest-evicted ring per monitored event type, sized
// by the device's event_buffer_length setting.
package eventbuffer
