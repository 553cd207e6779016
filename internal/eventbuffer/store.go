package eventbuffer

import "github.com/openexp/hubconfig/internal/device"

// Store holds one Buffer per monitored event type for a single device.
// Events of types the device does not monitor are dropped and counted.
type Store struct {
	buffers map[string]*Buffer
	dropped uint64
}

// NewStore builds the per-type buffers for the device described by s.
// Each buffer gets capacity s.EventBufferLength.
func NewStore(s *device.Settings) *Store {
	buffers := make(map[string]*Buffer, len(s.MonitorEventTypes))
	for _, eventType := range s.MonitorEventTypes {
		if _, ok := buffers[eventType]; !ok {
			buffers[eventType] = NewBuffer(s.EventBufferLength)
		}
	}
	return &Store{buffers: buffers}
}

// Add routes the event to its type's buffer. Events of unmonitored types
// are dropped; Add reports whether the event was accepted.
func (st *Store) Add(ev Event) bool {
	buf, ok := st.buffers[ev.Type]
	if !ok {
		st.dropped++
		return false
	}
	buf.Push(ev)
	return true
}

// Drain returns and clears the buffered events for one event type,
// oldest first. Unknown types yield nil.
func (st *Store) Drain(eventType string) []Event {
	buf, ok := st.buffers[eventType]
	if !ok {
		return nil
	}
	return buf.Drain()
}

// Dropped returns how many events were rejected for lack of a buffer.
func (st *Store) Dropped() uint64 { return st.dropped }

// EventTypes returns the monitored event types with a live buffer.
func (st *Store) EventTypes() []string {
	types := make([]string, 0, len(st.buffers))
	for eventType := range st.buffers {
		types = append(types, eventType)
	}
	return types
}
