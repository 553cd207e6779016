package eventbuffer

// Event is one device event awaiting consumption.
type Event struct {
	Type    string
	Payload any
}

// Buffer is a fixed-capacity ring of events. When full, a push evicts the
// oldest entry. Not safe for concurrent use; the hub drives each device
// from a single goroutine.
type Buffer struct {
	events []Event
	head   int
	size   int
}

// NewBuffer returns a ring holding at most capacity events.
// Capacity must be at least 1.
func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{events: make([]Event, capacity)}
}

// Push appends an event, evicting the oldest one when the ring is full.
// It reports whether an eviction happened.
func (b *Buffer) Push(ev Event) bool {
	tail := (b.head + b.size) % len(b.events)
	b.events[tail] = ev
	if b.size < len(b.events) {
		b.size++
		return false
	}
	b.head = (b.head + 1) % len(b.events)
	return true
}

// Drain returns all buffered events oldest first and empties the ring.
func (b *Buffer) Drain() []Event {
	out := make([]Event, 0, b.size)
	for i := 0; i < b.size; i++ {
		out = append(out, b.events[(b.head+i)%len(b.events)])
	}
	b.head = 0
	b.size = 0
	return out
}

// Len returns the number of buffered events.
func (b *Buffer) Len() int { return b.size }

// Cap returns the ring capacity.
func (b *Buffer) Cap() int { return len(b.events) }
