package eventbuffer_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/openexp/hubconfig/internal/device"
	"github.com/openexp/hubconfig/internal/eventbuffer"
)

func press(id int) eventbuffer.Event {
	return eventbuffer.Event{Type: "KeyboardPressEvent", Payload: id}
}

var _ = Describe("Buffer", func() {
	var buf *eventbuffer.Buffer

	BeforeEach(func() {
		buf = eventbuffer.NewBuffer(3)
	})

	It("should report its capacity", func() {
		Expect(buf.Cap()).To(Equal(3))
		Expect(buf.Len()).To(BeZero())
	})

	It("should hold events up to capacity without eviction", func() {
		Expect(buf.Push(press(1))).To(BeFalse())
		Expect(buf.Push(press(2))).To(BeFalse())
		Expect(buf.Push(press(3))).To(BeFalse())
		Expect(buf.Len()).To(Equal(3))
	})

	It("should evict the oldest event once full", func() {
		for id := 1; id <= 3; id++ {
			buf.Push(press(id))
		}
		Expect(buf.Push(press(4))).To(BeTrue())

		drained := buf.Drain()
		Expect(drained).To(HaveLen(3))
		Expect(drained[0].Payload).To(Equal(2))
		Expect(drained[1].Payload).To(Equal(3))
		Expect(drained[2].Payload).To(Equal(4))
	})

	It("should drain oldest first and leave the ring empty", func() {
		buf.Push(press(1))
		buf.Push(press(2))

		drained := buf.Drain()
		Expect(drained).To(HaveLen(2))
		Expect(drained[0].Payload).To(Equal(1))
		Expect(drained[1].Payload).To(Equal(2))
		Expect(buf.Len()).To(BeZero())
	})

	It("should keep working after a drain", func() {
		for id := 1; id <= 5; id++ {
			buf.Push(press(id))
		}
		buf.Drain()

		buf.Push(press(6))
		drained := buf.Drain()
		Expect(drained).To(HaveLen(1))
		Expect(drained[0].Payload).To(Equal(6))
	})

	It("should clamp a capacity below one", func() {
		tiny := eventbuffer.NewBuffer(0)
		Expect(tiny.Cap()).To(Equal(1))
	})
})

var _ = Describe("Store", func() {
	var store *eventbuffer.Store

	BeforeEach(func() {
		settings, err := device.Load(map[string]any{
			"name":                "keyboard",
			"event_buffer_length": 2,
			"monitor_event_types": []any{"KeyboardPressEvent", "KeyboardReleaseEvent"},
		})
		Expect(err).NotTo(HaveOccurred())
		store = eventbuffer.NewStore(settings)
	})

	It("should create one buffer per monitored event type", func() {
		Expect(store.EventTypes()).To(ConsistOf("KeyboardPressEvent", "KeyboardReleaseEvent"))
	})

	It("should route events to their type's buffer", func() {
		Expect(store.Add(press(1))).To(BeTrue())
		Expect(store.Add(eventbuffer.Event{Type: "KeyboardReleaseEvent", Payload: 2})).To(BeTrue())

		Expect(store.Drain("KeyboardPressEvent")).To(HaveLen(1))
		Expect(store.Drain("KeyboardReleaseEvent")).To(HaveLen(1))
	})

	It("should drop events of unmonitored types and count them", func() {
		Expect(store.Add(eventbuffer.Event{Type: "MouseMoveEvent"})).To(BeFalse())
		Expect(store.Add(eventbuffer.Event{Type: "MouseMoveEvent"})).To(BeFalse())
		Expect(store.Dropped()).To(Equal(uint64(2)))
	})

	It("should size each buffer from the settings", func() {
		store.Add(press(1))
		store.Add(press(2))
		store.Add(press(3))

		drained := store.Drain("KeyboardPressEvent")
		Expect(drained).To(HaveLen(2))
		Expect(drained[0].Payload).To(Equal(2))
	})

	It("should yield nil when draining an unknown type", func() {
		Expect(store.Drain("MouseMoveEvent")).To(BeNil())
	})
})
