package event

import "github.com/lixenwraith/vi-pong/parameter"

// Queue is a fixed-size FIFO ring buffer for game events
// Single owner: the engine pushes during a frame, the driver drains between frames
// Overflow: oldest events are overwritten when full
type Queue struct {
	events [parameter.EventQueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event, dropping the oldest one when the buffer is full
func (q *Queue) Push(ev GameEvent) {
	q.events[q.tail&parameter.EventBufferMask] = ev
	q.tail++
	if q.tail-q.head > parameter.EventQueueSize {
		q.head = q.tail - parameter.EventQueueSize
	}
}

// Consume returns all pending events in FIFO order and empties the queue
// Returns nil when nothing is pending
func (q *Queue) Consume() []GameEvent {
	n := q.tail - q.head
	if n == 0 {
		return nil
	}
	result := make([]GameEvent, 0, n)
	for i := q.head; i < q.tail; i++ {
		result = append(result, q.events[i&parameter.EventBufferMask])
	}
	q.head = q.tail
	return result
}

// Len returns the pending event count
func (q *Queue) Len() int {
	return int(q.tail - q.head)
}

// Clear drops pending events
func (q *Queue) Clear() {
	q.head = q.tail
}
