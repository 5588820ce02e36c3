package engine

import "github.com/gammazero/deque"

// Segment is one occupied body cell and the handle of its visual
type Segment struct {
	Pos    Position
	Handle Handle
}

// Body is the ordered chain of segments, front is the head and back is the tail
type Body struct {
	segments deque.Deque[Segment]
}

// NewBody creates an empty body
func NewBody() *Body {
	return &Body{}
}

// PushHead prepends a new head segment
func (b *Body) PushHead(s Segment) {
	b.segments.PushFront(s)
}

// PopTail removes and returns the tail segment, false if the body is empty
func (b *Body) PopTail() (Segment, bool) {
	if b.segments.Len() == 0 {
		return Segment{}, false
	}
	return b.segments.PopBack(), true
}

// Head returns the front segment, false if the body is empty
func (b *Body) Head() (Segment, bool) {
	if b.segments.Len() == 0 {
		return Segment{}, false
	}
	return b.segments.Front(), true
}

// Tail returns the back segment, false if the body is empty
func (b *Body) Tail() (Segment, bool) {
	if b.segments.Len() == 0 {
		return Segment{}, false
	}
	return b.segments.Back(), true
}

// Len returns the number of segments
func (b *Body) Len() int {
	return b.segments.Len()
}

// At returns the i-th segment counting from the head
func (b *Body) At(i int) Segment {
	return b.segments.At(i)
}

// Segments returns a head-to-tail copy of the body
func (b *Body) Segments() []Segment {
	out := make([]Segment, b.segments.Len())
	for i := range out {
		out[i] = b.segments.At(i)
	}
	return out
}

// Clear drops every segment
func (b *Body) Clear() {
	b.segments.Clear()
}
