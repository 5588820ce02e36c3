package engine

import (
	"errors"
	"testing"
)

func TestBodyPushAndPop(t *testing.T) {
	b := NewBody()

	if _, ok := b.Head(); ok {
		t.Fatal("Expected no head on empty body")
	}
	if _, ok := b.PopTail(); ok {
		t.Fatal("Expected PopTail to fail on empty body")
	}

	b.PushHead(Segment{Pos: Position{X: 0}, Handle: 1})
	b.PushHead(Segment{Pos: Position{X: 20}, Handle: 2})
	b.PushHead(Segment{Pos: Position{X: 40}, Handle: 3})

	if b.Len() != 3 {
		t.Fatalf("Expected length 3, got %d", b.Len())
	}

	if tail, _ := b.Tail(); tail.Handle != 1 {
		t.Errorf("Expected first push at tail, got handle %d", tail.Handle)
	}

	head, _ := b.Head()
	if head.Handle != 3 {
		t.Errorf("Expected most recent push at head, got handle %d", head.Handle)
	}

	tail, ok := b.PopTail()
	if !ok || tail.Handle != 1 {
		t.Errorf("Expected oldest segment at tail, got %+v", tail)
	}

	segs := b.Segments()
	if len(segs) != 2 || segs[0].Handle != 3 || segs[1].Handle != 2 {
		t.Errorf("Unexpected head-to-tail order: %+v", segs)
	}
	if b.At(1).Pos != (Position{X: 20}) {
		t.Errorf("Expected At(1) at (20,0), got %v", b.At(1).Pos)
	}

	b.Clear()
	if b.Len() != 0 {
		t.Errorf("Expected empty body after Clear, got %d", b.Len())
	}
}

func TestStateQueries(t *testing.T) {
	s := NewSimulationState()
	s.Body.PushHead(Segment{Pos: Position{X: 20, Y: 40}})
	s.Prize = Prize{Pos: Position{X: 0, Y: 200}, Present: true}

	if s.HeadPosition() != (Position{X: 20, Y: 40}) {
		t.Errorf("Unexpected head position %v", s.HeadPosition())
	}
	if !s.PrizePresent() {
		t.Error("Expected prize present")
	}
	if !s.IsPrizeAt(Position{X: 0, Y: 200}) {
		t.Error("Expected prize at (0,200)")
	}
	if s.IsPrizeAt(Position{X: 0, Y: 180}) || s.IsPrizeAt(Position{X: 20, Y: 200}) {
		t.Error("Prize match must require both axes")
	}

	s.Prize.Present = false
	if s.IsPrizeAt(Position{X: 0, Y: 200}) {
		t.Error("Absent prize must never match")
	}
}

func TestHeadPositionPanicsWhenUninitialized(t *testing.T) {
	s := NewSimulationState()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected panic on empty body")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("Expected error panic value, got %T", r)
		}
		if !errors.Is(err, ErrNotInitialized) {
			t.Errorf("Expected ErrNotInitialized, got %v", err)
		}
	}()

	s.HeadPosition()
}
