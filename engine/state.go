package engine

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is raised when the body is read before the run was set up
var ErrNotInitialized = errors.New("simulation not initialized")

// Prize is the single collectible cell, absent when Present is false
type Prize struct {
	Pos     Position
	Handle  Handle
	Present bool
}

// SimulationState is the authoritative snake model
// It holds no behavior beyond queries; systems mutate it through the frame
type SimulationState struct {
	Body    *Body
	Prize   Prize
	Heading Heading

	// HeadingLocked is set by the first accepted heading change and cleared by the next move
	HeadingLocked bool

	// Score counts prizes eaten during the run
	Score int
}

// NewSimulationState creates an empty state heading right
// The body is populated by Game.Reset
func NewSimulationState() *SimulationState {
	return &SimulationState{
		Body:    NewBody(),
		Heading: HeadingRight,
	}
}

// HeadPosition returns the head cell, panicking if the body is empty
func (s *SimulationState) HeadPosition() Position {
	head, ok := s.Body.Head()
	if !ok {
		panic(fmt.Errorf("head lookup: %w", ErrNotInitialized))
	}
	return head.Pos
}

// IsPrizeAt reports whether a prize is present exactly at pos
func (s *SimulationState) IsPrizeAt(pos Position) bool {
	return s.Prize.Present && s.Prize.Pos == pos
}

// PrizePresent reports whether a prize is on the board
func (s *SimulationState) PrizePresent() bool {
	return s.Prize.Present
}

// Length returns the body length
func (s *SimulationState) Length() int {
	return s.Body.Len()
}

// Positions returns the body cells head to tail
func (s *SimulationState) Positions() []Position {
	segs := s.Body.Segments()
	out := make([]Position, len(segs))
	for i, seg := range segs {
		out[i] = seg.Pos
	}
	return out
}

// Caption formats the score line shown to the player
func (s *SimulationState) Caption() string {
	return fmt.Sprintf("Scores: %d  Length: %d", s.Score, s.Body.Len())
}
