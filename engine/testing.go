package engine

import "fmt"

// SceneEntity is a visual tracked by RecordingScene
type SceneEntity struct {
	Pos   Position
	Style Style
}

// RecordingScene is an in-memory Scene for tests and headless runs
// It keeps live entities and a log of every request it received
type RecordingScene struct {
	next     Handle
	Entities map[Handle]SceneEntity
	Caption  string
	Ops      []string
}

// NewRecordingScene creates an empty recording scene
func NewRecordingScene() *RecordingScene {
	return &RecordingScene{
		Entities: make(map[Handle]SceneEntity),
	}
}

func (r *RecordingScene) Spawn(pos Position, style Style) Handle {
	r.next++
	r.Entities[r.next] = SceneEntity{Pos: pos, Style: style}
	r.Ops = append(r.Ops, fmt.Sprintf("spawn %d %s %v", r.next, style, pos))
	return r.next
}

func (r *RecordingScene) Restyle(h Handle, style Style) {
	if e, ok := r.Entities[h]; ok {
		e.Style = style
		r.Entities[h] = e
	}
	r.Ops = append(r.Ops, fmt.Sprintf("restyle %d %s", h, style))
}

func (r *RecordingScene) Despawn(h Handle) {
	delete(r.Entities, h)
	r.Ops = append(r.Ops, fmt.Sprintf("despawn %d", h))
}

func (r *RecordingScene) SetCaption(text string) {
	r.Caption = text
}

// CountStyle returns the number of live entities with style
func (r *RecordingScene) CountStyle(style Style) int {
	n := 0
	for _, e := range r.Entities {
		if e.Style == style {
			n++
		}
	}
	return n
}
