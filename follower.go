package tether

import (
	"fmt"
	"math"
)

// FollowerLink makes an object track a leader's world translation at a fixed
// offset. The horizontal axis wraps inside a window of width Span centered on
// the leader, so a strip of followers tiles seamlessly however far the leader
// moves. A zero Span disables wrapping.
type FollowerLink struct {
	Leader ObjectID
	Offset Vec2
	Span   float64
}

// StripConfig lays out a row of followers at fixed spacing.
type StripConfig struct {
	Spacing float64 `yaml:"spacing"`
	Count   int     `yaml:"count"`
	// StartX is the horizontal offset of the first follower from the leader.
	StartX float64 `yaml:"start_x"`
	// OffsetY is the vertical offset shared by every follower.
	OffsetY float64 `yaml:"offset_y"`
}

// Span returns the total width tiled by the strip.
func (c StripConfig) Span() float64 {
	return c.Spacing * float64(c.Count)
}

// Validate checks that the strip can tile.
func (c StripConfig) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("follower strip: count must be positive, got %d", c.Count)
	}
	if !(c.Spacing > 0) || math.IsInf(c.Spacing, 0) {
		return fmt.Errorf("follower strip: spacing must be positive, got %v", c.Spacing)
	}
	return nil
}

// SpawnFollowerStrip spawns cfg.Count followers of leader named "<name>-<i>"
// and returns their ids in layout order. Panics on an invalid config.
func (r *Registry) SpawnFollowerStrip(leader ObjectID, name string, cfg StripConfig) []ObjectID {
	r.mustGet(leader)
	if err := cfg.Validate(); err != nil {
		panic("tether: " + err.Error())
	}
	span := cfg.Span()
	ids := make([]ObjectID, cfg.Count)
	for i := range cfg.Count {
		id := r.Spawn(fmt.Sprintf("%s-%d", name, i))
		r.SetFollower(id, FollowerLink{
			Leader: leader,
			Offset: Vec2{cfg.StartX + float64(i)*cfg.Spacing, cfg.OffsetY},
			Span:   span,
		})
		ids[i] = id
	}
	return ids
}

// wrapInto reduces x into the half-open window (center-span/2, center+span/2].
func wrapInto(x, center, span float64) float64 {
	if !(span > 0) || math.IsInf(span, 0) {
		return x
	}
	half := span / 2
	rel := x - center
	// Closed form, then at most one correction step each way for rounding.
	rel -= math.Ceil((rel-half)/span) * span
	if rel > half {
		rel -= span
	}
	if rel <= -half {
		rel += span
	}
	return center + rel
}

// propagateFollowers moves every follower after the leaders have settled for
// the frame. Followers of dead leaders stay where they are.
func (s *Scene) propagateFollowers() {
	reg := s.reg
	for i := 1; i < len(reg.follower); i++ {
		link := reg.follower[i]
		if link == nil || !reg.Alive(link.Leader) {
			continue
		}
		lp := reg.WorldPosition(link.Leader)
		x := wrapInto(lp.X+link.Offset.X, lp.X, link.Span)
		y := lp.Y + link.Offset.Y
		reg.SetWorldPosition(ObjectID(i), x, y)
	}
}
