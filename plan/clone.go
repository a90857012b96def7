package plan

// Clone returns a deep copy of the plan. Pipeline stages clone before
// transforming so a caller's plan is never mutated across a stage
// boundary; pointer-valued optionals are re-allocated, not shared.
func (p *Plan) Clone() *Plan {
	if p == nil {
		return nil
	}
	out := &Plan{
		Walls:    make([]WallSegment, len(p.Walls)),
		Openings: make([]Opening, len(p.Openings)),
		Rooms:    make([]RoomZone, len(p.Rooms)),
		Meta:     p.Meta,
	}
	copy(out.Walls, p.Walls)
	for i, o := range p.Openings {
		out.Openings[i] = o
		out.Openings[i].ThresholdHeight = cloneFloat(o.ThresholdHeight)
		out.Openings[i].SillHeight = cloneFloat(o.SillHeight)
	}
	for i, r := range p.Rooms {
		out.Rooms[i] = r
		if r.Polygon != nil {
			out.Rooms[i].Polygon = make([]Point, len(r.Polygon))
			copy(out.Rooms[i].Polygon, r.Polygon)
		}
		out.Rooms[i].CeilingHeight = cloneFloat(r.CeilingHeight)
		if r.Stair != nil {
			stair := *r.Stair
			out.Rooms[i].Stair = &stair
		}
	}
	return out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
