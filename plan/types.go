package plan

import (
	"math"

	"github.com/google/uuid"
)

// Wall thickness bounds in meters, enforced by WallSegment.Validate.
const (
	MinWallThickness = 0.08
	MaxWallThickness = 0.6
)

// Point is a 2D coordinate in meters.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// WallSegment is a straight wall between two points.
type WallSegment struct {
	ID        string   `json:"id"`
	Start     Point    `json:"start"`
	End       Point    `json:"end"`
	Thickness float64  `json:"thickness"`
	Type      WallType `json:"type"`
	Material  Material `json:"material"`
	External  bool     `json:"isExternal"`
}

// Length returns the wall's length in meters.
func (w WallSegment) Length() float64 {
	return math.Hypot(w.End.X-w.Start.X, w.End.Y-w.Start.Y)
}

// Angle returns the wall's direction in degrees within [0, 360),
// measured counterclockwise from the positive X axis.
func (w WallSegment) Angle() float64 {
	deg := math.Atan2(w.End.Y-w.Start.Y, w.End.X-w.Start.X) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// PointAt returns the point at distance dist from the wall's start,
// by linear interpolation along the segment. A zero-length wall returns
// its start point.
func (w WallSegment) PointAt(dist float64) Point {
	length := w.Length()
	if length == 0 {
		return w.Start
	}
	t := dist / length
	return Point{
		X: w.Start.X + (w.End.X-w.Start.X)*t,
		Y: w.Start.Y + (w.End.Y-w.Start.Y)*t,
	}
}

// Validate checks the wall's intrinsic invariants: distinct endpoints and
// thickness within [MinWallThickness, MaxWallThickness].
func (w WallSegment) Validate() error {
	if w.Start == w.End {
		return ErrDegenerateWall
	}
	if w.Thickness < MinWallThickness || w.Thickness > MaxWallThickness {
		return ErrBadThickness
	}
	return nil
}

// Opening is a door or window cut into a wall. DistFromStart is the
// offset in meters of the opening's near edge, measured from the wall's
// start point along the wall.
type Opening struct {
	ID              string      `json:"id"`
	WallID          string      `json:"wallId"`
	Type            OpeningType `json:"type"`
	Width           float64     `json:"width"`
	Height          float64     `json:"height"`
	DistFromStart   float64     `json:"distFromStart"`
	Swing           Swing       `json:"swing,omitempty"`
	ThresholdHeight *float64    `json:"thresholdHeight,omitempty"`
	SillHeight      *float64    `json:"sillHeight,omitempty"`
}

// ValidateAgainst checks the opening's placement on its host wall:
// the offset must lie within [0, wall length], and offset+width should
// not run past the wall's end.
func (o Opening) ValidateAgainst(w WallSegment) error {
	length := w.Length()
	if o.DistFromStart < 0 || o.DistFromStart > length {
		return ErrOpeningOutOfBounds
	}
	if o.DistFromStart+o.Width > length {
		return ErrOpeningOutOfBounds
	}
	return nil
}

// Area is a measured quantity in square meters.
type Area struct {
	Value float64 `json:"value"`
}

// StairGeometry carries the step dimensions needed by the stair-formula
// rule. All values are meters; Headroom is the clear height over the
// flight.
type StairGeometry struct {
	Rise     float64 `json:"rise"`
	Tread    float64 `json:"tread"`
	Headroom float64 `json:"headroom"`
}

// RoomZone is a labeled region of the plan. Polygon is optional: plans
// from early generation passes often carry only a center and an area.
type RoomZone struct {
	ID            string         `json:"id"`
	Label         string         `json:"label"`
	Type          RoomType       `json:"type"`
	Area          Area           `json:"area"`
	Center        Point          `json:"center"`
	Polygon       []Point        `json:"polygon,omitempty"`
	CeilingHeight *float64       `json:"ceilingHeight,omitempty"`
	Stair         *StairGeometry `json:"stair,omitempty"`
}

// Validate checks the room's intrinsic invariant: positive area.
func (r RoomZone) Validate() error {
	if r.Area.Value <= 0 {
		return ErrNonPositiveArea
	}
	return nil
}

// Metadata carries plan-level fields that are not geometry.
type Metadata struct {
	TargetArea float64 `json:"targetArea,omitempty"`
	FloorLabel string  `json:"floorLabel,omitempty"`
}

// Plan is one floor of a building: an ordered wall list plus the
// openings and rooms that reference it. Exactly one owner mutates a Plan
// per pipeline pass; stages receive and return clones.
type Plan struct {
	Walls    []WallSegment `json:"walls"`
	Openings []Opening     `json:"openings"`
	Rooms    []RoomZone    `json:"rooms"`
	Meta     Metadata      `json:"metadata"`
}

// WallIndex returns a lookup from wall ID to wall. Later duplicates win,
// mirroring how the document is interpreted upstream.
func (p *Plan) WallIndex() map[string]WallSegment {
	idx := make(map[string]WallSegment, len(p.Walls))
	for _, w := range p.Walls {
		idx[w.ID] = w
	}
	return idx
}

// TotalRoomArea sums all room areas in square meters.
func (p *Plan) TotalRoomArea() float64 {
	var total float64
	for _, r := range p.Rooms {
		total += r.Area.Value
	}
	return total
}

// ExteriorWalls returns the walls flagged external, in document order.
func (p *Plan) ExteriorWalls() []WallSegment {
	var ext []WallSegment
	for _, w := range p.Walls {
		if w.External {
			ext = append(ext, w)
		}
	}
	return ext
}

// NewWall builds a wall segment, minting a UUID when id is empty.
func NewWall(id string, start, end Point, thickness float64, typ WallType, mat Material, external bool) WallSegment {
	if id == "" {
		id = uuid.NewString()
	}
	return WallSegment{
		ID:        id,
		Start:     start,
		End:       end,
		Thickness: thickness,
		Type:      typ,
		Material:  mat,
		External:  external,
	}
}

// NewOpening builds an opening, minting a UUID when id is empty.
func NewOpening(id, wallID string, typ OpeningType, width, height, distFromStart float64) Opening {
	if id == "" {
		id = uuid.NewString()
	}
	return Opening{
		ID:            id,
		WallID:        wallID,
		Type:          typ,
		Width:         width,
		Height:        height,
		DistFromStart: distFromStart,
	}
}

// NewRoom builds a room zone, minting a UUID when id is empty.
func NewRoom(id, label string, typ RoomType, area float64, center Point) RoomZone {
	if id == "" {
		id = uuid.NewString()
	}
	return RoomZone{
		ID:     id,
		Label:  label,
		Type:   typ,
		Area:   Area{Value: area},
		Center: center,
	}
}
