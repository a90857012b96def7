package compliance

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/planforge/planforge/plan"
)

// BuildingCode is the process-wide read-only constants table the rule
// engine evaluates against. Construct it once with DefaultBuildingCode
// (or layer a YAML override with LoadBuildingCode) and pass it
// explicitly into Evaluate. Lengths are meters, areas square meters.
type BuildingCode struct {
	// MinRoomArea maps room types to their minimum floor area. Types
	// absent from the map carry no area requirement.
	MinRoomArea map[plan.RoomType]float64 `yaml:"min_room_area"`

	// Ceiling minimums for habitable and non-habitable rooms.
	MinCeilingHabitable float64 `yaml:"min_ceiling_habitable"`
	MinCeilingOther     float64 `yaml:"min_ceiling_other"`

	// Door widths: below MinDoorWidth is a violation, below
	// RecommendedDoorWidth a warning.
	MinDoorWidth         float64 `yaml:"min_door_width"`
	RecommendedDoorWidth float64 `yaml:"recommended_door_width"`

	// Natural light: total window area must be at least MinLightRatio of
	// the room area. Windows are associated with a room when their wall
	// position lies within LightSearchCoeff·√(room area) of the room
	// center.
	MinLightRatio    float64 `yaml:"min_light_ratio"`
	LightSearchCoeff float64 `yaml:"light_search_coeff"`

	// Egress ceilings: straight-line distance from a room's center to
	// the nearest exterior door.
	MaxEgressDistance float64 `yaml:"max_egress_distance"`
	MaxBedroomEgress  float64 `yaml:"max_bedroom_egress"`

	// Rescue windows: a bedroom window qualifies when width+height meets
	// this sum.
	MinRescueOpening float64 `yaml:"min_rescue_opening"`

	// Bathroom accessibility: minimum clear turning-circle diameter; the
	// room footprint must fit it, and the door must swing outward.
	TurningCircle float64 `yaml:"turning_circle"`

	// Threshold height ceiling for door openings that specify one.
	MaxThresholdHeight float64 `yaml:"max_threshold_height"`

	// Corridor and utility heuristics.
	MinCorridorWidth float64 `yaml:"min_corridor_width"`
	MinUtilityArea   float64 `yaml:"min_utility_area"`

	// Stair geometry: 2×rise+tread must land inside
	// [StairFormulaMin, StairFormulaMax], rise capped, headroom floored.
	StairFormulaMin  float64 `yaml:"stair_formula_min"`
	StairFormulaMax  float64 `yaml:"stair_formula_max"`
	MaxStairRise     float64 `yaml:"max_stair_rise"`
	MinStairHeadroom float64 `yaml:"min_stair_headroom"`
}

// DefaultBuildingCode returns the built-in constants table.
func DefaultBuildingCode() BuildingCode {
	return BuildingCode{
		MinRoomArea: map[plan.RoomType]float64{
			plan.RoomLiving:   12.0,
			plan.RoomBedroom:  7.0,
			plan.RoomKitchen:  7.0,
			plan.RoomBathroom: 3.0,
			plan.RoomWC:       1.2,
			plan.RoomSauna:    2.0,
			plan.RoomUtility:  3.0,
			plan.RoomStorage:  1.0,
			plan.RoomStairs:   2.5,
		},
		MinCeilingHabitable:  2.3,
		MinCeilingOther:      2.1,
		MinDoorWidth:         0.77,
		RecommendedDoorWidth: 0.9,
		MinLightRatio:        0.10,
		LightSearchCoeff:     0.75,
		MaxEgressDistance:    25.0,
		MaxBedroomEgress:     15.0,
		MinRescueOpening:     1.5,
		TurningCircle:        1.3,
		MaxThresholdHeight:   0.025,
		MinCorridorWidth:     0.9,
		MinUtilityArea:       3.0,
		StairFormulaMin:      0.61,
		StairFormulaMax:      0.63,
		MaxStairRise:         0.21,
		MinStairHeadroom:     2.0,
	}
}

// LoadBuildingCode layers a YAML document over DefaultBuildingCode.
// Fields absent from the document keep their defaults; min_room_area
// entries merge over the default table key by key.
func LoadBuildingCode(data []byte) (BuildingCode, error) {
	code := DefaultBuildingCode()
	if err := yaml.Unmarshal(data, &code); err != nil {
		return BuildingCode{}, err
	}
	return code, nil
}

// LoadBuildingCodeFile reads a YAML building-code file. See
// LoadBuildingCode.
func LoadBuildingCodeFile(path string) (BuildingCode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BuildingCode{}, err
	}
	return LoadBuildingCode(data)
}
