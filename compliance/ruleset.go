package compliance

// RuleSet toggles individual rules. The zero value disables everything;
// start from DefaultRuleSet and switch off what a call does not need.
type RuleSet struct {
	RoomArea      bool `yaml:"room_area"`
	CeilingHeight bool `yaml:"ceiling_height"`
	DoorWidth     bool `yaml:"door_width"`
	NaturalLight  bool `yaml:"natural_light"`
	Connectivity  bool `yaml:"connectivity"`
	OpeningRefs   bool `yaml:"opening_refs"`
	Egress        bool `yaml:"egress"`
	RescueWindow  bool `yaml:"rescue_window"`
	Bathroom      bool `yaml:"bathroom"`
	Threshold     bool `yaml:"threshold"`
	Layout        bool `yaml:"layout"`
}

// DefaultRuleSet enables every rule.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		RoomArea:      true,
		CeilingHeight: true,
		DoorWidth:     true,
		NaturalLight:  true,
		Connectivity:  true,
		OpeningRefs:   true,
		Egress:        true,
		RescueWindow:  true,
		Bathroom:      true,
		Threshold:     true,
		Layout:        true,
	}
}
