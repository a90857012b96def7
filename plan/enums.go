package plan

// WallType classifies a wall segment's structural role. Values match the
// external document vocabulary verbatim.
type WallType string

const (
	// WallExterior is an insulated envelope wall.
	WallExterior WallType = "exterior-insulated"
	// WallPartition is a non-bearing interior wall.
	WallPartition WallType = "interior-partition"
	// WallLoadBearing carries structural load.
	WallLoadBearing WallType = "load-bearing"
	// WallFireRated is a fire-compartmentation wall.
	WallFireRated WallType = "fire-rated"
)

// Valid reports whether t is one of the closed WallType values.
func (t WallType) Valid() bool {
	switch t {
	case WallExterior, WallPartition, WallLoadBearing, WallFireRated:
		return true
	}
	return false
}

// Material identifies a wall's construction material.
type Material string

const (
	MaterialConcrete Material = "concrete"
	MaterialBrick    Material = "brick"
	MaterialTimber   Material = "timber"
	MaterialSteel    Material = "steel"
	MaterialGypsum   Material = "gypsum"
	MaterialGlass    Material = "glass"
	MaterialLog      Material = "log"
)

// Valid reports whether m is one of the closed Material values.
func (m Material) Valid() bool {
	switch m {
	case MaterialConcrete, MaterialBrick, MaterialTimber, MaterialSteel,
		MaterialGypsum, MaterialGlass, MaterialLog:
		return true
	}
	return false
}

// OpeningType classifies a wall opening.
type OpeningType string

const (
	OpeningDoor        OpeningType = "door"
	OpeningDoubleDoor  OpeningType = "double-door"
	OpeningSlidingDoor OpeningType = "sliding-door"
	OpeningWindow      OpeningType = "window"
	OpeningFixedWindow OpeningType = "fixed-window"
	OpeningRoofWindow  OpeningType = "roof-window"
)

// Valid reports whether t is one of the closed OpeningType values.
func (t OpeningType) Valid() bool {
	switch t {
	case OpeningDoor, OpeningDoubleDoor, OpeningSlidingDoor,
		OpeningWindow, OpeningFixedWindow, OpeningRoofWindow:
		return true
	}
	return false
}

// IsDoor reports whether the opening is any door variant.
func (t OpeningType) IsDoor() bool {
	return t == OpeningDoor || t == OpeningDoubleDoor || t == OpeningSlidingDoor
}

// IsWindow reports whether the opening is any window variant.
func (t OpeningType) IsWindow() bool {
	return t == OpeningWindow || t == OpeningFixedWindow || t == OpeningRoofWindow
}

// Swing records which way a door leaf opens relative to the wall,
// looking along the wall from its start point. SwingNone covers sliding
// doors and windows.
type Swing string

const (
	SwingLeft  Swing = "left"
	SwingRight Swing = "right"
	SwingNone  Swing = "none"
)

// Valid reports whether s is one of the closed Swing values. The empty
// string is also accepted: upstream generators frequently omit the field,
// and rules downgrade to a manual-verification warning in that case.
func (s Swing) Valid() bool {
	switch s {
	case SwingLeft, SwingRight, SwingNone, "":
		return true
	}
	return false
}

// RoomType classifies a room zone. The habitable/non-habitable split
// drives ceiling-height and natural-light rules.
type RoomType string

const (
	RoomLiving   RoomType = "living"
	RoomBedroom  RoomType = "bedroom"
	RoomKitchen  RoomType = "kitchen"
	RoomBathroom RoomType = "bathroom"
	RoomWC       RoomType = "wc"
	RoomSauna    RoomType = "sauna"
	RoomCorridor RoomType = "corridor"
	RoomUtility  RoomType = "utility"
	RoomStorage  RoomType = "storage"
	RoomStairs   RoomType = "stairs"
	RoomBalcony  RoomType = "balcony"
)

// Valid reports whether t is one of the closed RoomType values.
func (t RoomType) Valid() bool {
	switch t {
	case RoomLiving, RoomBedroom, RoomKitchen, RoomBathroom, RoomWC,
		RoomSauna, RoomCorridor, RoomUtility, RoomStorage, RoomStairs,
		RoomBalcony:
		return true
	}
	return false
}

// Habitable reports whether rooms of this type are living space in the
// building-code sense (occupied for extended periods, daylight required).
func (t RoomType) Habitable() bool {
	switch t {
	case RoomLiving, RoomBedroom, RoomKitchen:
		return true
	}
	return false
}
