package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/planforge/planforge/plan"
)

// TestEnums_Valid walks the closed enumerations and their rejects.
func TestEnums_Valid(t *testing.T) {
	assert.True(t, plan.WallExterior.Valid())
	assert.False(t, plan.WallType("drywall").Valid())

	assert.True(t, plan.MaterialTimber.Valid())
	assert.False(t, plan.Material("adobe").Valid())

	assert.True(t, plan.OpeningSlidingDoor.Valid())
	assert.False(t, plan.OpeningType("hatch").Valid())

	assert.True(t, plan.SwingLeft.Valid())
	assert.True(t, plan.Swing("").Valid(), "absent swing is tolerated; rules downgrade to a warning")
	assert.False(t, plan.Swing("up").Valid())

	assert.True(t, plan.RoomSauna.Valid())
	assert.False(t, plan.RoomType("garage").Valid())
}

// TestOpeningType_Predicates covers the door/window split driving the
// egress and natural-light rules.
func TestOpeningType_Predicates(t *testing.T) {
	assert.True(t, plan.OpeningDoor.IsDoor())
	assert.True(t, plan.OpeningDoubleDoor.IsDoor())
	assert.False(t, plan.OpeningWindow.IsDoor())

	assert.True(t, plan.OpeningWindow.IsWindow())
	assert.True(t, plan.OpeningRoofWindow.IsWindow())
	assert.False(t, plan.OpeningSlidingDoor.IsWindow())
}

// TestRoomType_Habitable pins the habitable split used by the ceiling
// and natural-light rules.
func TestRoomType_Habitable(t *testing.T) {
	habitable := []plan.RoomType{plan.RoomLiving, plan.RoomBedroom, plan.RoomKitchen}
	for _, rt := range habitable {
		assert.True(t, rt.Habitable(), "%s should be habitable", rt)
	}
	other := []plan.RoomType{plan.RoomBathroom, plan.RoomWC, plan.RoomCorridor, plan.RoomStorage, plan.RoomStairs, plan.RoomBalcony}
	for _, rt := range other {
		assert.False(t, rt.Habitable(), "%s should not be habitable", rt)
	}
}
