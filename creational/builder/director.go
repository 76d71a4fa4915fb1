package builder

// Director knows the recipes for common houses. It drives any Builder and
// leaves Build to the caller, so a recipe can still be customised.
type Director struct{}

// Cabin is a single-room, single-floor house on piles.
func (Director) Cabin(b *Builder) *Builder {
	return b.Reset().
		Foundation(FoundationPiles).
		Walls(4).
		Doors(1).
		Windows(2).
		Roof(RoofGable)
}

// Villa is a two-floor house with basement, garage and pool.
func (Director) Villa(b *Builder) *Builder {
	return b.Reset().
		Foundation(FoundationBasement).
		Walls(12).
		Floors(2).
		Doors(3).
		Windows(16).
		Roof(RoofHip).
		WithGarage().
		WithPool()
}
