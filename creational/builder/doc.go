// Package builder separates the construction of a House from its
// representation. A Builder accumulates parts through a fluent API and
// validates the whole only once, at Build. A Director captures recurring
// construction recipes so callers can ask for a "cabin" instead of
// repeating the steps.
//
//	house, err := builder.New().
//	    Foundation(builder.FoundationSlab).
//	    Walls(4).
//	    Doors(1).
//	    Roof(builder.RoofGable).
//	    Build()
package builder
