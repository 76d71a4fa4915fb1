// Package visitor separates operations on shapes from the shapes
// themselves. Circle, Rectangle and Triangle only know how to Accept a
// Visitor; area, perimeter and description live in the visitors, so a new
// operation is a new Visitor and no shape changes.
package visitor
