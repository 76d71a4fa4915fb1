// Package command turns calculator operations into objects. An Invoker
// executes commands against a Calculator and keeps them on undo and redo
// stacks, so every operation can be reversed without the caller knowing
// how. Division guards against a zero divisor before touching the value.
package command
