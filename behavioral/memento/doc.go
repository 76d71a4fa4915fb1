// Package memento captures and restores an Editor's internal state without
// exposing it. The Editor (originator) produces opaque Snapshots; a
// Caretaker stores them in a History and hands them back for undo without
// ever looking inside.
//
// Snapshots encode to protobuf (a structpb.Struct) so histories can be kept
// in memory or persisted to a bbolt database.
package memento
