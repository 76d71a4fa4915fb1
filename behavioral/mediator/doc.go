// Package mediator routes chat messages between participants through a
// ChatRoom. Participants never hold references to each other: they only
// know the room, and the room decides who receives what.
//
// Three routing modes are supported:
//
//   - direct: one sender, one named recipient
//   - broadcast: everyone in the room except the sender
//   - topic: everyone subscribed to a topic except the sender
//
// Delivery is synchronous; when Send returns the message is in the
// recipients' inboxes.
//
//	room := mediator.NewRoom("lobby", nil)
//	alice, _ := room.Join("alice")
//	bob, _ := room.Join("bob")
//	_ = alice.Send(ctx, "bob", "hi")
//	bob.Inbox() // [alice -> bob: hi]
package mediator
