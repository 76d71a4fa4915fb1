package mediator

import "errors"

// Sentinel errors for room membership and routing.
var (
	ErrEmptyName          = errors.New("participant name is empty")
	ErrDuplicateName      = errors.New("participant already in room")
	ErrUnknownParticipant = errors.New("participant not in room")
	ErrNotMember          = errors.New("sender has left the room")
	ErrSelfMessage        = errors.New("cannot message yourself")
)
