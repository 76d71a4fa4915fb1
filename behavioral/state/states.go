package state

// Action is something a customer or the warehouse does to an order.
type Action string

const (
	ActionPay     Action = "pay"
	ActionShip    Action = "ship"
	ActionDeliver Action = "deliver"
	ActionCancel  Action = "cancel"
)

// State is one stage of the order lifecycle. Next returns the stage the
// action leads to, or false when the action is not allowed here.
type State interface {
	Name() string
	Next(a Action) (State, bool)
	Terminal() bool
}

type (
	pending   struct{}
	paid      struct{}
	shipped   struct{}
	delivered struct{}
	cancelled struct{}
)

// Stage values.
var (
	Pending   State = pending{}
	Paid      State = paid{}
	Shipped   State = shipped{}
	Delivered State = delivered{}
	Cancelled State = cancelled{}
)

func (pending) Name() string   { return "pending" }
func (paid) Name() string      { return "paid" }
func (shipped) Name() string   { return "shipped" }
func (delivered) Name() string { return "delivered" }
func (cancelled) Name() string { return "cancelled" }

func (pending) Terminal() bool   { return false }
func (paid) Terminal() bool      { return false }
func (shipped) Terminal() bool   { return false }
func (delivered) Terminal() bool { return true }
func (cancelled) Terminal() bool { return true }

func (pending) Next(a Action) (State, bool) {
	switch a {
	case ActionPay:
		return Paid, true
	case ActionCancel:
		return Cancelled, true
	}
	return nil, false
}

func (paid) Next(a Action) (State, bool) {
	switch a {
	case ActionShip:
		return Shipped, true
	case ActionCancel:
		return Cancelled, true
	}
	return nil, false
}

func (shipped) Next(a Action) (State, bool) {
	if a == ActionDeliver {
		return Delivered, true
	}
	return nil, false
}

func (delivered) Next(Action) (State, bool) { return nil, false }
func (cancelled) Next(Action) (State, bool) { return nil, false }
