package transfer

import (
	"FreshKeep-Backend/domain"
)

// State is a product's lifecycle state. Purchased and Removed are
// terminal; a repurchase creates a new product rather than resurrecting
// the old one.
type State string

const (
	StateInFridge  State = "InFridge"
	StateInCart    State = "InCart"
	StatePurchased State = "Purchased"
	StateRemoved   State = "Removed"
)

type Event string

const (
	EventDelete         Event = "delete"
	EventAddToCart      Event = "add-to-cart"
	EventMarkPurchased  Event = "mark-purchased"
	EventRemoveFromCart Event = "remove-from-cart"
)

// add-to-cart is legal again from InCart: repeated invocations create
// additional shopping list entries (duplicate-tolerant, not deduplicated).
var transitions = map[State]map[Event]State{
	StateInFridge: {
		EventDelete:    StateRemoved,
		EventAddToCart: StateInCart,
	},
	StateInCart: {
		EventAddToCart:      StateInCart,
		EventMarkPurchased:  StatePurchased,
		EventRemoveFromCart: StateRemoved,
	},
}

// Next returns the state reached by applying event to state. An event not
// listed for the current state returns ErrInvalidTransition and the state
// is unchanged; no transition ever skips a state.
func Next(state State, event Event) (State, error) {
	next, ok := transitions[state][event]
	if !ok {
		return state, domain.ErrInvalidTransition
	}
	return next, nil
}
