package formstate

import (
	"sync"

	"github.com/enetx/g"
)

type (
	// FormName identifies a form in the root state.
	FormName g.String
	// FieldName identifies a field within a form.
	FieldName g.String

	// State is the root forms state: every mounted form keyed by its name.
	// A form absent from the map is not mounted.
	State g.Map[FormName, FormState]

	// FormState tracks the registered fields of one form, their aggregate
	// validity and the initial values used by reset.
	FormState struct {
		Name          FormName                     `json:"name"`
		Fields        g.Map[FieldName, FieldState] `json:"fields"`
		Invalid       bool                         `json:"invalid"`
		InitialValues g.Map[FieldName, any]        `json:"initialValues"`
	}

	// FieldState tracks value, focus, touch, validation error and the number
	// of bound elements sharing the field name.
	// A nil Value means the field has no value; an empty Error means no error.
	FieldState struct {
		Value   any      `json:"value"`
		Focus   bool     `json:"focus"`
		Touched bool     `json:"touched"`
		Error   g.String `json:"error,omitempty"`
		Count   int      `json:"count"`
	}

	// DispatchHook is called after every dispatched action has been reduced.
	// On a SyncStore it runs while the store's lock is held, so it must not
	// call back into that SyncStore.
	DispatchHook func(ctx *Context) error
	// Listener is called with the new root state whenever a dispatch changed it.
	Listener func(state State)

	// Store is a state container that feeds dispatched actions through Reduce.
	Store struct {
		state     State
		hooks     g.Slice[DispatchHook]
		listeners g.Slice[subscription]
		nextID    int
	}

	// subscription pairs a listener with the id used to remove it.
	subscription struct {
		id       int
		listener Listener
	}

	// SyncStore is a thread-safe wrapper around a Store.
	// It protects all state-mutating and state-reading operations with a sync.RWMutex,
	// making it safe for use across multiple goroutines.
	SyncStore struct {
		store *Store
		mu    sync.RWMutex
	}
)
