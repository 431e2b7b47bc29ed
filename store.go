package formstate

import (
	"fmt"
	"reflect"

	"github.com/enetx/g"
)

// NewStore creates a store holding initial. A nil initial state starts
// with no mounted forms.
func NewStore(initial State) *Store {
	if initial == nil {
		initial = State{}
	}

	return &Store{
		state:     initial,
		hooks:     g.NewSlice[DispatchHook](),
		listeners: g.NewSlice[subscription](),
	}
}

// State returns the current root state. Callers must treat it as immutable
// and read it again after every dispatch.
func (s *Store) State() State { return s.state }

// Form returns the named form, or None when it is not mounted.
func (s *Store) Form(name FormName) g.Option[FormState] {
	return g.Map[FormName, FormState](s.state).Get(name)
}

// Field returns a registered field of a mounted form.
func (s *Store) Field(form FormName, field FieldName) g.Option[FieldState] {
	fs := s.Form(form)
	if fs.IsNone() {
		return g.None[FieldState]()
	}

	return fs.Some().Fields.Get(field)
}

// Actions returns the action factory for the named form.
func (s *Store) Actions(name FormName) Factory { return Actions(name) }

// OnDispatch registers a hook called after every dispatched action,
// including actions that left the state unchanged.
func (s *Store) OnDispatch(hook DispatchHook) *Store {
	s.hooks.Push(hook)
	return s
}

// Subscribe registers a listener called whenever a dispatch produced a new
// root state. The returned function removes the listener; calling it more
// than once is harmless.
func (s *Store) Subscribe(listener Listener) func() {
	s.nextID++
	id := s.nextID

	s.listeners.Push(subscription{id: id, listener: listener})

	return func() {
		s.listeners = s.listeners.Iter().
			Exclude(func(sub subscription) bool { return sub.id == id }).
			Collect()
	}
}

// Dispatch reduces actions in order. The state after each action is
// committed before its hooks and listeners run. The first callback error
// stops the remaining actions and is returned as an *ErrCallback.
func (s *Store) Dispatch(actions ...Action) error {
	for _, action := range actions {
		ctx := &Context{Action: action, Prev: s.state}
		ctx.Next = Reduce(ctx.Prev, action)
		s.state = ctx.Next

		for hook := range s.hooks.Iter() {
			if err := s.executeHook(hook, ctx); err != nil {
				return err
			}
		}

		if !ctx.Changed() {
			continue
		}

		for sub := range s.listeners.Clone().Iter() {
			if err := s.executeListener(sub.listener, ctx); err != nil {
				return err
			}
		}
	}

	return nil
}

// executeHook safely executes a dispatch hook, recovering from panics.
func (s *Store) executeHook(hook DispatchHook, ctx *Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ErrCallback{HookType: "OnDispatch", Action: ctx.Action.Type, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if hookErr := hook(ctx); hookErr != nil {
		err = &ErrCallback{HookType: "OnDispatch", Action: ctx.Action.Type, Err: hookErr}
	}

	return err
}

// executeListener safely executes a listener, recovering from panics.
func (s *Store) executeListener(listener Listener, ctx *Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ErrCallback{HookType: "Listener", Action: ctx.Action.Type, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	listener(ctx.Next)

	return nil
}

// Sync wraps the store in a SyncStore. The store must not be used directly afterwards.
func (s *Store) Sync() *SyncStore { return &SyncStore{store: s} }

// sameState reports whether a and b are the same map, not merely equal ones.
func sameState(a, b State) bool {
	return reflect.ValueOf(a).UnsafePointer() == reflect.ValueOf(b).UnsafePointer()
}
