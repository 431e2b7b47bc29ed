package formstate

import . "github.com/enetx/g"

// Interface compliance check.
var (
	_ Container = (*Store)(nil)
	_ Container = (*SyncStore)(nil)
)

// NewSyncStore creates a thread-safe store holding initial.
func NewSyncStore(initial State) *SyncStore { return NewStore(initial).Sync() }

// Dispatch is the thread-safe version of Store.Dispatch.
// Hooks and listeners run while the lock is held and must not call back into the SyncStore.
func (ss *SyncStore) Dispatch(actions ...Action) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	return ss.store.Dispatch(actions...)
}

// DispatchJSON is the thread-safe version of Store.DispatchJSON.
func (ss *SyncStore) DispatchJSON(data []byte) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	return ss.store.DispatchJSON(data)
}

// State is the thread-safe version of Store.State.
func (ss *SyncStore) State() State {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	return ss.store.State()
}

// Form is the thread-safe version of Store.Form.
func (ss *SyncStore) Form(name FormName) Option[FormState] {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	return ss.store.Form(name)
}

// Field is the thread-safe version of Store.Field.
func (ss *SyncStore) Field(form FormName, field FieldName) Option[FieldState] {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	return ss.store.Field(form, field)
}

// OnDispatch is the thread-safe version of Store.OnDispatch.
// The hook runs while the lock is held; calling back into the SyncStore
// from it deadlocks. Use the Context it receives instead.
func (ss *SyncStore) OnDispatch(hook DispatchHook) *SyncStore {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	ss.store.OnDispatch(hook)

	return ss
}

// Subscribe is the thread-safe version of Store.Subscribe.
// The returned function is safe to call from any goroutine.
func (ss *SyncStore) Subscribe(listener Listener) func() {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	unsubscribe := ss.store.Subscribe(listener)

	return func() {
		ss.mu.Lock()
		defer ss.mu.Unlock()

		unsubscribe()
	}
}

// Validate is the thread-safe version of Store.Validate.
// Validators run under the lock against the form state they are computed for.
func (ss *SyncStore) Validate(name FormName, validators Validators) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	return ss.store.Validate(name, validators)
}

// Bind is the thread-safe version of Store.Bind.
// Registration and initial value seeding happen atomically.
func (ss *SyncStore) Bind(form FormName, field FieldName) (*Binding, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	b, err := ss.store.Bind(form, field)
	b.container = ss

	return b, err
}

// ToDOT is the thread-safe version of Store.ToDOT.
func (ss *SyncStore) ToDOT(name FormName) String {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	return ss.store.ToDOT(name)
}

// MarshalJSON implements the json.Marshaler interface for thread-safe
// serialization of the store's state to JSON.
func (ss *SyncStore) MarshalJSON() ([]byte, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	return ss.store.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for thread-safe
// deserialization of the store's state from JSON.
func (ss *SyncStore) UnmarshalJSON(data []byte) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	return ss.store.UnmarshalJSON(data)
}
