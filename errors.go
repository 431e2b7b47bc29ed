package formstate

import "fmt"

// ErrCallback is returned when a dispatch hook or a listener returns an
// error or panics. It wraps the original error, allowing it to be
// inspected using functions like errors.Is and errors.As.
// The state produced by the action is already committed when it is returned.
type ErrCallback struct {
	// HookType is the kind of callback where the error occurred ("OnDispatch", "Listener").
	HookType string
	// Action is the action whose dispatch triggered the callback.
	Action ActionType
	// Err is the original error returned by the callback or the error created after recovering from a panic.
	Err error
}

func (e *ErrCallback) Error() string {
	return fmt.Sprintf("formstate: error in %s callback for action %q: %v", e.HookType, e.Action, e.Err)
}

// Unwrap provides compatibility with the standard library's errors package.
func (e *ErrCallback) Unwrap() error { return e.Err }

// ErrFormName is returned when a loaded snapshot stores a form under a key
// that differs from the form's own name.
type ErrFormName struct {
	Key  FormName
	Name FormName
}

func (e *ErrFormName) Error() string {
	return fmt.Sprintf("formstate: form stored under %q is named %q", e.Key, e.Name)
}

// ErrFieldCount is returned when a loaded snapshot contains a field whose
// registration count is not positive. Fields are deleted when their count
// reaches zero, so such a field cannot exist.
type ErrFieldCount struct {
	Form  FormName
	Field FieldName
	Count int
}

func (e *ErrFieldCount) Error() string {
	return fmt.Sprintf("formstate: field %q of form %q has invalid count %d", e.Field, e.Form, e.Count)
}
