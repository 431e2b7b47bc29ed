package formstate

import . "github.com/enetx/g"

// Container is implemented by Store and SyncStore.
type Container interface {
	Dispatch(...Action) error
	DispatchJSON(data []byte) error
	State() State
	Form(FormName) Option[FormState]
	Field(FormName, FieldName) Option[FieldState]
	Subscribe(Listener) func()
	Validate(FormName, Validators) error
	Bind(FormName, FieldName) (*Binding, error)
	ToDOT(FormName) String
	MarshalJSON() ([]byte, error)
	UnmarshalJSON(data []byte) error
}
