package formstate

import (
	"reflect"
	"sync"

	"github.com/enetx/g"
)

// Binding ties one element to a field. Several bindings may share a field
// name; the field lives until the last of them is released.
type Binding struct {
	container Container
	form      FormName
	field     FieldName
	release   sync.Once
}

// Bind registers an element for field and returns its binding. When the
// registration created the field and the form already has an initial value
// for it, the value is applied right away. The binding is returned even
// when a callback fails so that it can still be released.
func (s *Store) Bind(form FormName, field FieldName) (*Binding, error) {
	b := &Binding{container: s, form: form, field: field}
	actions := Actions(form)

	if err := s.Dispatch(actions.RegisterField(field)); err != nil {
		return b, err
	}

	fs := s.Field(form, field)
	if fs.IsNone() || fs.Some().Count != 1 {
		return b, nil
	}

	initial, ok := s.state[form].InitialValues[field]
	if !ok {
		return b, nil
	}

	return b, s.Dispatch(actions.ChangeField(field, initial))
}

func (b *Binding) Form() FormName   { return b.form }
func (b *Binding) Field() FieldName { return b.field }

// State returns the bound field, or None once it no longer exists.
func (b *Binding) State() g.Option[FieldState] { return b.container.Field(b.form, b.field) }

func (b *Binding) Focus() error { return b.container.Dispatch(Actions(b.form).FocusField(b.field)) }
func (b *Binding) Blur() error  { return b.container.Dispatch(Actions(b.form).BlurField(b.field)) }

// Change sets the field's value.
func (b *Binding) Change(value any) error {
	return b.container.Dispatch(Actions(b.form).ChangeField(b.field, value))
}

// Release unregisters the element. Only the first call has an effect.
func (b *Binding) Release() error {
	var err error
	b.release.Do(func() { err = b.container.Dispatch(Actions(b.form).UnregisterField(b.field)) })

	return err
}

// Checkbox adapts a binding to a boolean field.
type Checkbox struct{ *Binding }

// Checked reports whether the field holds true.
func (c Checkbox) Checked() bool {
	fs := c.State()
	if fs.IsNone() {
		return false
	}

	checked, _ := fs.Some().Value.(bool)

	return checked
}

// Toggle flips the field's value.
func (c Checkbox) Toggle() error { return c.Change(!c.Checked()) }

// Radio adapts a binding to one option of a radio group. All options of a
// group bind the same field, so the field's value is the selected option.
type Radio struct {
	*Binding
	Option any
}

// Checked reports whether this option is the selected one.
func (r Radio) Checked() bool {
	fs := r.State()
	return fs.IsSome() && reflect.DeepEqual(fs.Some().Value, r.Option)
}

// Select makes this option the selected one.
func (r Radio) Select() error { return r.Change(r.Option) }
