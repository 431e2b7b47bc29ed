package formstate

import "github.com/enetx/g"

// ActionType tags an action with the transition it requests.
type ActionType g.String

const (
	InitForm          ActionType = "form/init"
	DestroyForm       ActionType = "form/destroy"
	RegisterField     ActionType = "form/register-field"
	UnregisterField   ActionType = "form/unregister-field"
	SetInitialValues  ActionType = "form/set-initial-values"
	UpdateFieldErrors ActionType = "form/update-field-errors"
	FocusField        ActionType = "form/focus-field"
	BlurField         ActionType = "form/blur-field"
	ChangeField       ActionType = "form/change-field"
	ResetForm         ActionType = "form/reset"
)

var knownActions = g.SetOf(
	InitForm,
	DestroyForm,
	RegisterField,
	UnregisterField,
	SetInitialValues,
	UpdateFieldErrors,
	FocusField,
	BlurField,
	ChangeField,
	ResetForm,
)

// Known reports whether t is one of the action types handled by Reduce.
func (t ActionType) Known() bool { return knownActions.Contains(t) }

// Payload carries the target form and the action-specific fields.
// Only the fields relevant to the action type are set.
type Payload struct {
	FormName  FormName                   `json:"formName"`
	FieldName FieldName                  `json:"fieldName,omitempty"`
	Value     any                        `json:"value"`
	Values    g.Map[FieldName, any]      `json:"values,omitempty"`
	Errors    g.Map[FieldName, g.String] `json:"errors,omitempty"`
}

// Action describes an intended state transition.
type Action struct {
	Type    ActionType `json:"type"`
	Payload Payload    `json:"payload"`
}

// Factory builds actions bound to a single form name.
type Factory struct{ name FormName }

// Actions returns the action factory for the named form.
func Actions(name FormName) Factory { return Factory{name: name} }

// Name returns the form name the factory is bound to.
func (f Factory) Name() FormName { return f.name }

func (f Factory) action(t ActionType) Action {
	return Action{Type: t, Payload: Payload{FormName: f.name}}
}

func (f Factory) fieldAction(t ActionType, field FieldName) Action {
	a := f.action(t)
	a.Payload.FieldName = field

	return a
}

func (f Factory) InitForm() Action    { return f.action(InitForm) }
func (f Factory) DestroyForm() Action { return f.action(DestroyForm) }
func (f Factory) ResetForm() Action   { return f.action(ResetForm) }

func (f Factory) RegisterField(field FieldName) Action { return f.fieldAction(RegisterField, field) }
func (f Factory) UnregisterField(field FieldName) Action {
	return f.fieldAction(UnregisterField, field)
}
func (f Factory) FocusField(field FieldName) Action { return f.fieldAction(FocusField, field) }
func (f Factory) BlurField(field FieldName) Action  { return f.fieldAction(BlurField, field) }

// ChangeField requests the field's value be replaced with value.
func (f Factory) ChangeField(field FieldName, value any) Action {
	a := f.fieldAction(ChangeField, field)
	a.Payload.Value = value

	return a
}

// SetInitialValues seeds the form's initial values and applies them to
// the fields that are already registered.
func (f Factory) SetInitialValues(values g.Map[FieldName, any]) Action {
	a := f.action(SetInitialValues)
	a.Payload.Values = values

	return a
}

// UpdateFieldErrors replaces the error of every field with the message in
// errors, clearing the ones not mentioned.
func (f Factory) UpdateFieldErrors(errors g.Map[FieldName, g.String]) Action {
	a := f.action(UpdateFieldErrors)
	a.Payload.Errors = errors

	return a
}
