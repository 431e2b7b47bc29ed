// Package formstate keeps per-field and per-form UI state in an immutable
// store driven by actions. Reduce is the pure transition function; Store and
// SyncStore host it for callers that need dispatching, hooks and listeners.
// It is built with types and utilities from the github.com/enetx/g library.
package formstate

import "github.com/enetx/g"

// Reduce computes the next root state for action. It never mutates state:
// the root map and the targeted form's field map are copied on write, and
// every other form keeps its identity. When the action changes nothing
// (unknown type, missing form or field, repeated init or destroy) the very
// same map is returned so observers can detect change by reference.
func Reduce(state State, action Action) State {
	p := action.Payload

	switch action.Type {
	case InitForm:
		if _, ok := state[p.FormName]; ok {
			return state
		}

		next := cloneState(state)
		next[p.FormName] = FormState{Name: p.FormName, Fields: g.NewMap[FieldName, FieldState]()}

		return next
	case DestroyForm:
		if _, ok := state[p.FormName]; !ok {
			return state
		}

		next := cloneState(state)
		delete(next, p.FormName)

		return next
	case RegisterField:
		return updateForm(state, p.FormName, func(form FormState) (FormState, bool) {
			field := form.Fields[p.FieldName]
			field.Count++
			form.Fields = cloneFields(form.Fields)
			form.Fields[p.FieldName] = field

			return form, true
		})
	case UnregisterField:
		return updateForm(state, p.FormName, func(form FormState) (FormState, bool) {
			field, ok := form.Fields[p.FieldName]
			if !ok {
				return form, false
			}

			form.Fields = cloneFields(form.Fields)

			if field.Count--; field.Count <= 0 {
				delete(form.Fields, p.FieldName)
			} else {
				form.Fields[p.FieldName] = field
			}

			return form, true
		})
	case SetInitialValues:
		return updateForm(state, p.FormName, func(form FormState) (FormState, bool) {
			form.InitialValues = p.Values.Clone()
			form.Fields = cloneFields(form.Fields)

			for name, value := range p.Values {
				if field, ok := form.Fields[name]; ok {
					field.Value = value
					form.Fields[name] = field
				}
			}

			return form, true
		})
	case UpdateFieldErrors:
		return updateForm(state, p.FormName, func(form FormState) (FormState, bool) {
			form.Fields = cloneFields(form.Fields)

			for name, field := range form.Fields {
				field.Error = p.Errors[name]
				form.Fields[name] = field
			}

			form.Invalid = hasErrors(form.Fields)

			return form, true
		})
	case FocusField:
		return updateField(state, p.FormName, p.FieldName, func(field FieldState) FieldState {
			field.Focus = true
			return field
		})
	case BlurField:
		return updateField(state, p.FormName, p.FieldName, func(field FieldState) FieldState {
			field.Focus = false
			field.Touched = true

			return field
		})
	case ChangeField:
		return updateField(state, p.FormName, p.FieldName, func(field FieldState) FieldState {
			field.Value = p.Value
			return field
		})
	case ResetForm:
		return updateForm(state, p.FormName, func(form FormState) (FormState, bool) {
			form.Fields = cloneFields(form.Fields)

			for name, field := range form.Fields {
				form.Fields[name] = FieldState{Value: form.InitialValues[name], Count: field.Count}
			}

			form.Invalid = false

			return form, true
		})
	default:
		return state
	}
}

// updateForm applies fn to the named form. A missing form, or fn reporting
// no change, leaves state untouched.
func updateForm(state State, name FormName, fn func(FormState) (FormState, bool)) State {
	form, ok := state[name]
	if !ok {
		return state
	}

	form, changed := fn(form)
	if !changed {
		return state
	}

	next := cloneState(state)
	next[name] = form

	return next
}

// updateField applies fn to a registered field; a missing form or field is a no-op.
func updateField(state State, name FormName, field FieldName, fn func(FieldState) FieldState) State {
	return updateForm(state, name, func(form FormState) (FormState, bool) {
		fs, ok := form.Fields[field]
		if !ok {
			return form, false
		}

		form.Fields = cloneFields(form.Fields)
		form.Fields[field] = fn(fs)

		return form, true
	})
}

func cloneState(state State) State {
	if state == nil {
		return State{}
	}

	return State(g.Map[FormName, FormState](state).Clone())
}

func cloneFields(fields g.Map[FieldName, FieldState]) g.Map[FieldName, FieldState] {
	if fields == nil {
		return g.NewMap[FieldName, FieldState]()
	}

	return fields.Clone()
}

// hasErrors reports whether any field carries a non-empty error.
func hasErrors(fields g.Map[FieldName, FieldState]) bool {
	for _, field := range fields {
		if field.Error != "" {
			return true
		}
	}

	return false
}
