package formstate

import (
	"encoding/json"
	"fmt"

	"github.com/enetx/g"
)

// MarshalJSON implements the json.Marshaler interface.
func (s *Store) MarshalJSON() ([]byte, error) { return json.Marshal(s.state) }

// UnmarshalJSON implements the json.Unmarshaler interface. It replaces the
// store's state with the decoded snapshot without running hooks or
// listeners. Invalid is derived from the decoded errors rather than trusted.
// Field values come back as their JSON types (numbers are float64).
func (s *Store) UnmarshalJSON(data []byte) error {
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to unmarshal form state: %w", err)
	}

	if state == nil {
		state = State{}
	}

	for key, form := range state {
		if form.Name != key {
			return &ErrFormName{Key: key, Name: form.Name}
		}

		if form.Fields == nil {
			form.Fields = g.NewMap[FieldName, FieldState]()
		}

		for name, field := range form.Fields {
			if field.Count <= 0 {
				return &ErrFieldCount{Form: key, Field: name, Count: field.Count}
			}
		}

		form.Invalid = hasErrors(form.Fields)
		state[key] = form
	}

	s.state = state

	return nil
}

// DispatchJSON decodes a single action and dispatches it. Actions of an
// unknown type decode fine and leave the state unchanged.
func (s *Store) DispatchJSON(data []byte) error {
	var action Action
	if err := json.Unmarshal(data, &action); err != nil {
		return fmt.Errorf("failed to unmarshal action: %w", err)
	}

	return s.Dispatch(action)
}
