package formstate

import (
	"regexp"

	"github.com/enetx/g"
)

type (
	// Validator returns an error message for value, or an empty string when
	// the value is valid. form is the state the value was read from.
	Validator func(value any, form FormState) g.String
	// Validators maps field names to their validator.
	Validators g.Map[FieldName, Validator]
)

// Validate runs the validator of every registered field and returns the
// non-empty messages. Fields without a validator, and validators for
// fields that are not registered, are skipped.
func Validate(form FormState, validators Validators) g.Map[FieldName, g.String] {
	errors := g.NewMap[FieldName, g.String]()

	for name, field := range form.Fields {
		validator, ok := validators[name]
		if !ok || validator == nil {
			continue
		}

		if msg := validator(field.Value, form); msg != "" {
			errors[name] = msg
		}
	}

	return errors
}

// Validate computes the errors of the named form and dispatches them with
// UpdateFieldErrors. It does nothing when the form is not mounted.
func (s *Store) Validate(name FormName, validators Validators) error {
	form, ok := s.state[name]
	if !ok {
		return nil
	}

	return s.Dispatch(Actions(name).UpdateFieldErrors(Validate(form, validators)))
}

// Required rejects nil, false and empty strings.
func Required(message g.String) Validator {
	return func(value any, _ FormState) g.String {
		switch v := value.(type) {
		case nil:
			return message
		case bool:
			if !v {
				return message
			}
		default:
			if s, ok := text(value); ok && s == "" {
				return message
			}
		}

		return ""
	}
}

// MinLength rejects strings shorter than n runes. Non-string values pass;
// combine with Required to reject missing values.
func MinLength(n int, message g.String) Validator {
	return func(value any, _ FormState) g.String {
		if s, ok := text(value); ok && s.LenRunes() < g.Int(n) {
			return message
		}

		return ""
	}
}

// Pattern rejects non-empty strings that do not match re.
func Pattern(re *regexp.Regexp, message g.String) Validator {
	return func(value any, _ FormState) g.String {
		if s, ok := text(value); ok && s != "" && !re.MatchString(string(s)) {
			return message
		}

		return ""
	}
}

func text(value any) (g.String, bool) {
	switch v := value.(type) {
	case string:
		return g.String(v), true
	case g.String:
		return v, true
	default:
		return "", false
	}
}
