package formstate_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	. "github.com/enetx/formstate"
	. "github.com/enetx/g"
)

func TestStore_Serialization(t *testing.T) {
	store := NewStore(nil)
	a := Actions("f")
	assertNoError(t, store.Dispatch(
		a.InitForm(),
		a.RegisterField("name"),
		a.RegisterField("name"),
		a.SetInitialValues(Map[FieldName, any]{"name": "John"}),
		a.BlurField("name"),
		a.UpdateFieldErrors(Map[FieldName, String]{"name": "taken"}),
	))

	data, err := json.Marshal(store)
	assertNoError(t, err)

	restored := NewStore(nil)
	assertNoError(t, json.Unmarshal(data, restored))

	form := restored.Form("f").Unwrap()
	assertEqual(t, form.Name, FormName("f"))
	assertTrue(t, form.Invalid)
	assertEqual[any](t, form.InitialValues["name"], "John")

	field := form.Fields["name"]
	assertEqual[any](t, field.Value, "John")
	assertEqual(t, field.Count, 2)
	assertTrue(t, field.Touched)
	assertEqual(t, field.Error, String("taken"))
}

func TestStore_UnmarshalRecomputesInvalid(t *testing.T) {
	store := NewStore(nil)
	snapshot := `{"f": {"name": "f", "invalid": true, "fields": {"x": {"value": 1, "count": 1}}}}`

	assertNoError(t, json.Unmarshal([]byte(snapshot), store))
	assertFalse(t, store.Form("f").Unwrap().Invalid)
	assertEqual[any](t, store.Field("f", "x").Unwrap().Value, float64(1))
}

func TestStore_UnmarshalRejectsBadCount(t *testing.T) {
	store := NewStore(nil)
	snapshot := `{"f": {"name": "f", "fields": {"x": {"count": 0}}}}`

	err := json.Unmarshal([]byte(snapshot), store)
	assertError(t, err)

	var countErr *ErrFieldCount
	assertTrue(t, errors.As(err, &countErr))
	assertEqual(t, countErr.Field, FieldName("x"))
	assertTrue(t, store.Form("f").IsNone())
}

func TestStore_UnmarshalRejectsNameMismatch(t *testing.T) {
	store := NewStore(nil)

	err := json.Unmarshal([]byte(`{"f": {"name": "g"}}`), store)
	assertError(t, err)
	assertTrue(t, strings.Contains(err.Error(), "is named"))
}

func TestStore_UnmarshalFillsMissingFields(t *testing.T) {
	store := NewStore(nil)
	assertNoError(t, json.Unmarshal([]byte(`{"f": {"name": "f"}}`), store))

	assertNoError(t, store.Dispatch(Actions("f").RegisterField("x")))
	assertEqual(t, store.Field("f", "x").Unwrap().Count, 1)
}

func TestStore_DispatchJSON(t *testing.T) {
	store := NewStore(nil)

	assertNoError(t, store.DispatchJSON([]byte(`{"type": "form/init", "payload": {"formName": "f"}}`)))
	assertNoError(t, store.DispatchJSON([]byte(`{"type": "form/register-field", "payload": {"formName": "f", "fieldName": "ok"}}`)))
	assertNoError(t, store.DispatchJSON([]byte(`{"type": "form/change-field", "payload": {"formName": "f", "fieldName": "ok", "value": false}}`)))
	assertNoError(t, store.DispatchJSON([]byte(`{"type": "form/nonsense", "payload": {"formName": "f"}}`)))

	assertEqual[any](t, store.Field("f", "ok").Unwrap().Value, false)

	err := store.DispatchJSON([]byte(`{"type": `))
	assertError(t, err)
	assertTrue(t, strings.Contains(err.Error(), "failed to unmarshal action"))
}

func TestAction_JSONShape(t *testing.T) {
	data, err := json.Marshal(Actions("f").ChangeField("x", "v"))
	assertNoError(t, err)

	var action Action
	assertNoError(t, json.Unmarshal(data, &action))
	assertEqual(t, action.Type, ChangeField)
	assertEqual(t, action.Payload.FormName, FormName("f"))
	assertEqual(t, action.Payload.FieldName, FieldName("x"))
	assertEqual[any](t, action.Payload.Value, "v")
}

func TestStore_SerializationKeepsEmptyInitialValues(t *testing.T) {
	store := NewStore(nil)
	a := Actions("f")
	assertNoError(t, store.Dispatch(a.InitForm(), a.SetInitialValues(Map[FieldName, any]{})))
	assertTrue(t, store.Form("f").Unwrap().InitialValues != nil)

	data, err := json.Marshal(store)
	assertNoError(t, err)
	assertTrue(t, strings.Contains(string(data), `"initialValues":{}`))

	restored := NewStore(nil)
	assertNoError(t, json.Unmarshal(data, restored))
	assertTrue(t, restored.Form("f").Unwrap().InitialValues != nil)

	unset := NewStore(nil)
	assertNoError(t, unset.Dispatch(a.InitForm()))
	data, err = json.Marshal(unset)
	assertNoError(t, err)

	assertNoError(t, json.Unmarshal(data, restored))
	assertTrue(t, restored.Form("f").Unwrap().InitialValues == nil)
}
