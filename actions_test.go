package formstate_test

import (
	"testing"

	. "github.com/enetx/formstate"
	. "github.com/enetx/g"
)

func TestActions_PayloadCarriesFormName(t *testing.T) {
	a := Actions("checkout")
	assertEqual(t, a.Name(), FormName("checkout"))

	all := []Action{
		a.InitForm(),
		a.DestroyForm(),
		a.RegisterField("x"),
		a.UnregisterField("x"),
		a.SetInitialValues(nil),
		a.UpdateFieldErrors(nil),
		a.FocusField("x"),
		a.BlurField("x"),
		a.ChangeField("x", 1),
		a.ResetForm(),
	}

	types := NewSet[ActionType]()
	for _, action := range all {
		assertEqual(t, action.Payload.FormName, FormName("checkout"))
		assertTrue(t, action.Type.Known())
		types.Insert(action.Type)
	}

	assertEqual(t, types.Len(), Int(len(all)))
	assertFalse(t, ActionType("form/whatever").Known())
}

func TestActions_ActionSpecificPayload(t *testing.T) {
	a := Actions("f")

	assertEqual(t, a.FocusField("email").Payload.FieldName, FieldName("email"))
	assertEqual[any](t, a.ChangeField("age", 42).Payload.Value, 42)
	assertEqual[any](t, a.SetInitialValues(Map[FieldName, any]{"a": "b"}).Payload.Values["a"], "b")
	assertEqual(t, a.UpdateFieldErrors(Map[FieldName, String]{"a": "bad"}).Payload.Errors["a"], String("bad"))
	assertEqual(t, a.ResetForm().Payload.FieldName, FieldName(""))
}
