package formstate

import (
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// ToDOT generates a DOT language string representation of the form for visualization.
func (f FormState) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph Form {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=box, style=\"rounded,filled\", fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	formColor := "#90ee90"
	if f.Invalid {
		formColor = "#f4a6a6"
	}

	form := escape(g.String(f.Name))

	b.WriteString(g.Format("  \"{}\" [shape=folder, fillcolor=\"{}\"];\n\n", form, formColor))

	names := g.NewSlice[FieldName]()
	for name := range f.Fields {
		names.Push(name)
	}

	names.SortBy(cmp.Cmp)

	for name := range names.Iter() {
		field := f.Fields[name]
		id := escape(g.String(name))

		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\\n{} (x{})\"", id, quote(field.Value), field.Count))

		switch {
		case field.Error != "":
			attrs.Push("fillcolor=\"#f4a6a6\"", g.Format("tooltip=\"{}\"", escape(field.Error)))
		case field.Focus:
			attrs.Push("fillcolor=\"#90ee90\"")
		case field.Touched:
			attrs.Push("fillcolor=\"#d3d3d3\"")
		}

		b.WriteString(g.Format("  \"{}.{}\" [{}];\n", form, id, attrs.Join(", ")))
	}

	b.WriteByte('\n')

	for name := range names.Iter() {
		var edge g.Slice[g.String]
		if initial, ok := f.InitialValues[name]; ok {
			edge.Push(g.Format("label=\" initial: {} \"", quote(initial)))
		}

		if f.Fields[name].Error != "" {
			edge.Push("style=dashed", "color=red")
		}

		b.WriteString(g.Format("  \"{}\" -> \"{}.{}\" [{}];\n", form, form, escape(g.String(name)), edge.Join(", ")))
	}

	b.WriteString("}\n")

	return b.String()
}

// ToDOT renders the named form, or an empty graph when it is not mounted.
func (s *Store) ToDOT(name FormName) g.String {
	form := s.Form(name)
	if form.IsNone() {
		return "digraph Form {\n}\n"
	}

	return form.Some().ToDOT()
}

// quote renders a field value for a DOT label.
func quote(value any) g.String {
	if value == nil {
		return "-"
	}

	return escape(g.Format("{}", value))
}

// escape makes s safe inside a double-quoted DOT string.
func escape(s g.String) g.String {
	return s.ReplaceAll(`\`, `\\`).ReplaceAll(`"`, `\"`)
}
