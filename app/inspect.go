package app

import (
	"kbheight/inspect"
	"kbheight/log"
	"kbheight/ui/layout"
)

var fieldIDs = [fieldCount]string{
	fieldWidth:     "width",
	fieldHeight:    "height",
	fieldDpi:       "ydpi",
	fieldRows:      "rows",
	fieldKeyHeight: "key_height",
	fieldGap:       "gap",
}

// InspectNode implements inspect.Introspectable.
func (m *calculator) InspectNode() *inspect.Node {
	c := layout.ComputeConstraints(m.width, m.height)

	form := inspect.NewNode("Form").WithID("form").
		WithBounds(c.FormWidth, c.FormHeight).
		WithVisible(!c.ShowMinWarning)
	for i, ti := range m.inputs {
		form.AddChild(inspect.NewNode("Field").
			WithID(fieldIDs[i]).
			WithContent(ti.Value()).
			WithState("label", fieldLabels[i]).
			WithState("focused", i == m.focus))
	}

	result := inspect.NewNode("Report").WithID("result").
		WithBounds(c.ResultWidth, c.ResultHeight).
		WithVisible(!c.ShowMinWarning)
	if m.err != nil {
		result.Type = "Error"
		result.WithContent(m.err.Error())
	}

	return inspect.NewNode("Calculator").
		WithBounds(m.width, m.height).
		AddChild(form).
		AddChild(result)
}

func (m *calculator) snapshot() *inspect.Snapshot {
	c := layout.ComputeConstraints(m.width, m.height)
	info := inspect.CalculatorInfo{
		Profile: m.profile,
		Focus:   fieldIDs[m.focus],
		Status:  m.status,
	}

	s := inspect.NewSnapshot().
		WithTerminal(m.width, m.height).
		WithLayout(c, layout.ComputeDegradation(c)).
		WithComponents(m.InspectNode())
	if m.err != nil {
		info.Error = m.err.Error()
	} else {
		s.WithSizing(m.sizing)
	}
	return s.WithCalculator(info)
}

// writeInspection dumps the current state when KBH_INSPECT=1.
func (m *calculator) writeInspection() {
	if !inspect.IsEnabled() {
		return
	}
	if err := inspect.WriteSnapshot(m.snapshot()); err != nil {
		log.WarningLog.Printf("failed to write inspection snapshot: %v", err)
	}
}
