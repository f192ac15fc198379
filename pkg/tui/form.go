/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/simplewatch/simplewatch/pkg/monitortype"
	"github.com/simplewatch/simplewatch/pkg/workflow"
)

// fieldKind collapses the schema kinds into the three widget shapes
// the terminal can render.
type fieldKind int

const (
	widgetText fieldKind = iota
	widgetSelect
	widgetCheckbox
)

// formField is one rendered control, either generated from the
// schema or synthetic (service name, check interval).
type formField struct {
	bindingKey string
	label      string
	hint       string
	kind       fieldKind
	input      textinput.Model
	options    []monitortype.Option
	optionIdx  int
	checked    bool
	required   bool
	controls   bool // other fields' visibility depends on this one
}

func (f *formField) value() string {
	switch f.kind {
	case widgetSelect:
		if len(f.options) == 0 {
			return ""
		}

		return f.options[f.optionIdx].Value
	case widgetCheckbox:
		return strconv.FormatBool(f.checked)
	default:
		return f.input.Value()
	}
}

func (f *formField) setFocus(focused bool) tea.Cmd {
	if f.kind != widgetText {
		return nil
	}

	if focused {
		return f.input.Focus()
	}

	f.input.Blur()

	return nil
}

// formModel renders a FormPlan as navigable terminal controls. The
// app model owns it while the workflow sits in configuration.
type formModel struct {
	fields []*formField
	focus  int
	styles styles
}

func newTextInput(st styles, placeholder, value string, secret bool) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(value)
	ti.Width = 48
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaCyan))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaForeground))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaComment))

	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}

	return ti
}

func fieldFromControl(c monitortype.Control, schema []monitortype.FieldSpec, st styles) *formField {
	f := &formField{
		bindingKey: c.BindingKey,
		label:      c.Spec.Label,
		hint:       c.Spec.Hint,
		required:   c.Spec.Required,
		controls:   controlsVisibility(c.Spec.Key, schema),
	}

	if f.label == "" {
		f.label = c.Spec.Key
	}

	switch c.Spec.Kind {
	case monitortype.FieldSelect:
		f.kind = widgetSelect
		f.options = c.Spec.Options
		f.optionIdx = optionIndex(c.Spec.Options, c.Value)
	case monitortype.FieldCheckbox:
		f.kind = widgetCheckbox
		f.checked = strings.EqualFold(c.Value, "true")
	default:
		f.kind = widgetText
		f.input = newTextInput(st, c.Spec.Placeholder, c.Value, c.Spec.Kind == monitortype.FieldPassword)
	}

	return f
}

// controlsVisibility reports whether any other field's visibility
// predicate watches this key; changing such a field forces a form
// rebuild.
func controlsVisibility(key string, schema []monitortype.FieldSpec) bool {
	for i := range schema {
		if schema[i].VisibleWhen != nil && schema[i].VisibleWhen.Field == key {
			return true
		}
	}

	return false
}

func optionIndex(options []monitortype.Option, value string) int {
	for i, o := range options {
		if o.Value == value {
			return i
		}
	}

	return 0
}

// buildFormModel creates widgets for the plan's visible controls plus
// the synthetic service name and interval fields.
func buildFormModel(plan monitortype.FormPlan, schema []monitortype.FieldSpec, prefix string, withServiceName bool, st styles) *formModel {
	m := &formModel{styles: st, focus: -1}

	if withServiceName {
		m.fields = append(m.fields, &formField{
			bindingKey: monitortype.BindingKey(prefix, workflow.ServiceNameKey),
			label:      "Service name",
			required:   true,
			kind:       widgetText,
			input:      newTextInput(st, "my-service", "", false),
		})
	}

	for _, c := range plan.Controls {
		if c.Hidden {
			continue
		}

		m.fields = append(m.fields, fieldFromControl(c, schema, st))
	}

	if plan.Interval != nil {
		options := make([]monitortype.Option, 0, len(plan.Interval.Choices))
		idx := 0

		for i, minutes := range plan.Interval.Choices {
			options = append(options, monitortype.Option{
				Value: strconv.Itoa(minutes),
				Label: formatInterval(minutes),
			})

			if minutes == plan.Interval.Default {
				idx = i
			}
		}

		m.fields = append(m.fields, &formField{
			bindingKey: plan.Interval.BindingKey,
			label:      "Check interval",
			kind:       widgetSelect,
			options:    options,
			optionIdx:  idx,
		})
	}

	if len(m.fields) > 0 {
		m.focus = 0
		m.fields[0].setFocus(true)
	}

	return m
}

func formatInterval(minutes int) string {
	switch {
	case minutes >= 1440 && minutes%1440 == 0:
		return fmt.Sprintf("%dd", minutes/1440)
	case minutes >= 60 && minutes%60 == 0:
		return fmt.Sprintf("%dh", minutes/60)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// mergeValues carries user edits into a fresh values map before a
// rebuild, so re-interpreting the schema never loses input.
func (m *formModel) mergeValues(into monitortype.Values) {
	for _, f := range m.fields {
		into.Set(f.bindingKey, f.value())
	}
}

// focusedBindingKey lets a rebuild restore focus to the same control.
func (m *formModel) focusedBindingKey() string {
	if m.focus < 0 || m.focus >= len(m.fields) {
		return ""
	}

	return m.fields[m.focus].bindingKey
}

func (m *formModel) focusByBindingKey(key string) {
	for i, f := range m.fields {
		if f.bindingKey == key {
			m.setFocusIndex(i)
			return
		}
	}
}

func (m *formModel) setFocusIndex(idx int) {
	if m.focus >= 0 && m.focus < len(m.fields) {
		m.fields[m.focus].setFocus(false)
	}

	m.focus = idx
	if m.focus >= 0 && m.focus < len(m.fields) {
		m.fields[m.focus].setFocus(true)
	}
}

func (m *formModel) next() {
	if len(m.fields) == 0 {
		return
	}

	m.setFocusIndex((m.focus + 1) % len(m.fields))
}

func (m *formModel) prev() {
	if len(m.fields) == 0 {
		return
	}

	m.setFocusIndex((m.focus - 1 + len(m.fields)) % len(m.fields))
}

// update routes a key message to the focused widget. The second
// result reports whether a visibility-controlling value changed.
func (m *formModel) update(msg tea.Msg) (tea.Cmd, bool) {
	if m.focus < 0 || m.focus >= len(m.fields) {
		return nil, false
	}

	field := m.fields[m.focus]

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch field.kind {
		case widgetSelect:
			switch keyMsg.Type {
			case tea.KeyLeft:
				field.optionIdx = (field.optionIdx - 1 + len(field.options)) % len(field.options)
				return nil, field.controls
			case tea.KeyRight, tea.KeySpace:
				field.optionIdx = (field.optionIdx + 1) % len(field.options)
				return nil, field.controls
			default:
				return nil, false
			}

		case widgetCheckbox:
			if keyMsg.Type == tea.KeySpace {
				field.checked = !field.checked
				return nil, field.controls
			}

			return nil, false
		}
	}

	if field.kind != widgetText {
		return nil, false
	}

	before := field.input.Value()

	var cmd tea.Cmd
	field.input, cmd = field.input.Update(msg)

	return cmd, field.controls && before != field.input.Value()
}

func (m *formModel) view() string {
	var b strings.Builder

	for i, f := range m.fields {
		label := m.styles.label.Render(f.label)
		if i == m.focus {
			label = m.styles.focused.Render("› " + f.label)
		} else {
			label = "  " + label
		}

		if f.required {
			label += m.styles.errMsg.Render("*")
		}

		b.WriteString(label)
		b.WriteString("\n  ")

		switch f.kind {
		case widgetSelect:
			b.WriteString(m.renderSelect(f, i == m.focus))
		case widgetCheckbox:
			b.WriteString(m.renderCheckbox(f))
		default:
			b.WriteString(f.input.View())
		}

		if f.hint != "" && i == m.focus {
			b.WriteString("\n  " + m.styles.hint.Render(f.hint))
		}

		b.WriteString("\n")
	}

	return b.String()
}

func (m *formModel) renderSelect(f *formField, focused bool) string {
	if len(f.options) == 0 {
		return m.styles.help.Render("(no options)")
	}

	label := f.options[f.optionIdx].Label
	if label == "" {
		label = f.options[f.optionIdx].Value
	}

	if focused {
		return m.styles.focused.Render("‹ " + label + " ›")
	}

	return m.styles.label.Render(label)
}

func (m *formModel) renderCheckbox(f *formField) string {
	if f.checked {
		return m.styles.success.Render("[x] yes")
	}

	return m.styles.label.Render("[ ] no")
}
