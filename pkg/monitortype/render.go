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

package monitortype

// IntervalKey is the pseudo-field key the interval control binds
// under. It is not part of any descriptor schema; the workflow
// controller reads it separately from the monitor config.
const IntervalKey = "check_interval"

// Control is one generated form control.
type Control struct {
	BindingKey string
	Spec       FieldSpec
	Value      string
	Hidden     bool
}

// IntervalControl is the generated check-interval selector. It is
// absent from the plan for passive monitor types.
type IntervalControl struct {
	BindingKey string
	Default    int
	Choices    []int
}

// FormPlan is the UI structure interpreted from a descriptor schema.
// It is plain data; the host decides how to render it.
type FormPlan struct {
	TypeID       string
	Controls     []Control
	Interval     *IntervalControl
	Supplemental string
}

// BuildOptions carries the context a form is generated in. Values,
// when set, provides current form values used for initial control
// values and visibility predicates; otherwise schema defaults apply.
type BuildOptions struct {
	ServiceName string
	MonitorName string
	Values      FormReader
}

// BuildForm interprets a descriptor's schema into one control per
// field, in declared order, bound under the prefix. It is a pure
// function of its inputs.
func BuildForm(d Descriptor, prefix string, opts BuildOptions) FormPlan {
	schema := d.Schema()

	plan := FormPlan{
		TypeID:   d.TypeID(),
		Controls: make([]Control, 0, len(schema)),
	}

	for i := range schema {
		field := schema[i]
		bindingKey := BindingKey(prefix, field.Key)

		plan.Controls = append(plan.Controls, Control{
			BindingKey: bindingKey,
			Spec:       field,
			Value:      controlValue(&field, bindingKey, opts.Values),
			Hidden:     hiddenByPredicate(schema, &field, prefix, opts.Values),
		})
	}

	if d.ShowInterval() {
		plan.Interval = &IntervalControl{
			BindingKey: BindingKey(prefix, IntervalKey),
			Default:    d.DefaultInterval(),
			Choices:    d.IntervalChoices(),
		}
	}

	if sr, ok := d.(SupplementalRenderer); ok {
		plan.Supplemental = sr.RenderSupplemental(prefix, opts.ServiceName, opts.MonitorName)
	}

	return plan
}

func controlValue(field *FieldSpec, bindingKey string, values FormReader) string {
	if values != nil {
		if current, ok := values.Get(bindingKey); ok {
			return current
		}
	}

	if field.Default != nil {
		return formatValue(field.Default)
	}

	return ""
}

// hiddenByPredicate evaluates a field's visibility predicate against
// the current value of the controlling field, falling back to that
// field's schema default when the form holds no value yet.
func hiddenByPredicate(schema []FieldSpec, field *FieldSpec, prefix string, values FormReader) bool {
	if field.VisibleWhen == nil {
		return false
	}

	controlling := field.VisibleWhen.Field

	current := ""

	if values != nil {
		if v, ok := values.Get(BindingKey(prefix, controlling)); ok {
			current = v
		}
	}

	if current == "" {
		for i := range schema {
			if schema[i].Key == controlling && schema[i].Default != nil {
				current = formatValue(schema[i].Default)
				break
			}
		}
	}

	for _, allowed := range field.VisibleWhen.Values {
		if current == allowed {
			return false
		}
	}

	return true
}
