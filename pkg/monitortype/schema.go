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

// Package monitortype defines the monitor-type descriptor contract,
// the registry that holds all descriptors, and the interpreter that
// turns a descriptor's field schema into renderable form structure.
package monitortype

// FieldKind selects the UI control used for a schema field.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldNumber   FieldKind = "number"
	FieldSelect   FieldKind = "select"
	FieldCheckbox FieldKind = "checkbox"
	FieldPassword FieldKind = "password"
	FieldTextarea FieldKind = "textarea"
	FieldURL      FieldKind = "url"
	FieldDate     FieldKind = "date"
	FieldCustom   FieldKind = "custom"
)

// Option is one choice of a select field.
type Option struct {
	Value string
	Label string
}

// Visibility gates a field on the current value of another field.
// The field is shown only while the controlling field holds one of
// the listed values.
type Visibility struct {
	Field  string
	Values []string
}

// FieldSpec describes one configuration field of a monitor type. The
// schema is ordered; generation emits controls in declaration order.
type FieldSpec struct {
	Key         string
	Kind        FieldKind
	Label       string
	Placeholder string
	Required    bool
	Default     interface{}
	Min         *float64
	Max         *float64
	Step        *float64
	Options     []Option
	Hint        string
	VisibleWhen *Visibility

	// JSONObject marks a textarea holding freeform JSON. Extraction
	// of such fields never fails; unparseable text degrades to the
	// field default.
	JSONObject bool
}

func floatPtr(v float64) *float64 { return &v }

// Num is a convenience for building Min/Max/Step values in schema
// literals.
func Num(v float64) *float64 { return floatPtr(v) }
