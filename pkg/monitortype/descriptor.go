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

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Category buckets monitor types for the selection catalog.
type Category string

const (
	CategoryWeb            Category = "web"
	CategoryNetwork        Category = "network"
	CategoryInfrastructure Category = "infrastructure"
	CategoryPush           Category = "push"
	CategoryTracking       Category = "tracking"
)

// Descriptor is the contract every monitor type implements. A
// descriptor is a stateless strategy value: schema, validation, and
// config<->form mapping for one monitor kind.
type Descriptor interface {
	TypeID() string
	DisplayName() string
	Description() string
	Icon() string
	Category() Category

	// Schema returns the ordered field schema.
	Schema() []FieldSpec

	// DefaultInterval and IntervalChoices are in minutes. ShowInterval
	// is false for passive monitor types driven by inbound pushes; no
	// polling interval is rendered for those.
	DefaultInterval() int
	IntervalChoices() []int
	ShowInterval() bool

	// Validate is pure and fail-fast: it reports the first violated
	// constraint and never accumulates. A nil return means the config
	// may be persisted.
	Validate(cfg Config) error

	// ExtractConfig reads current form values under the binding
	// prefix and coerces them to the declared types. It never fails;
	// malformed freeform input degrades to defaults.
	ExtractConfig(form FormReader, prefix string) Config

	// PopulateForm is the inverse of ExtractConfig. Partial configs
	// are tolerated; absent optional keys fall back to schema
	// defaults.
	PopulateForm(form FormWriter, prefix string, cfg Config)
}

// SupplementalRenderer is implemented by descriptors that show
// read-only guidance next to the form, such as an example ingestion
// call for push-style monitors. Unknown identifiers degrade to
// placeholders.
type SupplementalRenderer interface {
	RenderSupplemental(prefix, serviceName, monitorName string) string
}

// RenderHook is implemented by descriptors that wire reactive
// cross-field behavior after the form is rendered. OnRendered must be
// safe to invoke repeatedly on the same binding prefix.
type RenderHook interface {
	OnRendered(form FormWriter, prefix string)
}

// Base carries descriptor identity, schema, and interval options, and
// supplies the schema-driven config<->form mapping. Concrete types
// embed it and add their own Validate plus any optional capabilities.
type Base struct {
	ID           string
	Name         string
	Desc         string
	IconName     string
	Group        Category
	Fields       []FieldSpec
	Interval     int
	Intervals    []int
	HideInterval bool
}

func (b *Base) TypeID() string        { return b.ID }
func (b *Base) DisplayName() string   { return b.Name }
func (b *Base) Description() string   { return b.Desc }
func (b *Base) Icon() string          { return b.IconName }
func (b *Base) Category() Category    { return b.Group }
func (b *Base) Schema() []FieldSpec   { return b.Fields }
func (b *Base) DefaultInterval() int  { return b.Interval }
func (b *Base) IntervalChoices() []int { return b.Intervals }
func (b *Base) ShowInterval() bool    { return !b.HideInterval }

func (b *Base) ExtractConfig(form FormReader, prefix string) Config {
	return ExtractBySchema(b.Fields, form, prefix)
}

func (b *Base) PopulateForm(form FormWriter, prefix string, cfg Config) {
	PopulateBySchema(b.Fields, form, prefix, cfg)
}

// ExtractBySchema walks the schema in order and coerces each bound
// form value to its declared type. Missing or empty optional values
// fall back to the field default when one is declared, otherwise the
// key is omitted. Extraction never fails by design.
func ExtractBySchema(schema []FieldSpec, form FormReader, prefix string) Config {
	cfg := make(Config, len(schema))

	for i := range schema {
		field := &schema[i]
		raw, ok := form.Get(BindingKey(prefix, field.Key))

		switch field.Kind {
		case FieldNumber:
			value, parsed := parseNumber(raw)
			if !ok || !parsed {
				if def, has := defaultNumber(field.Default); has {
					cfg[field.Key] = def
				}

				continue
			}

			cfg[field.Key] = value

		case FieldCheckbox:
			if !ok {
				if def, isBool := field.Default.(bool); isBool {
					cfg[field.Key] = def
				}

				continue
			}

			cfg[field.Key] = parseCheckbox(raw)

		default:
			if field.JSONObject {
				fallback := map[string]interface{}{}
				if def, isMap := field.Default.(map[string]interface{}); isMap {
					fallback = def
				}

				cfg[field.Key] = ParseLenient(strings.TrimSpace(raw), fallback)

				continue
			}

			trimmed := strings.TrimSpace(raw)
			if !ok || trimmed == "" {
				if field.Default != nil {
					cfg[field.Key] = field.Default
				}

				continue
			}

			cfg[field.Key] = trimmed
		}
	}

	return cfg
}

// PopulateBySchema writes config values back into the form under the
// binding prefix, falling back to schema defaults for absent keys.
func PopulateBySchema(schema []FieldSpec, form FormWriter, prefix string, cfg Config) {
	for i := range schema {
		field := &schema[i]

		value, present := cfg[field.Key]
		if !present {
			if field.Default == nil {
				continue
			}

			value = field.Default
		}

		form.Set(BindingKey(prefix, field.Key), formatValue(value))
	}
}

func parseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}

func defaultNumber(def interface{}) (float64, bool) {
	switch v := def.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func parseCheckbox(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "on", "yes", "checked":
		return true
	default:
		return false
	}
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case map[string]interface{}:
		if len(v) == 0 {
			return ""
		}

		data, err := json.Marshal(v)
		if err != nil {
			return ""
		}

		return string(data)
	default:
		return ""
	}
}
