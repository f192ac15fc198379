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

import "encoding/json"

// Config is a monitor's persisted configuration. Its shape is defined
// entirely by the owning descriptor's schema; the registry never
// interprets it.
type Config map[string]interface{}

// String returns the string value under key, or "" when absent or of
// another type.
func (c Config) String(key string) string {
	if v, ok := c[key].(string); ok {
		return v
	}

	return ""
}

// Number returns the numeric value under key. JSON round-trips store
// numbers as float64; int values set programmatically are accepted
// too.
func (c Config) Number(key string) (float64, bool) {
	switch v := c[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// Bool returns the boolean value under key, defaulting to false.
func (c Config) Bool(key string) bool {
	if v, ok := c[key].(bool); ok {
		return v
	}

	return false
}

// Object returns the nested object under key, or nil.
func (c Config) Object(key string) map[string]interface{} {
	if v, ok := c[key].(map[string]interface{}); ok {
		return v
	}

	return nil
}

// Has reports whether key is present at all.
func (c Config) Has(key string) bool {
	_, ok := c[key]
	return ok
}

// ParseLenient decodes freeform JSON object text, returning fallback
// on empty or malformed input. The leniency is deliberate: embedded
// JSON sub-fields (custom headers, assertion maps) are authored by
// hand, and a typo should degrade the value, not abort extraction.
func ParseLenient(text string, fallback map[string]interface{}) map[string]interface{} {
	if text == "" {
		return fallback
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return fallback
	}

	return parsed
}
