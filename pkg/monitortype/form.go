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

import "strings"

// FormReader exposes the current values of a bound form. All form
// values are strings, mirroring UI input controls; descriptors coerce
// during extraction.
type FormReader interface {
	Get(bindingKey string) (string, bool)
}

// FormWriter additionally allows populating form values.
type FormWriter interface {
	FormReader
	Set(bindingKey, value string)
}

// Values is a plain map-backed form, used in tests and anywhere no
// real UI is attached.
type Values map[string]string

func NewValues() Values { return make(Values) }

func (v Values) Get(bindingKey string) (string, bool) {
	val, ok := v[bindingKey]
	return val, ok
}

func (v Values) Set(bindingKey, value string) {
	v[bindingKey] = value
}

// Capitalize converts a snake_case schema key into the CamelCase
// segment of a binding key: "timeout_seconds" -> "TimeoutSeconds".
// Generation and descriptor access share this exact transform; if the
// two sides ever disagree, lookups fail silently.
func Capitalize(key string) string {
	parts := strings.Split(key, "_")

	var b strings.Builder

	for _, part := range parts {
		if part == "" {
			continue
		}

		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}

	return b.String()
}

// BindingKey namespaces a schema key under a form instance's prefix,
// letting multiple concurrent forms share descriptor logic without
// collision.
func BindingKey(prefix, key string) string {
	return prefix + Capitalize(key)
}
