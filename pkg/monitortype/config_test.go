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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigAccessors(t *testing.T) {
	cfg := Config{
		"url":             "https://example.com",
		"timeout_seconds": float64(10),
		"count":           4,
		"verify_ssl":      true,
		"headers":         map[string]interface{}{"Accept": "application/json"},
	}

	assert.Equal(t, "https://example.com", cfg.String("url"))
	assert.Empty(t, cfg.String("verify_ssl"), "non-string value reads as empty")

	n, ok := cfg.Number("timeout_seconds")
	require.True(t, ok)
	assert.InDelta(t, 10, n, 0)

	n, ok = cfg.Number("count")
	require.True(t, ok, "programmatic int values are accepted")
	assert.InDelta(t, 4, n, 0)

	_, ok = cfg.Number("url")
	assert.False(t, ok)

	assert.True(t, cfg.Bool("verify_ssl"))
	assert.False(t, cfg.Bool("missing"))

	obj := cfg.Object("headers")
	require.NotNil(t, obj)
	assert.Equal(t, "application/json", obj["Accept"])

	assert.True(t, cfg.Has("url"))
	assert.False(t, cfg.Has("nameserver"))
}

func TestParseLenient(t *testing.T) {
	fallback := map[string]interface{}{"kept": true}

	tests := []struct {
		name string
		text string
		want map[string]interface{}
	}{
		{
			name: "valid object",
			text: `{"Authorization": "Bearer x"}`,
			want: map[string]interface{}{"Authorization": "Bearer x"},
		},
		{
			name: "empty text",
			text: "",
			want: fallback,
		},
		{
			name: "malformed json",
			text: `{"Authorization": `,
			want: fallback,
		},
		{
			name: "non-object json",
			text: `[1, 2, 3]`,
			want: fallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLenient(tt.text, fallback))
		})
	}
}
