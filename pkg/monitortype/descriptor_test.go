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

const testPrefix = "monitor_test_"

func testSchema() []FieldSpec {
	return []FieldSpec{
		{Key: "url", Kind: FieldURL, Required: true},
		{Key: "timeout_seconds", Kind: FieldNumber, Default: 10},
		{Key: "verify_ssl", Kind: FieldCheckbox, Default: true},
		{Key: "headers", Kind: FieldTextarea, JSONObject: true},
		{Key: "note", Kind: FieldText},
	}
}

func TestExtractBySchema(t *testing.T) {
	form := NewValues()
	form.Set(testPrefix+"Url", "  https://example.com  ")
	form.Set(testPrefix+"TimeoutSeconds", "30")
	form.Set(testPrefix+"VerifySsl", "on")
	form.Set(testPrefix+"Headers", `{"Accept": "text/html"}`)

	cfg := ExtractBySchema(testSchema(), form, testPrefix)

	assert.Equal(t, "https://example.com", cfg.String("url"), "strings are trimmed")

	n, ok := cfg.Number("timeout_seconds")
	require.True(t, ok)
	assert.InDelta(t, 30, n, 0)

	assert.True(t, cfg.Bool("verify_ssl"))
	assert.Equal(t, map[string]interface{}{"Accept": "text/html"}, cfg.Object("headers"))
	assert.False(t, cfg.Has("note"), "empty optional fields without defaults are omitted")
}

func TestExtractBySchemaDefaults(t *testing.T) {
	// An empty form yields schema defaults, never an error.
	cfg := ExtractBySchema(testSchema(), NewValues(), testPrefix)

	n, ok := cfg.Number("timeout_seconds")
	require.True(t, ok)
	assert.InDelta(t, 10, n, 0)

	assert.True(t, cfg.Bool("verify_ssl"))
	assert.NotNil(t, cfg.Object("headers"), "JSON fields default to an empty object")
	assert.False(t, cfg.Has("url"))
	assert.False(t, cfg.Has("note"))
}

func TestExtractBySchemaMalformedNumber(t *testing.T) {
	form := NewValues()
	form.Set(testPrefix+"TimeoutSeconds", "not a number")

	cfg := ExtractBySchema(testSchema(), form, testPrefix)

	n, ok := cfg.Number("timeout_seconds")
	require.True(t, ok, "malformed numbers fall back to the default")
	assert.InDelta(t, 10, n, 0)
}

func TestParseCheckbox(t *testing.T) {
	for _, truthy := range []string{"true", "1", "on", "yes", "checked", "TRUE", " Yes "} {
		assert.True(t, parseCheckbox(truthy), "%q should parse true", truthy)
	}

	for _, falsy := range []string{"", "false", "0", "off", "no", "nope"} {
		assert.False(t, parseCheckbox(falsy), "%q should parse false", falsy)
	}
}

func TestPopulateBySchema(t *testing.T) {
	form := NewValues()

	PopulateBySchema(testSchema(), form, testPrefix, Config{
		"url":             "https://example.com",
		"timeout_seconds": float64(45),
		"verify_ssl":      false,
		"headers":         map[string]interface{}{"Accept": "text/html"},
	})

	got, _ := form.Get(testPrefix + "Url")
	assert.Equal(t, "https://example.com", got)

	got, _ = form.Get(testPrefix + "TimeoutSeconds")
	assert.Equal(t, "45", got)

	got, _ = form.Get(testPrefix + "VerifySsl")
	assert.Equal(t, "false", got)

	got, _ = form.Get(testPrefix + "Headers")
	assert.JSONEq(t, `{"Accept": "text/html"}`, got)

	_, ok := form.Get(testPrefix + "Note")
	assert.False(t, ok, "absent keys without defaults stay unset")
}

// Populate then extract must reproduce the config for every field
// kind; this is what keeps edit flows from corrupting saved monitors.
func TestPopulateExtractRoundTrip(t *testing.T) {
	original := Config{
		"url":             "https://example.com/health",
		"timeout_seconds": float64(15),
		"verify_ssl":      true,
		"headers":         map[string]interface{}{"X-Token": "abc"},
		"note":            "primary endpoint",
	}

	form := NewValues()
	PopulateBySchema(testSchema(), form, testPrefix, original)

	got := ExtractBySchema(testSchema(), form, testPrefix)

	assert.Equal(t, original, got)
}
