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

package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/simplewatch/simplewatch/pkg/monitortype"
)

const (
	minPort = 1
	maxPort = 65535
)

var (
	validHostname = regexp.MustCompile(`^(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)*[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)
	validIPv4     = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)
)

// requireString returns the trimmed value of a required string field,
// or a fail-fast error naming the field.
func requireString(cfg monitortype.Config, key, label string) (string, error) {
	value := strings.TrimSpace(cfg.String(key))
	if value == "" {
		return "", fmt.Errorf("%s is required", label)
	}

	return value, nil
}

// requireURL enforces presence and an explicit http/https scheme
// prefix.
func requireURL(cfg monitortype.Config, key, label string) error {
	value, err := requireString(cfg, key, label)
	if err != nil {
		return err
	}

	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return fmt.Errorf("%s must start with http:// or https://", label)
	}

	return nil
}

// requireHost enforces presence and hostname-or-IPv4 shape.
func requireHost(cfg monitortype.Config, key, label string) error {
	value, err := requireString(cfg, key, label)
	if err != nil {
		return err
	}

	if !validHostname.MatchString(value) && !validIPv4.MatchString(value) {
		return fmt.Errorf("%s must be a valid hostname or IPv4 address", label)
	}

	return nil
}

// requireNumber enforces presence and an inclusive range.
func requireNumber(cfg monitortype.Config, key, label string, minVal, maxVal float64) (float64, error) {
	value, ok := cfg.Number(key)
	if !ok {
		return 0, fmt.Errorf("%s is required", label)
	}

	if value < minVal || value > maxVal {
		return 0, fmt.Errorf("%s must be between %g and %g", label, minVal, maxVal)
	}

	return value, nil
}

// optionalNumber enforces the range only when the key is present.
func optionalNumber(cfg monitortype.Config, key, label string, minVal, maxVal float64) error {
	value, ok := cfg.Number(key)
	if !ok {
		return nil
	}

	if value < minVal || value > maxVal {
		return fmt.Errorf("%s must be between %g and %g", label, minVal, maxVal)
	}

	return nil
}

// requireOneOf enforces membership when the key is present; absence
// is allowed and falls back to the schema default downstream.
func requireOneOf(cfg monitortype.Config, key, label string, allowed ...string) error {
	value := cfg.String(key)
	if value == "" {
		return nil
	}

	for _, a := range allowed {
		if value == a {
			return nil
		}
	}

	return fmt.Errorf("%s must be one of: %s", label, strings.Join(allowed, ", "))
}

// requireObject rejects a present key of the wrong structural shape.
// Lenient extraction already coerces malformed text, so this only
// trips on configs populated outside the form path.
func requireObject(cfg monitortype.Config, key, label string) error {
	if !cfg.Has(key) {
		return nil
	}

	if cfg.Object(key) == nil {
		return fmt.Errorf("%s must be a JSON object", label)
	}

	return nil
}
