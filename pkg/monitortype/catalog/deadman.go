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
	"errors"
	"fmt"

	"github.com/simplewatch/simplewatch/pkg/monitortype"
)

var (
	errDeadmanNameRequired  = errors.New("name is required")
	errDeadmanIntervalRange = errors.New("expected interval must exceed 0")
)

// placeholderName substitutes for identifiers that are not known yet,
// such as while the create form is still open.
func placeholderName(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

type deadmanDescriptor struct {
	monitortype.Base
}

func newDeadman() *deadmanDescriptor {
	return &deadmanDescriptor{
		Base: monitortype.Base{
			ID:       "deadman",
			Name:     "Heartbeat",
			Desc:     "Expects regular inbound pings; missing ones mark the service down",
			IconName: "heart-pulse",
			Group:    monitortype.CategoryPush,
			// Push-driven: no interval control is rendered, but the
			// scheduler still evaluates staleness on this cadence.
			Interval:     60,
			HideInterval: true,
			Fields: []monitortype.FieldSpec{
				{
					Key:         "name",
					Kind:        monitortype.FieldText,
					Label:       "Monitor name",
					Placeholder: "nightly-backup",
					Required:    true,
					Hint:        "Identifies this monitor in the heartbeat URL",
				},
				{
					Key:      "expected_interval_hours",
					Kind:     monitortype.FieldNumber,
					Label:    "Expected interval (hours)",
					Default:  24,
					Required: true,
					Min:      monitortype.Num(1),
				},
				{
					Key:     "grace_period_hours",
					Kind:    monitortype.FieldNumber,
					Label:   "Grace period (hours)",
					Default: 1,
					Min:     monitortype.Num(0),
				},
			},
		},
	}
}

func (*deadmanDescriptor) Validate(cfg monitortype.Config) error {
	if cfg.String("name") == "" {
		return errDeadmanNameRequired
	}

	interval, ok := cfg.Number("expected_interval_hours")
	if !ok || interval <= 0 {
		return errDeadmanIntervalRange
	}

	grace, ok := cfg.Number("grace_period_hours")
	if ok && grace < 0 {
		return fmt.Errorf("grace period must not be negative, got %g", grace)
	}

	return nil
}

// RenderSupplemental shows the heartbeat call external processes make
// to keep this monitor alive.
func (*deadmanDescriptor) RenderSupplemental(_, serviceName, monitorName string) string {
	service := placeholderName(serviceName, "your-service")
	monitor := placeholderName(monitorName, "your-monitor")

	return fmt.Sprintf(
		"Send heartbeats with:\n"+
			"curl -X POST https://<server>/api/v1/heartbeat/%s/%s \\\n"+
			"  -H 'Content-Type: application/json' \\\n"+
			"  -d '{\"api_key\": \"YOUR_API_KEY\"}'",
		service, monitor)
}
