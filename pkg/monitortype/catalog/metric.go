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
	errMetricNameRequired       = errors.New("name is required")
	errMetricWarningRequired    = errors.New("warning threshold is required")
	errMetricCriticalRequired   = errors.New("critical threshold is required")
	errMetricOrderGreater       = errors.New("warning threshold must be below critical threshold for greater comparison")
	errMetricOrderLess          = errors.New("warning threshold must be above critical threshold for less comparison")
)

type metricThresholdDescriptor struct {
	monitortype.Base
}

func newMetricThreshold() *metricThresholdDescriptor {
	return &metricThresholdDescriptor{
		Base: monitortype.Base{
			ID:       "metric_threshold",
			Name:     "Metric Threshold",
			Desc:     "Receives metric values and evaluates them against thresholds",
			IconName: "gauge",
			Group:    monitortype.CategoryPush,
			// Push-driven: no interval control is rendered, but the
			// scheduler still evaluates staleness on this cadence.
			Interval:     60,
			HideInterval: true,
			Fields: []monitortype.FieldSpec{
				{
					Key:         "name",
					Kind:        monitortype.FieldText,
					Label:       "Metric name",
					Placeholder: "disk-usage",
					Required:    true,
					Hint:        "Identifies this monitor in the ingestion URL",
				},
				{
					Key:      "warning_threshold",
					Kind:     monitortype.FieldNumber,
					Label:    "Warning threshold",
					Required: true,
				},
				{
					Key:      "critical_threshold",
					Kind:     monitortype.FieldNumber,
					Label:    "Critical threshold",
					Required: true,
				},
				{
					Key:     "comparison",
					Kind:    monitortype.FieldSelect,
					Label:   "Comparison",
					Default: "greater",
					Options: []monitortype.Option{
						{Value: "greater", Label: "Alert when value is above"},
						{Value: "less", Label: "Alert when value is below"},
					},
				},
			},
		},
	}
}

func (*metricThresholdDescriptor) Validate(cfg monitortype.Config) error {
	if cfg.String("name") == "" {
		return errMetricNameRequired
	}

	warning, ok := cfg.Number("warning_threshold")
	if !ok {
		return errMetricWarningRequired
	}

	critical, ok := cfg.Number("critical_threshold")
	if !ok {
		return errMetricCriticalRequired
	}

	switch comparison := cfg.String("comparison"); comparison {
	case "", "greater":
		if warning >= critical {
			return errMetricOrderGreater
		}
	case "less":
		if warning <= critical {
			return errMetricOrderLess
		}
	default:
		return fmt.Errorf("comparison must be greater or less, got %q", comparison)
	}

	return nil
}

// RenderSupplemental shows the ingestion call external systems make
// to post metric values.
func (*metricThresholdDescriptor) RenderSupplemental(_, serviceName, monitorName string) string {
	service := placeholderName(serviceName, "your-service")
	monitor := placeholderName(monitorName, "your-monitor")

	return fmt.Sprintf(
		"Post metric values with:\n"+
			"curl -X POST https://<server>/api/v1/metric/%s/%s \\\n"+
			"  -H 'Content-Type: application/json' \\\n"+
			"  -d '{\"api_key\": \"YOUR_API_KEY\", \"value\": 42.0}'",
		service, monitor)
}
