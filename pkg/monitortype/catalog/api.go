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
	"github.com/simplewatch/simplewatch/pkg/monitortype"
)

type apiDescriptor struct {
	monitortype.Base
}

func newAPI() *apiDescriptor {
	return &apiDescriptor{
		Base: monitortype.Base{
			ID:        "api",
			Name:      "API Endpoint",
			Desc:      "Checks an API endpoint's status code and response body assertions",
			IconName:  "braces",
			Group:     monitortype.CategoryWeb,
			Interval:  5,
			Intervals: defaultIntervals,
			Fields: []monitortype.FieldSpec{
				{
					Key:         "url",
					Kind:        monitortype.FieldURL,
					Label:       "URL",
					Placeholder: "https://api.example.com/health",
					Required:    true,
				},
				{
					Key:     "method",
					Kind:    monitortype.FieldSelect,
					Label:   "Method",
					Default: "GET",
					Options: []monitortype.Option{
						{Value: "GET", Label: "GET"},
						{Value: "POST", Label: "POST"},
					},
				},
				{
					Key:         "headers",
					Kind:        monitortype.FieldTextarea,
					Label:       "Request headers (JSON)",
					Placeholder: `{"Authorization": "Bearer ..."}`,
					Hint:        "Optional JSON object of request headers",
					JSONObject:  true,
				},
				{
					Key:     "expected_status_code",
					Kind:    monitortype.FieldNumber,
					Label:   "Expected status code",
					Default: 200,
					Min:     monitortype.Num(100),
					Max:     monitortype.Num(599),
				},
				{
					Key:         "json_path_validations",
					Kind:        monitortype.FieldTextarea,
					Label:       "JSON assertions",
					Placeholder: `{"status": "ok"}`,
					Hint:        "Dot-path keys mapped to expected values",
					JSONObject:  true,
				},
				{
					Key:     "timeout_seconds",
					Kind:    monitortype.FieldNumber,
					Label:   "Timeout (seconds)",
					Default: 10,
					Min:     monitortype.Num(1),
					Max:     monitortype.Num(120),
				},
			},
		},
	}
}

func (*apiDescriptor) Validate(cfg monitortype.Config) error {
	if err := requireURL(cfg, "url", "URL"); err != nil {
		return err
	}

	if err := requireOneOf(cfg, "method", "Method", "GET", "POST"); err != nil {
		return err
	}

	if err := requireObject(cfg, "headers", "Request headers"); err != nil {
		return err
	}

	if err := optionalNumber(cfg, "expected_status_code", "Expected status code", 100, 599); err != nil {
		return err
	}

	if err := requireObject(cfg, "json_path_validations", "JSON assertions"); err != nil {
		return err
	}

	return optionalNumber(cfg, "timeout_seconds", "Timeout", 1, 120)
}
