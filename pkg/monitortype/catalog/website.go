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

type websiteDescriptor struct {
	monitortype.Base
}

func newWebsite() *websiteDescriptor {
	return &websiteDescriptor{
		Base: monitortype.Base{
			ID:        "website",
			Name:      "Website",
			Desc:      "Checks that a URL responds with a healthy HTTP status",
			IconName:  "globe",
			Group:     monitortype.CategoryWeb,
			Interval:  5,
			Intervals: defaultIntervals,
			Fields: []monitortype.FieldSpec{
				{
					Key:         "url",
					Kind:        monitortype.FieldURL,
					Label:       "URL",
					Placeholder: "https://example.com",
					Required:    true,
				},
				{
					Key:     "timeout_seconds",
					Kind:    monitortype.FieldNumber,
					Label:   "Timeout (seconds)",
					Default: 10,
					Min:     monitortype.Num(1),
					Max:     monitortype.Num(120),
				},
				{
					Key:     "follow_redirects",
					Kind:    monitortype.FieldCheckbox,
					Label:   "Follow redirects",
					Default: true,
				},
				{
					Key:     "verify_ssl",
					Kind:    monitortype.FieldCheckbox,
					Label:   "Verify TLS certificate",
					Default: true,
				},
			},
		},
	}
}

func (*websiteDescriptor) Validate(cfg monitortype.Config) error {
	if err := requireURL(cfg, "url", "URL"); err != nil {
		return err
	}

	return optionalNumber(cfg, "timeout_seconds", "Timeout", 1, 120)
}
