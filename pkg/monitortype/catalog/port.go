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

type portDescriptor struct {
	monitortype.Base
}

func newPort() *portDescriptor {
	return &portDescriptor{
		Base: monitortype.Base{
			ID:        "port",
			Name:      "TCP Port",
			Desc:      "Checks that a TCP port accepts connections",
			IconName:  "plug",
			Group:     monitortype.CategoryNetwork,
			Interval:  5,
			Intervals: defaultIntervals,
			Fields: []monitortype.FieldSpec{
				{
					Key:         "host",
					Kind:        monitortype.FieldText,
					Label:       "Host",
					Placeholder: "db.example.com",
					Required:    true,
				},
				{
					Key:      "port",
					Kind:     monitortype.FieldNumber,
					Label:    "Port",
					Required: true,
					Min:      monitortype.Num(minPort),
					Max:      monitortype.Num(maxPort),
				},
				{
					Key:     "timeout_seconds",
					Kind:    monitortype.FieldNumber,
					Label:   "Timeout (seconds)",
					Default: 5,
					Min:     monitortype.Num(1),
					Max:     monitortype.Num(60),
				},
			},
		},
	}
}

func (*portDescriptor) Validate(cfg monitortype.Config) error {
	if err := requireHost(cfg, "host", "Host"); err != nil {
		return err
	}

	if _, err := requireNumber(cfg, "port", "Port", minPort, maxPort); err != nil {
		return err
	}

	return optionalNumber(cfg, "timeout_seconds", "Timeout", 1, 60)
}
