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

type pingDescriptor struct {
	monitortype.Base
}

func newPing() *pingDescriptor {
	return &pingDescriptor{
		Base: monitortype.Base{
			ID:        "ping",
			Name:      "ICMP Ping",
			Desc:      "Checks host reachability, latency, and packet loss",
			IconName:  "activity",
			Group:     monitortype.CategoryNetwork,
			Interval:  5,
			Intervals: defaultIntervals,
			Fields: []monitortype.FieldSpec{
				{
					Key:         "host",
					Kind:        monitortype.FieldText,
					Label:       "Host",
					Placeholder: "10.0.0.1",
					Required:    true,
				},
				{
					Key:     "count",
					Kind:    monitortype.FieldNumber,
					Label:   "Packets per check",
					Default: 4,
					Min:     monitortype.Num(1),
					Max:     monitortype.Num(20),
				},
				{
					Key:     "timeout_seconds",
					Kind:    monitortype.FieldNumber,
					Label:   "Timeout (seconds)",
					Default: 5,
					Min:     monitortype.Num(1),
					Max:     monitortype.Num(60),
				},
				{
					Key:     "latency_threshold_ms",
					Kind:    monitortype.FieldNumber,
					Label:   "Latency warning threshold (ms)",
					Default: 200,
					Min:     monitortype.Num(1),
				},
				{
					Key:     "packet_loss_threshold_percent",
					Kind:    monitortype.FieldNumber,
					Label:   "Packet loss warning threshold (%)",
					Default: 20,
					Min:     monitortype.Num(1),
					Max:     monitortype.Num(100),
				},
			},
		},
	}
}

func (*pingDescriptor) Validate(cfg monitortype.Config) error {
	if err := requireHost(cfg, "host", "Host"); err != nil {
		return err
	}

	if err := optionalNumber(cfg, "count", "Packets per check", 1, 20); err != nil {
		return err
	}

	if err := optionalNumber(cfg, "latency_threshold_ms", "Latency threshold", 1, 60000); err != nil {
		return err
	}

	return optionalNumber(cfg, "packet_loss_threshold_percent", "Packet loss threshold", 1, 100)
}
