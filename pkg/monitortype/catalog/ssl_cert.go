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

	"github.com/simplewatch/simplewatch/pkg/monitortype"
)

var errCertThresholdOrder = errors.New("critical days must be less than warning days")

type sslCertDescriptor struct {
	monitortype.Base
}

func newSSLCert() *sslCertDescriptor {
	return &sslCertDescriptor{
		Base: monitortype.Base{
			ID:        "ssl_cert",
			Name:      "TLS Certificate",
			Desc:      "Tracks certificate expiry with warning and critical windows",
			IconName:  "shield",
			Group:     monitortype.CategoryNetwork,
			Interval:  1440,
			Intervals: dailyIntervals,
			Fields: []monitortype.FieldSpec{
				{
					Key:         "hostname",
					Kind:        monitortype.FieldText,
					Label:       "Hostname",
					Placeholder: "example.com",
					Required:    true,
				},
				{
					Key:     "port",
					Kind:    monitortype.FieldNumber,
					Label:   "Port",
					Default: 443,
					Min:     monitortype.Num(minPort),
					Max:     monitortype.Num(maxPort),
				},
				{
					Key:     "warning_days",
					Kind:    monitortype.FieldNumber,
					Label:   "Warning threshold (days)",
					Default: 30,
					Min:     monitortype.Num(1),
				},
				{
					Key:     "critical_days",
					Kind:    monitortype.FieldNumber,
					Label:   "Critical threshold (days)",
					Default: 7,
					Min:     monitortype.Num(1),
				},
			},
		},
	}
}

func (*sslCertDescriptor) Validate(cfg monitortype.Config) error {
	if err := requireHost(cfg, "hostname", "Hostname"); err != nil {
		return err
	}

	if err := optionalNumber(cfg, "port", "Port", minPort, maxPort); err != nil {
		return err
	}

	warning, err := requireNumber(cfg, "warning_days", "Warning threshold", 1, 3650)
	if err != nil {
		return err
	}

	critical, err := requireNumber(cfg, "critical_days", "Critical threshold", 1, 3650)
	if err != nil {
		return err
	}

	// The critical window must be strictly inside the warning window,
	// otherwise the degraded state can never occur.
	if critical >= warning {
		return errCertThresholdOrder
	}

	return nil
}
