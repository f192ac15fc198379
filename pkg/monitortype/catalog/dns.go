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

	"github.com/simplewatch/simplewatch/pkg/monitortype"
)

type dnsDescriptor struct {
	monitortype.Base
}

func newDNS() *dnsDescriptor {
	return &dnsDescriptor{
		Base: monitortype.Base{
			ID:        "dns",
			Name:      "DNS Record",
			Desc:      "Resolves a record and optionally validates its value",
			IconName:  "signpost",
			Group:     monitortype.CategoryNetwork,
			Interval:  15,
			Intervals: defaultIntervals,
			Fields: []monitortype.FieldSpec{
				{
					Key:         "hostname",
					Kind:        monitortype.FieldText,
					Label:       "Hostname",
					Placeholder: "example.com",
					Required:    true,
				},
				{
					Key:      "record_type",
					Kind:     monitortype.FieldSelect,
					Label:    "Record type",
					Required: true,
					Default:  "A",
					Options: []monitortype.Option{
						{Value: "A", Label: "A"},
						{Value: "AAAA", Label: "AAAA"},
						{Value: "CNAME", Label: "CNAME"},
						{Value: "MX", Label: "MX"},
						{Value: "TXT", Label: "TXT"},
						{Value: "NS", Label: "NS"},
					},
				},
				{
					Key:   "expected_value",
					Kind:  monitortype.FieldText,
					Label: "Expected value",
					Hint:  "Optional; any resolved value must match",
				},
				{
					Key:         "nameserver",
					Kind:        monitortype.FieldText,
					Label:       "Nameserver",
					Placeholder: "8.8.8.8",
					Hint:        "Optional; system resolver when empty",
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

func (*dnsDescriptor) Validate(cfg monitortype.Config) error {
	if err := requireHost(cfg, "hostname", "Hostname"); err != nil {
		return err
	}

	if err := requireOneOf(cfg, "record_type", "Record type", "A", "AAAA", "CNAME", "MX", "TXT", "NS"); err != nil {
		return err
	}

	// A custom nameserver must be an IPv4 literal; resolver libraries
	// do not resolve the resolver.
	if ns := cfg.String("nameserver"); ns != "" && !validIPv4.MatchString(ns) {
		return fmt.Errorf("Nameserver must be an IPv4 address, got %q", ns)
	}

	return optionalNumber(cfg, "timeout_seconds", "Timeout", 1, 60)
}
