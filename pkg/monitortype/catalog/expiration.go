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
	"time"

	"github.com/simplewatch/simplewatch/pkg/monitortype"
)

const expirationDateLayout = "2006-01-02"

var errExpirationThresholdOrder = errors.New("critical days must be less than warning days")

type expirationDescriptor struct {
	monitortype.Base
}

func newExpiration() *expirationDescriptor {
	return &expirationDescriptor{
		Base: monitortype.Base{
			ID:        "expiration",
			Name:      "Expiration Date",
			Desc:      "Tracks expiry of licenses, domains, subscriptions, and contracts",
			IconName:  "calendar",
			Group:     monitortype.CategoryTracking,
			Interval:  1440,
			Intervals: dailyIntervals,
			Fields: []monitortype.FieldSpec{
				{
					Key:         "item_name",
					Kind:        monitortype.FieldText,
					Label:       "Item name",
					Placeholder: "Wildcard certificate",
					Required:    true,
				},
				{
					Key:         "expiration_date",
					Kind:        monitortype.FieldDate,
					Label:       "Expiration date",
					Placeholder: "2026-12-31",
					Required:    true,
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
				{
					Key:   "renewal_url",
					Kind:  monitortype.FieldURL,
					Label: "Renewal URL",
					Hint:  "Optional link shown on the status page",
				},
				{
					Key:   "cost",
					Kind:  monitortype.FieldText,
					Label: "Renewal cost",
					Hint:  "Optional, informational",
				},
				{
					Key:   "notes",
					Kind:  monitortype.FieldTextarea,
					Label: "Notes",
				},
			},
		},
	}
}

func (*expirationDescriptor) Validate(cfg monitortype.Config) error {
	if _, err := requireString(cfg, "item_name", "Item name"); err != nil {
		return err
	}

	dateStr, err := requireString(cfg, "expiration_date", "Expiration date")
	if err != nil {
		return err
	}

	if _, err := time.Parse(expirationDateLayout, dateStr); err != nil {
		return fmt.Errorf("Expiration date must be in YYYY-MM-DD format, got %q", dateStr)
	}

	warning, err := requireNumber(cfg, "warning_days", "Warning threshold", 1, 3650)
	if err != nil {
		return err
	}

	critical, err := requireNumber(cfg, "critical_days", "Critical threshold", 1, 3650)
	if err != nil {
		return err
	}

	if critical >= warning {
		return errExpirationThresholdOrder
	}

	return nil
}
