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

// Package catalog holds the built-in monitor type descriptors. Each
// descriptor lives in its own file; BuiltIn fixes the catalog order.
package catalog

import (
	"context"

	"github.com/simplewatch/simplewatch/pkg/monitortype"
)

// Interval choices in minutes shared across active monitor types.
var (
	defaultIntervals = []int{1, 5, 15, 30, 60, 360, 1440}
	dailyIntervals   = []int{360, 720, 1440}
)

// BuiltIn returns the built-in catalog in its fixed order. It is the
// CatalogFunc the composition root hands to Registry.LoadAll.
func BuiltIn(_ context.Context) []monitortype.Descriptor {
	return []monitortype.Descriptor{
		newWebsite(),
		newAPI(),
		newSEO(),
		newPort(),
		newDNS(),
		newPing(),
		newSSLCert(),
		newSNMP(),
		newGitHubActions(),
		newOllama(),
		newDeadman(),
		newMetricThreshold(),
		newExpiration(),
	}
}
