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

package monitortype

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/simplewatch/simplewatch/pkg/logger"
)

var (
	errMissingTypeID      = errors.New("descriptor has no type id")
	errMissingDisplayName = errors.New("descriptor has no display name")
)

// CatalogFunc produces the built-in descriptor catalog. It is passed
// in by the composition root so the registry package stays free of a
// dependency on the catalog package.
type CatalogFunc func(ctx context.Context) []Descriptor

// CategoryGroup is one bucket of the categorized type listing.
type CategoryGroup struct {
	Category    Category
	Descriptors []Descriptor
}

// Registry holds all monitor type descriptors. It is constructed
// explicitly and owned by the composition root; there is no hidden
// package-level instance.
type Registry struct {
	mu     sync.RWMutex
	byID   map[string]Descriptor
	order  []string
	loaded bool
	log    logger.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(log logger.Logger) *Registry {
	if log == nil {
		log = logger.NewTestLogger()
	}

	return &Registry{
		byID: make(map[string]Descriptor),
		log:  log,
	}
}

// Register inserts a descriptor keyed by its type id. A descriptor
// without a type id or display name is a developer-time defect and
// fails fast. The last registration for a given id wins.
func (r *Registry) Register(d Descriptor) error {
	if d == nil || d.TypeID() == "" {
		return errMissingTypeID
	}

	if d.DisplayName() == "" {
		return fmt.Errorf("%w: %s", errMissingDisplayName, d.TypeID())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[d.TypeID()]; !exists {
		r.order = append(r.order, d.TypeID())
	} else {
		r.log.Warn().Str("monitor_type", d.TypeID()).Msg("Re-registering monitor type, last registration wins")
	}

	r.byID[d.TypeID()] = d

	return nil
}

// Get looks up a descriptor by type id. A miss means "unsupported
// type" to the caller, never a crash.
func (r *Registry) Get(typeID string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[typeID]

	return d, ok
}

// GetAll returns all descriptors in registration order.
func (r *Registry) GetAll() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.byID[id])
	}

	return all
}

// LoadAll registers the built-in catalog exactly once. Repeated or
// concurrent calls are a no-op; the guard exists so independent UI
// entry points can each call LoadAll without double-registering.
func (r *Registry) LoadAll(ctx context.Context, catalog CatalogFunc) error {
	r.mu.Lock()
	if r.loaded {
		r.mu.Unlock()
		return nil
	}

	r.loaded = true
	r.mu.Unlock()

	for _, d := range catalog(ctx) {
		if err := r.Register(d); err != nil {
			return err
		}
	}

	r.log.Info().Int("count", len(r.GetAll())).Msg("Loaded built-in monitor type catalog")

	return nil
}

// categoryOrder fixes bucket ordering in the selection catalog.
var categoryOrder = []Category{
	CategoryWeb,
	CategoryNetwork,
	CategoryInfrastructure,
	CategoryPush,
	CategoryTracking,
}

// Categorize groups descriptors into the fixed buckets, preserving
// registration order within each bucket and omitting empty buckets.
// The union of all buckets equals GetAll().
func (r *Registry) Categorize() []CategoryGroup {
	all := r.GetAll()

	buckets := make(map[Category][]Descriptor, len(categoryOrder))
	for _, d := range all {
		buckets[d.Category()] = append(buckets[d.Category()], d)
	}

	groups := make([]CategoryGroup, 0, len(categoryOrder))

	for _, cat := range categoryOrder {
		if len(buckets[cat]) == 0 {
			continue
		}

		groups = append(groups, CategoryGroup{Category: cat, Descriptors: buckets[cat]})
		delete(buckets, cat)
	}

	// Descriptors declaring a category outside the fixed set still
	// appear exactly once, in a trailing bucket.
	for _, d := range all {
		if remaining, ok := buckets[d.Category()]; ok {
			groups = append(groups, CategoryGroup{Category: d.Category(), Descriptors: remaining})
			delete(buckets, d.Category())
		}
	}

	return groups
}
