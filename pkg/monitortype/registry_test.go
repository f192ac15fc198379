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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplewatch/simplewatch/pkg/logger"
)

// stubDescriptor is a minimal descriptor for registry tests.
type stubDescriptor struct {
	Base
}

func (*stubDescriptor) Validate(Config) error { return nil }

func newStub(id, name string, cat Category) *stubDescriptor {
	return &stubDescriptor{Base: Base{ID: id, Name: name, Group: cat, Interval: 5}}
}

func TestRegistryRegisterMisconfigured(t *testing.T) {
	r := NewRegistry(logger.NewTestLogger())

	require.Error(t, r.Register(nil))
	require.Error(t, r.Register(newStub("", "No ID", CategoryWeb)))
	require.Error(t, r.Register(newStub("no_name", "", CategoryWeb)))

	assert.Empty(t, r.GetAll())
}

func TestRegistryLastRegistrationWins(t *testing.T) {
	r := NewRegistry(logger.NewTestLogger())

	first := newStub("website", "Website", CategoryWeb)
	second := newStub("website", "Website v2", CategoryWeb)
	other := newStub("port", "Port", CategoryNetwork)

	require.NoError(t, r.Register(first))
	require.NoError(t, r.Register(other))
	require.NoError(t, r.Register(second))

	d, ok := r.Get("website")
	require.True(t, ok)
	assert.Equal(t, "Website v2", d.DisplayName())

	// Re-registration keeps the original position.
	all := r.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, "website", all[0].TypeID())
	assert.Equal(t, "port", all[1].TypeID())
}

func TestRegistryGetMiss(t *testing.T) {
	r := NewRegistry(logger.NewTestLogger())

	_, ok := r.Get("no_such_type")
	assert.False(t, ok)
}

func TestRegistryLoadAllOnce(t *testing.T) {
	r := NewRegistry(logger.NewTestLogger())

	calls := 0
	catalog := func(_ context.Context) []Descriptor {
		calls++
		return []Descriptor{newStub("website", "Website", CategoryWeb)}
	}

	require.NoError(t, r.LoadAll(context.Background(), catalog))
	require.NoError(t, r.LoadAll(context.Background(), catalog))
	require.NoError(t, r.LoadAll(context.Background(), catalog))

	assert.Equal(t, 1, calls, "repeated loads must not re-run the catalog")
	assert.Len(t, r.GetAll(), 1)
}

func TestRegistryCategorize(t *testing.T) {
	r := NewRegistry(logger.NewTestLogger())

	require.NoError(t, r.Register(newStub("deadman", "Dead Man's Switch", CategoryPush)))
	require.NoError(t, r.Register(newStub("website", "Website", CategoryWeb)))
	require.NoError(t, r.Register(newStub("api", "API", CategoryWeb)))
	require.NoError(t, r.Register(newStub("port", "Port", CategoryNetwork)))
	require.NoError(t, r.Register(newStub("custom", "Custom", Category("experimental"))))

	groups := r.Categorize()
	require.Len(t, groups, 4, "empty buckets are omitted")

	assert.Equal(t, CategoryWeb, groups[0].Category)
	assert.Equal(t, CategoryNetwork, groups[1].Category)
	assert.Equal(t, CategoryPush, groups[2].Category)
	assert.Equal(t, Category("experimental"), groups[3].Category, "unknown categories trail the fixed order")

	// Registration order holds within a bucket.
	require.Len(t, groups[0].Descriptors, 2)
	assert.Equal(t, "website", groups[0].Descriptors[0].TypeID())
	assert.Equal(t, "api", groups[0].Descriptors[1].TypeID())

	// Union of buckets covers every registered type exactly once.
	seen := make(map[string]int)
	for _, g := range groups {
		for _, d := range g.Descriptors {
			seen[d.TypeID()]++
		}
	}

	assert.Len(t, seen, len(r.GetAll()))
	for id, count := range seen {
		assert.Equal(t, 1, count, "type %s appears more than once", id)
	}
}
