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

package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplewatch/simplewatch/pkg/models"
)

func TestOpenStateUnknownMode(t *testing.T) {
	_, err := openState(Mode("bogus"), OpenContext{})
	assert.ErrorIs(t, err, errUnknownMode)
}

func TestStateTransitions(t *testing.T) {
	s, err := openState(ModeAddToService, OpenContext{ServiceID: 4, ServiceName: "billing"})
	require.NoError(t, err)
	assert.Equal(t, StepTypeSelection, s.Step)

	// back is illegal before a type is chosen.
	_, err = s.back()
	assert.ErrorIs(t, err, errNotInConfiguration)

	s, err = s.selectType("ping")
	require.NoError(t, err)
	assert.Equal(t, StepConfiguration, s.Step)
	assert.Equal(t, "ping", s.TypeID)

	// Transitions are value-based; the original is untouched.
	back, err := s.back()
	require.NoError(t, err)
	assert.Empty(t, back.TypeID)
	assert.Equal(t, "ping", s.TypeID)
}

func TestOpenStateEdit(t *testing.T) {
	monitor := &models.Monitor{ID: 12, MonitorType: "dns"}

	s, err := openState(ModeEdit, OpenContext{ServiceID: 2, ServiceName: "infra", Monitor: monitor})
	require.NoError(t, err)

	assert.Equal(t, StepConfiguration, s.Step)
	assert.Equal(t, int64(12), s.MonitorID)
	assert.Equal(t, "dns", s.TypeID)
}
