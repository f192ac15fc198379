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

// Package workflow drives the monitor create/edit flows through the
// descriptor contract: an explicit finite-state machine over
// {type_selection, configuration} crossed with the three supported
// modes.
package workflow

import (
	"errors"
	"fmt"

	"github.com/simplewatch/simplewatch/pkg/models"
)

// Mode selects which of the three flows is open.
type Mode string

const (
	// ModeCreateWithService creates a new service and its first
	// monitor in one flow.
	ModeCreateWithService Mode = "create_with_service"
	// ModeAddToService adds a monitor to an existing service.
	ModeAddToService Mode = "add_to_service"
	// ModeEdit edits an existing monitor's config and interval. The
	// monitor type is immutable in this mode.
	ModeEdit Mode = "edit"
)

// Step is the current screen of the flow.
type Step string

const (
	StepTypeSelection Step = "type_selection"
	StepConfiguration Step = "configuration"
)

var (
	errUnknownMode        = errors.New("unknown workflow mode")
	errMonitorRequired    = errors.New("edit mode requires the monitor being edited")
	errServiceRequired    = errors.New("add_to_service mode requires a target service")
	errNotInTypeSelection = errors.New("type selection is only valid from the type_selection step")
	errNotInConfiguration = errors.New("only valid from the configuration step")
	errBackInEditMode     = errors.New("cannot go back to type selection while editing")
)

// OpenContext carries the target a flow is opened against.
type OpenContext struct {
	ServiceID   int64
	ServiceName string
	Monitor     *models.Monitor
}

// State is one open workflow's position. Transitions are pure; the
// controller owns the single mutable copy.
type State struct {
	Mode        Mode
	Step        Step
	ServiceID   int64
	ServiceName string
	MonitorID   int64
	TypeID      string
}

// openState builds the initial state for a mode. Create and add flows
// start at type selection; edit starts configuring, already bound to
// the monitor's type.
func openState(mode Mode, octx OpenContext) (State, error) {
	switch mode {
	case ModeCreateWithService:
		return State{Mode: mode, Step: StepTypeSelection}, nil

	case ModeAddToService:
		if octx.ServiceID == 0 {
			return State{}, errServiceRequired
		}

		return State{
			Mode:        mode,
			Step:        StepTypeSelection,
			ServiceID:   octx.ServiceID,
			ServiceName: octx.ServiceName,
		}, nil

	case ModeEdit:
		if octx.Monitor == nil {
			return State{}, errMonitorRequired
		}

		return State{
			Mode:        mode,
			Step:        StepConfiguration,
			ServiceID:   octx.ServiceID,
			ServiceName: octx.ServiceName,
			MonitorID:   octx.Monitor.ID,
			TypeID:      octx.Monitor.MonitorType,
		}, nil

	default:
		return State{}, fmt.Errorf("%w: %q", errUnknownMode, mode)
	}
}

// selectType binds a type id and advances to configuration.
func (s State) selectType(typeID string) (State, error) {
	if s.Step != StepTypeSelection {
		return s, errNotInTypeSelection
	}

	s.TypeID = typeID
	s.Step = StepConfiguration

	return s, nil
}

// back returns to type selection, unbinding the type. Edit mode has
// no type selection step to go back to.
func (s State) back() (State, error) {
	if s.Step != StepConfiguration {
		return s, fmt.Errorf("back: %w", errNotInConfiguration)
	}

	if s.Mode == ModeEdit {
		return s, errBackInEditMode
	}

	s.TypeID = ""
	s.Step = StepTypeSelection

	return s, nil
}
