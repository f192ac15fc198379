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
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/simplewatch/simplewatch/pkg/client"
	"github.com/simplewatch/simplewatch/pkg/logger"
	"github.com/simplewatch/simplewatch/pkg/models"
	"github.com/simplewatch/simplewatch/pkg/monitortype"
	"github.com/simplewatch/simplewatch/pkg/monitortype/catalog"
)

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) ShowSuccess(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) ShowError(msg string)   { n.errors = append(n.errors, msg) }

type harness struct {
	controller *Controller
	api        *client.MockClient
	notifier   *recordingNotifier
	refreshes  int
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	ctrl := gomock.NewController(t)

	registry := monitortype.NewRegistry(logger.NewTestLogger())
	require.NoError(t, registry.LoadAll(context.Background(), catalog.BuiltIn))

	h := &harness{
		api:      client.NewMockClient(ctrl),
		notifier: &recordingNotifier{},
	}

	h.controller = NewController(registry, h.api, h.notifier, func() { h.refreshes++ }, logger.NewTestLogger())

	return h
}

// fillWebsiteForm populates the minimum a user would type for a
// website monitor, plus the service name used by create mode.
func (h *harness) fillWebsiteForm(t *testing.T, serviceName string) monitortype.Values {
	t.Helper()

	prefix := h.controller.BindingPrefix()

	form := monitortype.NewValues()
	require.NoError(t, h.controller.PopulateForm(form))

	form.Set(monitortype.BindingKey(prefix, "url"), "https://example.com")
	if serviceName != "" {
		form.Set(monitortype.BindingKey(prefix, ServiceNameKey), serviceName)
	}

	return form
}

func TestOpenCreateStartsAtTypeSelection(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.controller.Open(ModeCreateWithService, OpenContext{}))

	state, ok := h.controller.State()
	require.True(t, ok)
	assert.Equal(t, StepTypeSelection, state.Step)
	assert.NotEmpty(t, h.controller.BindingPrefix())

	_, bound := h.controller.Descriptor()
	assert.False(t, bound)
}

func TestOpenAddRequiresService(t *testing.T) {
	h := newHarness(t)

	err := h.controller.Open(ModeAddToService, OpenContext{})
	assert.ErrorIs(t, err, errServiceRequired)

	_, ok := h.controller.State()
	assert.False(t, ok)
}

func TestOpenEditBindsMonitorType(t *testing.T) {
	h := newHarness(t)

	monitor := &models.Monitor{
		ID:          7,
		ServiceID:   3,
		MonitorType: "website",
		Config:      map[string]interface{}{"url": "https://example.com"},
	}

	require.NoError(t, h.controller.Open(ModeEdit, OpenContext{ServiceID: 3, Monitor: monitor}))

	state, ok := h.controller.State()
	require.True(t, ok)
	assert.Equal(t, StepConfiguration, state.Step)
	assert.Equal(t, "website", state.TypeID)

	d, bound := h.controller.Descriptor()
	require.True(t, bound)
	assert.Equal(t, "website", d.TypeID())

	// Edit has no type selection step to return to.
	assert.ErrorIs(t, h.controller.Back(), errBackInEditMode)
}

func TestOpenEditUnsupportedType(t *testing.T) {
	h := newHarness(t)

	err := h.controller.Open(ModeEdit, OpenContext{
		Monitor: &models.Monitor{ID: 1, MonitorType: "retired_type"},
	})
	require.ErrorIs(t, err, errUnsupportedType)

	_, ok := h.controller.State()
	assert.False(t, ok)
}

func TestOpenEditRequiresMonitor(t *testing.T) {
	h := newHarness(t)

	assert.ErrorIs(t, h.controller.Open(ModeEdit, OpenContext{}), errMonitorRequired)
}

func TestSelectTypeAndBack(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.controller.Open(ModeCreateWithService, OpenContext{}))
	require.ErrorIs(t, h.controller.SelectType("no_such_type"), errUnsupportedType)

	require.NoError(t, h.controller.SelectType("website"))

	state, _ := h.controller.State()
	assert.Equal(t, StepConfiguration, state.Step)
	assert.Equal(t, "website", state.TypeID)

	// Selecting again from configuration is illegal.
	assert.ErrorIs(t, h.controller.SelectType("api"), errNotInTypeSelection)

	require.NoError(t, h.controller.Back())

	state, _ = h.controller.State()
	assert.Equal(t, StepTypeSelection, state.Step)
	assert.Empty(t, state.TypeID)

	_, bound := h.controller.Descriptor()
	assert.False(t, bound)
}

func TestBuildFormRequiresBoundType(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.controller.Open(ModeCreateWithService, OpenContext{}))

	_, err := h.controller.BuildForm(nil)
	assert.ErrorIs(t, err, errNoBoundType)

	require.NoError(t, h.controller.SelectType("website"))

	plan, err := h.controller.BuildForm(nil)
	require.NoError(t, err)
	assert.Equal(t, "website", plan.TypeID)
	assert.NotNil(t, plan.Interval)
}

func TestPopulateFormForEdit(t *testing.T) {
	h := newHarness(t)

	monitor := &models.Monitor{
		ID:              7,
		MonitorType:     "website",
		Config:          map[string]interface{}{"url": "https://example.com", "timeout_seconds": float64(30)},
		IntervalMinutes: 15,
	}

	require.NoError(t, h.controller.Open(ModeEdit, OpenContext{ServiceID: 3, Monitor: monitor}))

	prefix := h.controller.BindingPrefix()
	form := monitortype.NewValues()
	require.NoError(t, h.controller.PopulateForm(form))

	got, _ := form.Get(monitortype.BindingKey(prefix, "url"))
	assert.Equal(t, "https://example.com", got)

	got, _ = form.Get(monitortype.BindingKey(prefix, "timeout_seconds"))
	assert.Equal(t, "30", got)

	got, _ = form.Get(monitortype.BindingKey(prefix, monitortype.IntervalKey))
	assert.Equal(t, "15", got)
}

func TestSubmitCreateWithService(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.controller.Open(ModeCreateWithService, OpenContext{}))
	require.NoError(t, h.controller.SelectType("website"))

	form := h.fillWebsiteForm(t, "storefront")

	h.api.EXPECT().
		CreateService(gomock.Any(), &models.ServiceCreateRequest{Name: "storefront"}).
		Return(&models.Service{ID: 42, Name: "storefront"}, nil)

	h.api.EXPECT().
		CreateMonitor(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.MonitorCreateRequest) (*models.Monitor, error) {
			assert.Equal(t, int64(42), req.ServiceID)
			assert.Equal(t, "website", req.MonitorType)
			assert.Equal(t, "https://example.com", req.Config["url"])
			assert.Equal(t, 5, req.IntervalMinutes)

			return &models.Monitor{ID: 1, ServiceID: 42, MonitorType: "website"}, nil
		})

	require.NoError(t, h.controller.Submit(context.Background(), form))

	assert.Len(t, h.notifier.successes, 1)
	assert.Equal(t, 1, h.refreshes)

	_, open := h.controller.State()
	assert.False(t, open, "success discards the workflow")
}

func TestSubmitCreateRequiresServiceName(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.controller.Open(ModeCreateWithService, OpenContext{}))
	require.NoError(t, h.controller.SelectType("website"))

	form := h.fillWebsiteForm(t, "")

	err := h.controller.Submit(context.Background(), form)
	require.ErrorIs(t, err, errServiceNameMissing)

	assert.Len(t, h.notifier.errors, 1)
	assert.Zero(t, h.refreshes)

	state, open := h.controller.State()
	require.True(t, open, "failure keeps the workflow open for retry")
	assert.Equal(t, StepConfiguration, state.Step)
}

func TestSubmitValidationFailureKeepsState(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.controller.Open(ModeCreateWithService, OpenContext{}))
	require.NoError(t, h.controller.SelectType("website"))

	prefix := h.controller.BindingPrefix()
	form := monitortype.NewValues()
	form.Set(monitortype.BindingKey(prefix, ServiceNameKey), "storefront")
	form.Set(monitortype.BindingKey(prefix, "url"), "not a url")

	err := h.controller.Submit(context.Background(), form)
	require.Error(t, err)

	require.Len(t, h.notifier.errors, 1)
	assert.Equal(t, err.Error(), h.notifier.errors[0], "validation messages surface verbatim")

	_, open := h.controller.State()
	assert.True(t, open)
}

func TestSubmitMonitorFailureReportsOrphanedService(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.controller.Open(ModeCreateWithService, OpenContext{}))
	require.NoError(t, h.controller.SelectType("website"))

	form := h.fillWebsiteForm(t, "storefront")

	h.api.EXPECT().
		CreateService(gomock.Any(), gomock.Any()).
		Return(&models.Service{ID: 42, Name: "storefront"}, nil)

	h.api.EXPECT().
		CreateMonitor(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("503 Service Unavailable"))

	err := h.controller.Submit(context.Background(), form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storefront")
	assert.Contains(t, err.Error(), "was created")

	_, open := h.controller.State()
	assert.True(t, open)
}

// Two submits mean two service/monitor pairs; the controller does not
// deduplicate retries that already succeeded server-side.
func TestSubmitIsNotIdempotent(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.controller.Open(ModeCreateWithService, OpenContext{}))
	require.NoError(t, h.controller.SelectType("website"))

	form := h.fillWebsiteForm(t, "storefront")

	h.api.EXPECT().CreateService(gomock.Any(), gomock.Any()).
		Return(&models.Service{ID: 42}, nil).Times(2)
	h.api.EXPECT().CreateMonitor(gomock.Any(), gomock.Any()).
		Return(&models.Monitor{ID: 1}, nil).Times(2)

	require.NoError(t, h.controller.Submit(context.Background(), form))

	// The host re-opens and resubmits the same values.
	require.NoError(t, h.controller.Open(ModeCreateWithService, OpenContext{}))
	require.NoError(t, h.controller.SelectType("website"))

	form = h.fillWebsiteForm(t, "storefront")
	require.NoError(t, h.controller.Submit(context.Background(), form))

	assert.Len(t, h.notifier.successes, 2)
}

func TestSubmitAddToService(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.controller.Open(ModeAddToService, OpenContext{ServiceID: 9, ServiceName: "billing"}))
	require.NoError(t, h.controller.SelectType("port"))

	prefix := h.controller.BindingPrefix()
	form := monitortype.NewValues()
	require.NoError(t, h.controller.PopulateForm(form))
	form.Set(monitortype.BindingKey(prefix, "host"), "db.internal")
	form.Set(monitortype.BindingKey(prefix, "port"), "5432")
	form.Set(monitortype.BindingKey(prefix, monitortype.IntervalKey), "15")

	h.api.EXPECT().
		CreateMonitor(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.MonitorCreateRequest) (*models.Monitor, error) {
			assert.Equal(t, int64(9), req.ServiceID)
			assert.Equal(t, "port", req.MonitorType)
			assert.Equal(t, 15, req.IntervalMinutes)

			return &models.Monitor{ID: 2, ServiceID: 9}, nil
		})

	require.NoError(t, h.controller.Submit(context.Background(), form))
	assert.Equal(t, 1, h.refreshes)
}

func TestSubmitEditPreservesType(t *testing.T) {
	h := newHarness(t)

	monitor := &models.Monitor{
		ID:              7,
		ServiceID:       3,
		MonitorType:     "website",
		Config:          map[string]interface{}{"url": "https://example.com"},
		IntervalMinutes: 5,
	}

	require.NoError(t, h.controller.Open(ModeEdit, OpenContext{ServiceID: 3, ServiceName: "web", Monitor: monitor}))

	prefix := h.controller.BindingPrefix()
	form := monitortype.NewValues()
	require.NoError(t, h.controller.PopulateForm(form))
	form.Set(monitortype.BindingKey(prefix, "url"), "https://example.com/v2")
	form.Set(monitortype.BindingKey(prefix, monitortype.IntervalKey), "30")

	h.api.EXPECT().
		UpdateMonitor(gomock.Any(), int64(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, req *models.MonitorUpdateRequest) (*models.Monitor, error) {
			assert.Equal(t, "https://example.com/v2", req.Config["url"])
			require.NotNil(t, req.IntervalMinutes)
			assert.Equal(t, 30, *req.IntervalMinutes)

			return &models.Monitor{ID: 7}, nil
		})

	require.NoError(t, h.controller.Submit(context.Background(), form))
	assert.Contains(t, h.notifier.successes[0], "updated")
}

// Passive types append their ingestion instructions to the success
// notification.
func TestSubmitPassiveTypeShowsIngestion(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.controller.Open(ModeAddToService, OpenContext{ServiceID: 9, ServiceName: "billing"}))
	require.NoError(t, h.controller.SelectType("deadman"))

	prefix := h.controller.BindingPrefix()
	form := monitortype.NewValues()
	require.NoError(t, h.controller.PopulateForm(form))
	form.Set(monitortype.BindingKey(prefix, "name"), "nightly-backup")
	form.Set(monitortype.BindingKey(prefix, "expected_interval_hours"), "24")

	h.api.EXPECT().
		CreateMonitor(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.MonitorCreateRequest) (*models.Monitor, error) {
			assert.Positive(t, req.IntervalMinutes, "hidden intervals still persist a cadence")
			return &models.Monitor{ID: 3}, nil
		})

	require.NoError(t, h.controller.Submit(context.Background(), form))

	require.Len(t, h.notifier.successes, 1)
	assert.Contains(t, h.notifier.successes[0], "/api/v1/heartbeat/billing/nightly-backup")
}

func TestSubmitOutsideConfiguration(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.controller.Open(ModeCreateWithService, OpenContext{}))

	err := h.controller.Submit(context.Background(), monitortype.NewValues())
	assert.ErrorIs(t, err, errNotInConfiguration)
}

func TestCloseDiscardsState(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.controller.Open(ModeCreateWithService, OpenContext{}))
	require.NoError(t, h.controller.SelectType("website"))

	h.controller.Close()

	_, open := h.controller.State()
	assert.False(t, open)
	assert.ErrorIs(t, h.controller.Back(), errNoOpenWorkflow)
	assert.ErrorIs(t, h.controller.Submit(context.Background(), monitortype.NewValues()), errNoOpenWorkflow)
}

func TestApplyRenderHooks(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.controller.Open(ModeCreateWithService, OpenContext{}))
	require.NoError(t, h.controller.SelectType("snmp"))

	prefix := h.controller.BindingPrefix()
	form := monitortype.NewValues()
	form.Set(monitortype.BindingKey(prefix, "oid_preset"), "sysUptime")

	h.controller.ApplyRenderHooks(form)

	got, ok := form.Get(monitortype.BindingKey(prefix, "oid"))
	require.True(t, ok, "preset selection should fill the OID")
	assert.NotEmpty(t, got)
}
