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
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/simplewatch/simplewatch/pkg/client"
	"github.com/simplewatch/simplewatch/pkg/logger"
	"github.com/simplewatch/simplewatch/pkg/models"
	"github.com/simplewatch/simplewatch/pkg/monitortype"
)

// ServiceNameKey is the pseudo-field the create_with_service flow
// reads the new service's name from. The host renders it alongside
// the generated controls.
const ServiceNameKey = "service_name"

var (
	errNoOpenWorkflow     = errors.New("no workflow is open")
	errUnsupportedType    = errors.New("unsupported monitor type")
	errNoBoundType        = errors.New("no monitor type is bound")
	errServiceNameMissing = errors.New("service name is required")
)

// Notifier surfaces outcomes to the user. It is observational only;
// the controller never branches on it.
type Notifier interface {
	ShowSuccess(msg string)
	ShowError(msg string)
}

// Controller owns exactly one workflow at a time. A new Open replaces
// any previous state outright; arbitrating concurrently open flows is
// the host's concern, not this package's.
type Controller struct {
	registry  *monitortype.Registry
	api       client.Client
	notifier  Notifier
	onRefresh func()
	log       logger.Logger

	state   *State
	bound   monitortype.Descriptor
	prefix  string
	monitor *models.Monitor
}

// NewController wires the controller to its collaborators. onRefresh
// is invoked after every successful submit so the host can reload its
// listing; it may be nil.
func NewController(
	registry *monitortype.Registry,
	api client.Client,
	notifier Notifier,
	onRefresh func(),
	log logger.Logger,
) *Controller {
	if log == nil {
		log = logger.NewTestLogger()
	}

	return &Controller{
		registry:  registry,
		api:       api,
		notifier:  notifier,
		onRefresh: onRefresh,
		log:       log,
	}
}

// Open starts a flow, discarding any previous one. Edit mode binds
// the monitor's type immediately; an unknown type id is reported as
// unsupported rather than crashing.
func (c *Controller) Open(mode Mode, octx OpenContext) error {
	state, err := openState(mode, octx)
	if err != nil {
		return err
	}

	c.state = &state
	c.bound = nil
	c.monitor = nil
	c.prefix = newBindingPrefix()

	if mode == ModeEdit {
		d, ok := c.registry.Get(state.TypeID)
		if !ok {
			c.state = nil
			return fmt.Errorf("%w: %s", errUnsupportedType, state.TypeID)
		}

		c.bound = d
		c.monitor = octx.Monitor
	}

	c.log.Debug().
		Str("mode", string(mode)).
		Str("step", string(state.Step)).
		Msg("Workflow opened")

	return nil
}

// State returns a copy of the current state; ok is false when no
// workflow is open.
func (c *Controller) State() (State, bool) {
	if c.state == nil {
		return State{}, false
	}

	return *c.state, true
}

// BindingPrefix returns the namespace the open flow's form binds
// under. Each Open generates a fresh prefix so stale forms never
// collide with the current one.
func (c *Controller) BindingPrefix() string {
	return c.prefix
}

// Descriptor returns the bound descriptor, if any.
func (c *Controller) Descriptor() (monitortype.Descriptor, bool) {
	return c.bound, c.bound != nil
}

// SelectType binds a descriptor and advances to configuration.
func (c *Controller) SelectType(typeID string) error {
	if c.state == nil {
		return errNoOpenWorkflow
	}

	d, ok := c.registry.Get(typeID)
	if !ok {
		return fmt.Errorf("%w: %s", errUnsupportedType, typeID)
	}

	next, err := c.state.selectType(typeID)
	if err != nil {
		return err
	}

	*c.state = next
	c.bound = d

	return nil
}

// Back returns to type selection and unbinds the type.
func (c *Controller) Back() error {
	if c.state == nil {
		return errNoOpenWorkflow
	}

	next, err := c.state.back()
	if err != nil {
		return err
	}

	*c.state = next
	c.bound = nil

	return nil
}

// Close discards the open workflow from any state. Pending
// persistence calls run to completion with their results discarded.
func (c *Controller) Close() {
	c.state = nil
	c.bound = nil
	c.monitor = nil
	c.prefix = ""
}

// BuildForm interprets the bound descriptor's schema into UI
// structure for the host to render.
func (c *Controller) BuildForm(values monitortype.FormReader) (monitortype.FormPlan, error) {
	if c.state == nil {
		return monitortype.FormPlan{}, errNoOpenWorkflow
	}

	if c.bound == nil {
		return monitortype.FormPlan{}, errNoBoundType
	}

	return monitortype.BuildForm(c.bound, c.prefix, monitortype.BuildOptions{
		ServiceName: c.state.ServiceName,
		MonitorName: c.monitorName(monitortype.Config(c.currentConfig())),
		Values:      values,
	}), nil
}

// PopulateForm fills the form from the monitor being edited. In
// create flows it only applies schema defaults.
func (c *Controller) PopulateForm(form monitortype.FormWriter) error {
	if c.state == nil {
		return errNoOpenWorkflow
	}

	if c.bound == nil {
		return errNoBoundType
	}

	cfg := monitortype.Config{}
	interval := c.bound.DefaultInterval()

	if c.monitor != nil {
		cfg = monitortype.Config(c.monitor.Config)
		if c.monitor.IntervalMinutes > 0 {
			interval = c.monitor.IntervalMinutes
		}
	}

	c.bound.PopulateForm(form, c.prefix, cfg)

	if c.bound.ShowInterval() {
		form.Set(monitortype.BindingKey(c.prefix, monitortype.IntervalKey), strconv.Itoa(interval))
	}

	return nil
}

// ApplyRenderHooks runs the descriptor's OnRendered hook, when it has
// one. Hosts call this after rendering and again after any change to
// hook-controlling fields; hooks are repeat-safe by contract.
func (c *Controller) ApplyRenderHooks(form monitortype.FormWriter) {
	if c.bound == nil {
		return
	}

	if hook, ok := c.bound.(monitortype.RenderHook); ok {
		hook.OnRendered(form, c.prefix)
	}
}

// Submit extracts and validates the config, then performs the
// mode-specific persistence action. Failures keep the workflow in
// configuration for retry; success closes it. Submit does not
// deduplicate: calling it twice in a create mode creates duplicate
// resources.
func (c *Controller) Submit(ctx context.Context, form monitortype.FormReader) error {
	if c.state == nil {
		return errNoOpenWorkflow
	}

	if c.state.Step != StepConfiguration || c.bound == nil {
		return fmt.Errorf("submit: %w", errNotInConfiguration)
	}

	cfg := c.bound.ExtractConfig(form, c.prefix)

	if err := c.bound.Validate(cfg); err != nil {
		c.notifier.ShowError(err.Error())
		return err
	}

	interval := c.readInterval(form)

	serviceName, err := c.persist(ctx, form, cfg, interval)
	if err != nil {
		c.notifier.ShowError(err.Error())
		c.log.Warn().Err(err).Str("monitor_type", c.bound.TypeID()).Msg("Submit failed")

		return err
	}

	c.notifier.ShowSuccess(c.successMessage(serviceName, cfg))

	if c.onRefresh != nil {
		c.onRefresh()
	}

	c.Close()

	return nil
}

func (c *Controller) persist(
	ctx context.Context,
	form monitortype.FormReader,
	cfg monitortype.Config,
	interval int,
) (string, error) {
	switch c.state.Mode {
	case ModeCreateWithService:
		return c.createWithService(ctx, form, cfg, interval)

	case ModeAddToService:
		_, err := c.api.CreateMonitor(ctx, &models.MonitorCreateRequest{
			ServiceID:       c.state.ServiceID,
			MonitorType:     c.bound.TypeID(),
			Config:          cfg,
			IntervalMinutes: interval,
		})

		return c.state.ServiceName, err

	case ModeEdit:
		req := &models.MonitorUpdateRequest{Config: cfg}
		if c.bound.ShowInterval() {
			req.IntervalMinutes = &interval
		}

		_, err := c.api.UpdateMonitor(ctx, c.state.MonitorID, req)

		return c.state.ServiceName, err

	default:
		return "", fmt.Errorf("%w: %q", errUnknownMode, c.state.Mode)
	}
}

// createWithService issues two sequential calls with no compensating
// rollback: when monitor creation fails after the service was
// created, the orphaned service remains and the error says so.
func (c *Controller) createWithService(
	ctx context.Context,
	form monitortype.FormReader,
	cfg monitortype.Config,
	interval int,
) (string, error) {
	raw, _ := form.Get(monitortype.BindingKey(c.prefix, ServiceNameKey))

	serviceName := strings.TrimSpace(raw)
	if serviceName == "" {
		return "", errServiceNameMissing
	}

	service, err := c.api.CreateService(ctx, &models.ServiceCreateRequest{Name: serviceName})
	if err != nil {
		return "", err
	}

	if _, err := c.api.CreateMonitor(ctx, &models.MonitorCreateRequest{
		ServiceID:       service.ID,
		MonitorType:     c.bound.TypeID(),
		Config:          cfg,
		IntervalMinutes: interval,
	}); err != nil {
		return "", fmt.Errorf("service %q was created but its monitor was not: %w", serviceName, err)
	}

	return serviceName, nil
}

// readInterval reads the interval the host bound under the
// conventional key. Types that hide the interval still persist their
// default so the scheduler has something to run on.
func (c *Controller) readInterval(form monitortype.FormReader) int {
	if !c.bound.ShowInterval() {
		return c.bound.DefaultInterval()
	}

	raw, ok := form.Get(monitortype.BindingKey(c.prefix, monitortype.IntervalKey))
	if !ok {
		return c.bound.DefaultInterval()
	}

	interval, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || interval <= 0 {
		return c.bound.DefaultInterval()
	}

	return interval
}

// successMessage includes the derived ingestion endpoint for
// push-style types so the user can wire their producer immediately.
func (c *Controller) successMessage(serviceName string, cfg monitortype.Config) string {
	verb := "created"
	if c.state.Mode == ModeEdit {
		verb = "updated"
	}

	msg := fmt.Sprintf("%s monitor %s", c.bound.DisplayName(), verb)

	if !c.bound.ShowInterval() {
		if sr, ok := c.bound.(monitortype.SupplementalRenderer); ok {
			msg += "\n" + sr.RenderSupplemental("", serviceName, c.monitorName(cfg))
		}
	}

	return msg
}

// monitorName is the user-assigned name push monitors carry in their
// config; empty for other types.
func (*Controller) monitorName(cfg monitortype.Config) string {
	if cfg == nil {
		return ""
	}

	return cfg.String("name")
}

// currentConfig is the config of the monitor being edited, nil in
// create flows.
func (c *Controller) currentConfig() map[string]interface{} {
	if c.monitor == nil {
		return nil
	}

	return c.monitor.Config
}

func newBindingPrefix() string {
	return "monitor_" + strings.ReplaceAll(uuid.NewString(), "-", "") + "_"
}
