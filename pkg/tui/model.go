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

// Package tui is the terminal host for the monitor workflows: it
// renders the type catalog and the generated configuration forms over
// bubbletea, leaving all flow decisions to the workflow controller.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/simplewatch/simplewatch/pkg/client"
	"github.com/simplewatch/simplewatch/pkg/logger"
	"github.com/simplewatch/simplewatch/pkg/monitortype"
	"github.com/simplewatch/simplewatch/pkg/workflow"
)

type screen int

const (
	screenTypeSelect screen = iota
	screenConfigure
	screenResult
)

// typeEntry is one row of the selection catalog: either a category
// header or a selectable descriptor.
type typeEntry struct {
	header     string
	descriptor monitortype.Descriptor
}

// App is the bubbletea model hosting one monitor workflow from open
// to submit. It doubles as the workflow's Notifier.
type App struct {
	controller *workflow.Controller
	registry   *monitortype.Registry
	log        logger.Logger
	styles     styles

	mode workflow.Mode

	screen  screen
	entries []typeEntry
	cursor  int

	form         *formModel
	values       monitortype.Values
	supplemental string

	successMsg string
	errorMsg   string
	canCopy    bool
	copied     bool
	quitting   bool
}

// NewApp wires a workflow controller with itself as the notifier,
// opens the workflow, and builds the initial screen. Edit mode skips
// type selection entirely.
func NewApp(registry *monitortype.Registry, api client.Client, mode workflow.Mode, octx workflow.OpenContext, onRefresh func(), log logger.Logger) (*App, error) {
	if log == nil {
		log = logger.NewTestLogger()
	}

	app := &App{
		registry: registry,
		log:      log,
		styles:   newStyles(),
		mode:     mode,
		values:   monitortype.NewValues(),
		canCopy:  clipboard.WriteAll("") == nil,
	}

	app.controller = workflow.NewController(registry, api, app, onRefresh, log)

	if err := app.controller.Open(mode, octx); err != nil {
		return nil, err
	}

	state, _ := app.controller.State()
	if state.Step == workflow.StepConfiguration {
		if err := app.enterConfiguration(); err != nil {
			return nil, err
		}
	} else {
		app.screen = screenTypeSelect
		app.buildCatalog()
	}

	return app, nil
}

// ShowSuccess implements workflow.Notifier.
func (a *App) ShowSuccess(msg string) { a.successMsg = msg }

// ShowError implements workflow.Notifier.
func (a *App) ShowError(msg string) { a.errorMsg = msg }

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) buildCatalog() {
	a.entries = a.entries[:0]

	for _, group := range a.registry.Categorize() {
		a.entries = append(a.entries, typeEntry{header: categoryLabel(group.Category)})

		for _, d := range group.Descriptors {
			a.entries = append(a.entries, typeEntry{descriptor: d})
		}
	}

	a.cursor = a.firstSelectable(0, 1)
}

func categoryLabel(c monitortype.Category) string {
	switch c {
	case monitortype.CategoryWeb:
		return "Web"
	case monitortype.CategoryNetwork:
		return "Network"
	case monitortype.CategoryInfrastructure:
		return "Infrastructure"
	case monitortype.CategoryPush:
		return "Push"
	case monitortype.CategoryTracking:
		return "Tracking"
	default:
		return string(c)
	}
}

// firstSelectable walks from idx in the given direction to the next
// descriptor row, skipping headers. Returns -1 when none remain.
func (a *App) firstSelectable(idx, dir int) int {
	for i := idx; i >= 0 && i < len(a.entries); i += dir {
		if a.entries[i].descriptor != nil {
			return i
		}
	}

	return -1
}

// enterConfiguration builds the form for the bound descriptor,
// pre-filling it from the monitor under edit or schema defaults.
func (a *App) enterConfiguration() error {
	a.values = monitortype.NewValues()

	if err := a.controller.PopulateForm(a.values); err != nil {
		return err
	}

	a.controller.ApplyRenderHooks(a.values)

	plan, err := a.controller.BuildForm(a.values)
	if err != nil {
		return err
	}

	d, _ := a.controller.Descriptor()

	a.form = buildFormModel(plan, d.Schema(), a.controller.BindingPrefix(), a.mode == workflow.ModeCreateWithService, a.styles)
	a.supplemental = plan.Supplemental
	a.screen = screenConfigure
	a.errorMsg = ""

	return nil
}

// rebuildForm re-interprets the schema after a value change that
// drives visibility or a render hook, preserving input and focus.
func (a *App) rebuildForm() {
	a.form.mergeValues(a.values)
	a.controller.ApplyRenderHooks(a.values)

	plan, err := a.controller.BuildForm(a.values)
	if err != nil {
		a.errorMsg = err.Error()
		return
	}

	focused := a.form.focusedBindingKey()
	d, _ := a.controller.Descriptor()

	a.form = buildFormModel(plan, d.Schema(), a.controller.BindingPrefix(), a.mode == workflow.ModeCreateWithService, a.styles)
	a.form.focusByBindingKey(focused)
	a.supplemental = plan.Supplemental
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && keyMsg.Type == tea.KeyCtrlC {
		a.quitting = true
		a.controller.Close()

		return a, tea.Quit
	}

	switch a.screen {
	case screenTypeSelect:
		if isKey {
			return a.updateTypeSelect(keyMsg)
		}

		return a, nil

	case screenConfigure:
		return a.updateConfigure(msg)

	default:
		if isKey {
			return a.updateResult(keyMsg)
		}

		return a, nil
	}
}

func (a *App) updateTypeSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.quitting = true
		a.controller.Close()

		return a, tea.Quit

	case tea.KeyUp:
		if next := a.firstSelectable(a.cursor-1, -1); next >= 0 {
			a.cursor = next
		}

	case tea.KeyDown:
		if next := a.firstSelectable(a.cursor+1, 1); next >= 0 {
			a.cursor = next
		}

	case tea.KeyEnter:
		if a.cursor < 0 || a.cursor >= len(a.entries) {
			break
		}

		d := a.entries[a.cursor].descriptor
		if d == nil {
			break
		}

		if err := a.controller.SelectType(d.TypeID()); err != nil {
			a.errorMsg = err.Error()
			break
		}

		if err := a.enterConfiguration(); err != nil {
			a.errorMsg = err.Error()
		}

		return a, textinput.Blink
	}

	return a, nil
}

func (a *App) updateConfigure(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			if err := a.controller.Back(); err != nil {
				// Edit mode has nowhere to go back to; leave instead.
				a.quitting = true
				a.controller.Close()

				return a, tea.Quit
			}

			a.screen = screenTypeSelect
			a.errorMsg = ""

			return a, nil

		case tea.KeyTab, tea.KeyDown:
			a.form.next()
			return a, textinput.Blink

		case tea.KeyShiftTab, tea.KeyUp:
			a.form.prev()
			return a, textinput.Blink

		case tea.KeyEnter:
			return a.submit()
		}
	}

	cmd, visibilityChanged := a.form.update(msg)
	if visibilityChanged {
		a.rebuildForm()
	}

	return a, cmd
}

func (a *App) submit() (tea.Model, tea.Cmd) {
	a.form.mergeValues(a.values)
	a.errorMsg = ""

	if err := a.controller.Submit(context.Background(), a.values); err != nil {
		// The notifier already captured the message; stay on the form.
		a.log.Debug().Err(err).Msg("Submit rejected")
		return a, nil
	}

	a.screen = screenResult
	a.copied = false

	return a, nil
}

func (a *App) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter || msg.Type == tea.KeyEsc {
		a.quitting = true
		return a, tea.Quit
	}

	if msg.String() == "c" && a.canCopy {
		if err := clipboard.WriteAll(a.successMsg); err == nil {
			a.copied = true
		}
	}

	return a, nil
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	var body string

	switch a.screen {
	case screenTypeSelect:
		body = a.viewTypeSelect()
	case screenConfigure:
		body = a.viewConfigure()
	default:
		body = a.viewResult()
	}

	return a.styles.app.Render(body)
}

func (a *App) viewTypeSelect() string {
	var b strings.Builder

	b.WriteString(a.styles.title.Render("Choose a monitor type"))
	b.WriteString("\n\n")

	for i, e := range a.entries {
		if e.descriptor == nil {
			b.WriteString(a.styles.category.Render(e.header))
			b.WriteString("\n")

			continue
		}

		line := fmt.Sprintf("%s — %s", e.descriptor.DisplayName(), e.descriptor.Description())
		if i == a.cursor {
			b.WriteString(a.styles.focused.Render("› " + line))
		} else {
			b.WriteString("  " + a.styles.label.Render(line))
		}

		b.WriteString("\n")
	}

	if a.errorMsg != "" {
		b.WriteString("\n" + a.styles.errMsg.Render(a.errorMsg) + "\n")
	}

	b.WriteString("\n" + a.styles.help.Render("↑/↓ move · enter select · esc quit"))

	return b.String()
}

func (a *App) viewConfigure() string {
	var b strings.Builder

	d, bound := a.controller.Descriptor()
	if bound {
		b.WriteString(a.styles.title.Render("Configure " + d.DisplayName()))
		b.WriteString("\n\n")
	}

	b.WriteString(a.form.view())

	if a.supplemental != "" {
		b.WriteString("\n" + a.styles.code.Render(a.supplemental) + "\n")
	}

	if a.errorMsg != "" {
		b.WriteString("\n" + a.styles.errMsg.Render(a.errorMsg) + "\n")
	}

	help := "tab next · enter save · esc back"
	if a.mode == workflow.ModeEdit {
		help = "tab next · enter save · esc quit"
	}

	b.WriteString("\n" + a.styles.help.Render(help))

	return b.String()
}

func (a *App) viewResult() string {
	var b strings.Builder

	b.WriteString(a.styles.success.Render("✓ Saved"))
	b.WriteString("\n\n")
	b.WriteString(a.styles.code.Render(a.successMsg))
	b.WriteString("\n")

	help := "enter close"
	if a.canCopy {
		help = "c copy · enter close"
	}

	if a.copied {
		b.WriteString(a.styles.hint.Render("Copied to clipboard") + "\n")
	}

	b.WriteString("\n" + a.styles.help.Render(help))

	return b.String()
}
