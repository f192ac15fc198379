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

package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/simplewatch/simplewatch/pkg/client"
	"github.com/simplewatch/simplewatch/pkg/config"
	"github.com/simplewatch/simplewatch/pkg/logger"
	"github.com/simplewatch/simplewatch/pkg/monitortype"
	"github.com/simplewatch/simplewatch/pkg/monitortype/catalog"
	"github.com/simplewatch/simplewatch/pkg/tui"
	"github.com/simplewatch/simplewatch/pkg/workflow"
)

var (
	errFailedToLoadConfig = fmt.Errorf("failed to load config")
	errUnknownModeFlag    = fmt.Errorf("mode must be create, add or edit")
	errServiceIDRequired  = fmt.Errorf("add mode requires -service-id")
	errMonitorIDRequired  = fmt.Errorf("edit mode requires -monitor-id")
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "/etc/simplewatch/monitorctl.json", "Path to config file")
	mode := flag.String("mode", "create", "Workflow mode: create, add or edit")
	serviceID := flag.Int64("service-id", 0, "Target service id (add mode)")
	serviceName := flag.String("service-name", "", "Target service name shown in the form (add mode)")
	monitorID := flag.Int64("monitor-id", 0, "Monitor id to edit (edit mode)")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(ctx, *configPath)
	if err != nil {
		return fmt.Errorf("%w: %w", errFailedToLoadConfig, err)
	}

	appLogger, err := logger.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	api := client.NewHTTPClient(cfg.ServerURL, cfg.APIToken, appLogger)

	registry := monitortype.NewRegistry(appLogger)
	if err := registry.LoadAll(ctx, catalog.BuiltIn); err != nil {
		return err
	}

	wfMode, octx, err := resolveTarget(ctx, api, *mode, *serviceID, *serviceName, *monitorID)
	if err != nil {
		return err
	}

	app, err := tui.NewApp(registry, api, wfMode, octx, nil, appLogger)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(app).Run()

	return err
}

// resolveTarget maps the CLI flags onto a workflow mode and its open
// context, fetching the monitor under edit from the server.
func resolveTarget(ctx context.Context, api client.Client, mode string, serviceID int64, serviceName string, monitorID int64) (workflow.Mode, workflow.OpenContext, error) {
	switch mode {
	case "create":
		return workflow.ModeCreateWithService, workflow.OpenContext{}, nil

	case "add":
		if serviceID == 0 {
			return "", workflow.OpenContext{}, errServiceIDRequired
		}

		octx := workflow.OpenContext{ServiceID: serviceID, ServiceName: serviceName}
		if serviceName == "" {
			if service, err := api.GetService(ctx, serviceID); err == nil {
				octx.ServiceName = service.Name
			}
		}

		return workflow.ModeAddToService, octx, nil

	case "edit":
		if monitorID == 0 {
			return "", workflow.OpenContext{}, errMonitorIDRequired
		}

		monitor, err := api.GetMonitor(ctx, monitorID)
		if err != nil {
			return "", workflow.OpenContext{}, err
		}

		octx := workflow.OpenContext{ServiceID: monitor.ServiceID, ServiceName: serviceName, Monitor: monitor}
		if serviceName == "" {
			if service, err := api.GetService(ctx, monitor.ServiceID); err == nil {
				octx.ServiceName = service.Name
			}
		}

		return workflow.ModeEdit, octx, nil

	default:
		return "", workflow.OpenContext{}, fmt.Errorf("%w, got %q", errUnknownModeFlag, mode)
	}
}
