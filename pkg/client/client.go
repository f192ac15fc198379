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

// Package client talks to the monitoring server's REST API. The
// workflow controller only sees the Client interface; failures are
// uniform "operation failed" errors with the server message carried
// verbatim.
package client

//go:generate mockgen -destination=mock_client.go -package=client github.com/simplewatch/simplewatch/pkg/client Client

import (
	"context"

	"github.com/simplewatch/simplewatch/pkg/models"
)

// Client is the persistence API consumed by the workflow controller.
type Client interface {
	CreateService(ctx context.Context, req *models.ServiceCreateRequest) (*models.Service, error)
	GetService(ctx context.Context, id int64) (*models.Service, error)
	CreateMonitor(ctx context.Context, req *models.MonitorCreateRequest) (*models.Monitor, error)
	UpdateMonitor(ctx context.Context, id int64, req *models.MonitorUpdateRequest) (*models.Monitor, error)
	GetMonitor(ctx context.Context, id int64) (*models.Monitor, error)
}
