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

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/simplewatch/simplewatch/pkg/logger"
	"github.com/simplewatch/simplewatch/pkg/models"
)

const defaultRequestTimeout = 30 * time.Second

var errOperationFailed = errors.New("operation failed")

// HTTPClient implements Client against the server's JSON REST API.
type HTTPClient struct {
	baseURL string
	token   string
	http    *http.Client
	log     logger.Logger
}

// NewHTTPClient creates a client for the given server base URL. The
// token, when set, is sent as a bearer credential.
func NewHTTPClient(baseURL, token string, log logger.Logger) *HTTPClient {
	if log == nil {
		log = logger.NewTestLogger()
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: defaultRequestTimeout},
		log:     log,
	}
}

func (c *HTTPClient) CreateService(ctx context.Context, req *models.ServiceCreateRequest) (*models.Service, error) {
	var service models.Service
	if err := c.do(ctx, http.MethodPost, "/api/v1/services", req, &service); err != nil {
		return nil, err
	}

	return &service, nil
}

func (c *HTTPClient) GetService(ctx context.Context, id int64) (*models.Service, error) {
	var service models.Service
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/services/%d", id), nil, &service); err != nil {
		return nil, err
	}

	return &service, nil
}

func (c *HTTPClient) CreateMonitor(ctx context.Context, req *models.MonitorCreateRequest) (*models.Monitor, error) {
	var monitor models.Monitor
	if err := c.do(ctx, http.MethodPost, "/api/v1/monitors", req, &monitor); err != nil {
		return nil, err
	}

	return &monitor, nil
}

func (c *HTTPClient) UpdateMonitor(ctx context.Context, id int64, req *models.MonitorUpdateRequest) (*models.Monitor, error) {
	var monitor models.Monitor
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/monitors/%d", id), req, &monitor); err != nil {
		return nil, err
	}

	return &monitor, nil
}

func (c *HTTPClient) GetMonitor(ctx context.Context, id int64) (*models.Monitor, error) {
	var monitor models.Monitor
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/monitors/%d", id), nil, &monitor); err != nil {
		return nil, err
	}

	return &monitor, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, dst interface{}) error {
	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: %v", errOperationFailed, err)
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: %v", errOperationFailed, err)
	}

	req.Header.Set("Content-Type", "application/json")

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", errOperationFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", errOperationFailed, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.log.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("API request failed")

		return fmt.Errorf("%w: %s", errOperationFailed, serverDetail(data, resp.StatusCode))
	}

	if dst == nil {
		return nil
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %v", errOperationFailed, err)
	}

	return nil
}

// serverDetail extracts the server's error message so it can be
// surfaced verbatim; the raw body stands in when the shape is
// unexpected.
func serverDetail(body []byte, status int) string {
	var payload struct {
		Detail string `json:"detail"`
	}

	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}

	if len(body) > 0 {
		return string(body)
	}

	return fmt.Sprintf("server returned status %d", status)
}
