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

package catalog

import (
	"github.com/simplewatch/simplewatch/pkg/monitortype"
)

type ollamaDescriptor struct {
	monitortype.Base
}

func newOllama() *ollamaDescriptor {
	return &ollamaDescriptor{
		Base: monitortype.Base{
			ID:        "ollama",
			Name:      "Local LLM",
			Desc:      "Checks a local LLM server's API and loaded models",
			IconName:  "cpu",
			Group:     monitortype.CategoryInfrastructure,
			Interval:  5,
			Intervals: defaultIntervals,
			Fields: []monitortype.FieldSpec{
				{
					Key:         "host",
					Kind:        monitortype.FieldText,
					Label:       "Host",
					Default:     "localhost",
					Placeholder: "localhost",
					Required:    true,
				},
				{
					Key:     "port",
					Kind:    monitortype.FieldNumber,
					Label:   "Port",
					Default: 11434,
					Min:     monitortype.Num(minPort),
					Max:     monitortype.Num(maxPort),
				},
				{
					Key:     "protocol",
					Kind:    monitortype.FieldSelect,
					Label:   "Protocol",
					Default: "http",
					Options: []monitortype.Option{
						{Value: "http", Label: "http"},
						{Value: "https", Label: "https"},
					},
				},
				{
					Key:     "api_type",
					Kind:    monitortype.FieldSelect,
					Label:   "API flavor",
					Default: "ollama",
					Options: []monitortype.Option{
						{Value: "ollama", Label: "Ollama"},
						{Value: "lmstudio", Label: "LM Studio"},
						{Value: "openai_compatible", Label: "OpenAI compatible"},
					},
				},
				{
					Key:   "expected_model",
					Kind:  monitortype.FieldText,
					Label: "Expected model",
					Hint:  "Optional; degraded when the model is not available",
				},
				{
					Key:     "slow_response_threshold",
					Kind:    monitortype.FieldNumber,
					Label:   "Slow response threshold (ms)",
					Default: 5000,
					Min:     monitortype.Num(1),
				},
				{
					Key:     "timeout_seconds",
					Kind:    monitortype.FieldNumber,
					Label:   "Timeout (seconds)",
					Default: 10,
					Min:     monitortype.Num(1),
					Max:     monitortype.Num(120),
				},
			},
		},
	}
}

func (*ollamaDescriptor) Validate(cfg monitortype.Config) error {
	if err := requireHost(cfg, "host", "Host"); err != nil {
		return err
	}

	if err := optionalNumber(cfg, "port", "Port", minPort, maxPort); err != nil {
		return err
	}

	if err := requireOneOf(cfg, "protocol", "Protocol", "http", "https"); err != nil {
		return err
	}

	if err := requireOneOf(cfg, "api_type", "API flavor", "ollama", "lmstudio", "openai_compatible"); err != nil {
		return err
	}

	if err := optionalNumber(cfg, "slow_response_threshold", "Slow response threshold", 1, 600000); err != nil {
		return err
	}

	return optionalNumber(cfg, "timeout_seconds", "Timeout", 1, 120)
}
