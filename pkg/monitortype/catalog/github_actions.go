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

type githubActionsDescriptor struct {
	monitortype.Base
}

func newGitHubActions() *githubActionsDescriptor {
	return &githubActionsDescriptor{
		Base: monitortype.Base{
			ID:        "github_actions",
			Name:      "GitHub Actions",
			Desc:      "Tracks workflow run status and success rate for a repository",
			IconName:  "workflow",
			Group:     monitortype.CategoryInfrastructure,
			Interval:  30,
			Intervals: defaultIntervals,
			Fields: []monitortype.FieldSpec{
				{
					Key:         "owner",
					Kind:        monitortype.FieldText,
					Label:       "Owner",
					Placeholder: "my-org",
					Required:    true,
				},
				{
					Key:         "repo",
					Kind:        monitortype.FieldText,
					Label:       "Repository",
					Placeholder: "my-service",
					Required:    true,
				},
				{
					Key:         "workflow_file",
					Kind:        monitortype.FieldText,
					Label:       "Workflow file",
					Placeholder: "ci.yml",
					Hint:        "Optional; all workflows when empty",
				},
				{
					Key:   "branch",
					Kind:  monitortype.FieldText,
					Label: "Branch",
					Hint:  "Optional; default branch when empty",
				},
				{
					Key:   "token",
					Kind:  monitortype.FieldPassword,
					Label: "Access token",
					Hint:  "Optional; required for private repositories",
				},
				{
					Key:     "success_threshold",
					Kind:    monitortype.FieldNumber,
					Label:   "Success rate threshold (%)",
					Default: 80,
					Min:     monitortype.Num(0),
					Max:     monitortype.Num(100),
					Hint:    "Recent success rate below this marks the service degraded",
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

func (*githubActionsDescriptor) Validate(cfg monitortype.Config) error {
	if _, err := requireString(cfg, "owner", "Owner"); err != nil {
		return err
	}

	if _, err := requireString(cfg, "repo", "Repository"); err != nil {
		return err
	}

	if err := optionalNumber(cfg, "success_threshold", "Success rate threshold", 0, 100); err != nil {
		return err
	}

	return optionalNumber(cfg, "timeout_seconds", "Timeout", 1, 120)
}
