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
	"errors"

	"github.com/simplewatch/simplewatch/pkg/monitortype"
)

var (
	errTitleLengthOrder       = errors.New("title minimum length must be less than maximum length")
	errDescriptionLengthOrder = errors.New("description minimum length must be less than maximum length")
)

type seoDescriptor struct {
	monitortype.Base
}

func newSEO() *seoDescriptor {
	return &seoDescriptor{
		Base: monitortype.Base{
			ID:        "seo",
			Name:      "SEO Tags",
			Desc:      "Checks a page's title, meta description, and social tags",
			IconName:  "search",
			Group:     monitortype.CategoryWeb,
			Interval:  1440,
			Intervals: dailyIntervals,
			Fields: []monitortype.FieldSpec{
				{
					Key:         "url",
					Kind:        monitortype.FieldURL,
					Label:       "URL",
					Placeholder: "https://example.com",
					Required:    true,
				},
				{Key: "check_title", Kind: monitortype.FieldCheckbox, Label: "Check title tag", Default: true},
				{Key: "check_description", Kind: monitortype.FieldCheckbox, Label: "Check meta description", Default: true},
				{Key: "check_og_tags", Kind: monitortype.FieldCheckbox, Label: "Check Open Graph tags", Default: true},
				{Key: "check_canonical", Kind: monitortype.FieldCheckbox, Label: "Check canonical link", Default: false},
				{Key: "check_robots", Kind: monitortype.FieldCheckbox, Label: "Check robots meta", Default: false},
				{
					Key:         "title_min_length",
					Kind:        monitortype.FieldNumber,
					Label:       "Title min length",
					Default:     30,
					Min:         monitortype.Num(1),
					Max:         monitortype.Num(200),
					VisibleWhen: &monitortype.Visibility{Field: "check_title", Values: []string{"true"}},
				},
				{
					Key:         "title_max_length",
					Kind:        monitortype.FieldNumber,
					Label:       "Title max length",
					Default:     60,
					Min:         monitortype.Num(1),
					Max:         monitortype.Num(200),
					VisibleWhen: &monitortype.Visibility{Field: "check_title", Values: []string{"true"}},
				},
				{
					Key:         "description_min_length",
					Kind:        monitortype.FieldNumber,
					Label:       "Description min length",
					Default:     120,
					Min:         monitortype.Num(1),
					Max:         monitortype.Num(500),
					VisibleWhen: &monitortype.Visibility{Field: "check_description", Values: []string{"true"}},
				},
				{
					Key:         "description_max_length",
					Kind:        monitortype.FieldNumber,
					Label:       "Description max length",
					Default:     160,
					Min:         monitortype.Num(1),
					Max:         monitortype.Num(500),
					VisibleWhen: &monitortype.Visibility{Field: "check_description", Values: []string{"true"}},
				},
			},
		},
	}
}

func (*seoDescriptor) Validate(cfg monitortype.Config) error {
	if err := requireURL(cfg, "url", "URL"); err != nil {
		return err
	}

	titleMin, hasTitleMin := cfg.Number("title_min_length")
	titleMax, hasTitleMax := cfg.Number("title_max_length")

	if hasTitleMin && hasTitleMax && titleMin >= titleMax {
		return errTitleLengthOrder
	}

	descMin, hasDescMin := cfg.Number("description_min_length")
	descMax, hasDescMax := cfg.Number("description_max_length")

	if hasDescMin && hasDescMax && descMin >= descMax {
		return errDescriptionLengthOrder
	}

	return nil
}
