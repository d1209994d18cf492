package form

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"
)

// FieldsPerPage is the number of fields on every page.
const FieldsPerPage = 4

// FieldSpec describes one field of a page.
type FieldSpec struct {
	Name  string `yaml:"name" validate:"required,excludesall=%"`
	Label string `yaml:"label" validate:"required"`
	Help  string `yaml:"help"`
}

// PageSpec describes one page and its four fields.
type PageSpec struct {
	Title  string      `yaml:"title" validate:"required"`
	Fields []FieldSpec `yaml:"fields" validate:"len=4,dive"`
}

// Schema is the ordered list of pages making up the form.
type Schema struct {
	Pages []PageSpec `yaml:"pages" validate:"min=1,dive"`
}

var validate = validator.New()

// Validate checks page shape and field name uniqueness.
func (s Schema) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}
	seen := make(map[string]string)
	for _, page := range s.Pages {
		for _, field := range page.Fields {
			if prev, ok := seen[field.Name]; ok {
				return fmt.Errorf("invalid schema: field name %q used on pages %q and %q", field.Name, prev, page.Title)
			}
			seen[field.Name] = page.Title
		}
	}
	return nil
}

// Names returns every field name in page then field order.
func (s Schema) Names() []string {
	names := make([]string, 0, len(s.Pages)*FieldsPerPage)
	for _, page := range s.Pages {
		for _, field := range page.Fields {
			names = append(names, field.Name)
		}
	}
	return names
}

// Indicator returns the navigation line shown under page i, naming the
// neighbouring pages.
func (s Schema) Indicator(i int) string {
	prev, next := "/dev/null", "/dev/null"
	if i > 0 {
		prev = s.Pages[i-1].Title
	}
	if i < len(s.Pages)-1 {
		next = s.Pages[i+1].Title
	}
	return fmt.Sprintf(" %s <== page %d/%d ==> %s ", prev, i+1, len(s.Pages), next)
}

// LoadSchema reads a YAML schema file. Fields without a name get one derived
// from their label.
func LoadSchema(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Schema{}, fmt.Errorf("failed to parse schema file %s: %w", path, err)
	}
	if len(s.Pages) == 0 {
		return Schema{}, errors.New("schema defines no pages")
	}

	for p := range s.Pages {
		for f := range s.Pages[p].Fields {
			field := &s.Pages[p].Fields[f]
			if field.Name == "" {
				field.Name = FieldName(field.Label)
			}
		}
	}

	if err := s.Validate(); err != nil {
		return Schema{}, err
	}
	return s, nil
}

// FieldName turns a label into a placeholder-safe name,
// e.g. "Steps to reproduce" becomes "steps_to_reproduce".
func FieldName(label string) string {
	return strings.ReplaceAll(slug.Make(label), "-", "_")
}

// DefaultSchema returns the built-in nine page commit form.
func DefaultSchema() Schema {
	return Schema{Pages: []PageSpec{
		{
			Title: "Problematic",
			Fields: []FieldSpec{
				{Name: "title", Label: "Title", Help: "Indicate the problem title"},
				{Name: "description", Label: "Description", Help: "Describe the problem in detail"},
				{Name: "steps", Label: "Steps to reproduce", Help: "Indicate the steps necessary to reproduce the problem"},
				{Name: "expected_description", Label: "Expectation", Help: "Describe the expected behavior"},
			},
		},
		{
			Title: "Resolution",
			Fields: []FieldSpec{
				{Name: "system_before", Label: "Before", Help: "Describe the state before the implementation of the resolution"},
				{Name: "system_after", Label: "After", Help: "Describe the state after the implementation of the resolution"},
				{Name: "expectation", Label: "Results", Help: "Describe the results obtained after the implementation"},
				{Name: "samples", Label: "Samples", Help: "Give examples of the use of the resolution"},
			},
		},
		{
			Title: "Security",
			Fields: []FieldSpec{
				{Name: "vulnerabilities", Label: "Vulnerability", Help: "Describe potential security vulnerabilities"},
				{Name: "qualities", Label: "Quality", Help: "Describe the quality aspects of the code and the solution"},
				{Name: "conformity", Label: "Conformity", Help: "Indicate the security and conformity standards met"},
				{Name: "risk", Label: "Risk", Help: "Describe potential security risks"},
			},
		},
		{
			Title: "Tests",
			Fields: []FieldSpec{
				{Name: "tests_added", Label: "Added", Help: "Describe the new tests added"},
				{Name: "tests_updated", Label: "Updated", Help: "Describe the updated tests"},
				{Name: "test_deleted", Label: "Deleted", Help: "Describe the deleted tests"},
				{Name: "tested_platforms", Label: "Platforms", Help: "Indicate the platforms on which the tests were carried out"},
			},
		},
		{
			Title: "Requirements",
			Fields: []FieldSpec{
				{Name: "breaking_changes", Label: "Breaking changes", Help: "Indicate if the code have a breaking changes"},
				{Name: "dependencies", Label: "New needed dependencies", Help: "Indicate the new needed dependencies"},
				{Name: "packages", Label: "New packages needed", Help: "Indicate the new needed packages name's"},
				{Name: "rollbacks", Label: "Rollback", Help: "Describe the rollback process in case of a problem"},
			},
		},
		{
			Title: "Database",
			Fields: []FieldSpec{
				{Name: "db_up", Label: "Up", Help: "What's it's created on up"},
				{Name: "db_down", Label: "Down", Help: "What's it's removed on down"},
				{Name: "db_changes", Label: "Changes", Help: "Describe the migrations results"},
				{Name: "why_db_changes", Label: "Why", Help: "Describe the reason of the update"},
			},
		},
		{
			Title: "Communication",
			Fields: []FieldSpec{
				{Name: "authors", Label: "Authors", Help: "Authors name's"},
				{Name: "testers", Label: "Testers", Help: "Indicate the project testers"},
				{Name: "comments", Label: "Comments", Help: "Indicate comments and feedback"},
				{Name: "notes", Label: "Notes", Help: "Indicate important remarks and observations"},
			},
		},
		{
			Title: "Ideas",
			Fields: []FieldSpec{
				{Name: "news_headline", Label: "News headline", Help: "News headline and brief description"},
				{Name: "workflow", Label: "Workflow samples", Help: "Workflow steps and user interactions"},
				{Name: "workflows_samples", Label: "Examples", Help: "Code examples or visual mockups"},
				{Name: "technical_considerations", Label: "Technical considerations", Help: "Technical considerations"},
			},
		},
		{
			Title: "Next",
			Fields: []FieldSpec{
				{Name: "next_description", Label: "To Implement", Help: "Description of the feature"},
				{Name: "next_motivation", Label: "Motivation", Help: "Reasons for implementing this feature"},
				{Name: "next_reasons", Label: "Implementation Plan", Help: "Technical approach and steps involved"},
				{Name: "next_links", Label: "Related links", Help: "Links to relevant resources"},
			},
		},
	}}
}
