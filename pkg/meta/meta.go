// Package meta describes the site and the choice lists clients render forms from.
package meta

import (
	"strings"

	"github.com/artem13815/jobboard/pkg/application"
	"github.com/artem13815/jobboard/pkg/auth"
	"github.com/artem13815/jobboard/pkg/job"
	"github.com/artem13815/jobboard/pkg/profile"
)

const (
	DefaultTitle  = "Job Portal"
	DefaultHeader = "Job Portal Administration"
)

// Site is the branding shown by clients and the admin area.
type Site struct {
	Title  string `json:"title"`
	Header string `json:"header"`
}

// NewSite fills blank values with the defaults.
func NewSite(title, header string) Site {
	s := Site{Title: strings.TrimSpace(title), Header: strings.TrimSpace(header)}
	if s.Title == "" {
		s.Title = DefaultTitle
	}
	if s.Header == "" {
		s.Header = DefaultHeader
	}
	return s
}

// Choice is one allowed value of an enumerated field.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Choices struct {
	Roles               []Choice `json:"roles"`
	JobTypes            []Choice `json:"jobTypes"`
	ExperienceLevels    []Choice `json:"experienceLevels"`
	JobStatuses         []Choice `json:"jobStatuses"`
	ApplicationStatuses []Choice `json:"applicationStatuses"`
	SortKeys            []Choice `json:"sortKeys"`
	CompanySizes        []Choice `json:"companySizes"`
	Industries          []Choice `json:"industries"`
	Visibilities        []Choice `json:"visibilities"`
}

// Info is the payload of the metadata endpoint.
type Info struct {
	Site    Site    `json:"site"`
	Choices Choices `json:"choices"`
}

func Build(site Site) Info {
	return Info{Site: site, Choices: Choices{
		Roles:               choices(auth.Roles()),
		JobTypes:            choices(job.Types()),
		ExperienceLevels:    choices(job.ExperienceLevels()),
		JobStatuses:         choices(job.Statuses()),
		ApplicationStatuses: choices(application.Statuses()),
		SortKeys:            sortChoices(),
		CompanySizes:        choices(profile.CompanySizes()),
		Industries:          verbatim(profile.Industries()),
		Visibilities:        choices(profile.Visibilities()),
	}}
}

func choices[T ~string](values []T) []Choice {
	out := make([]Choice, 0, len(values))
	for _, v := range values {
		out = append(out, Choice{Value: string(v), Label: Label(string(v))})
	}
	return out
}

// verbatim keeps values that are already display text.
func verbatim(values []string) []Choice {
	out := make([]Choice, 0, len(values))
	for _, v := range values {
		out = append(out, Choice{Value: v, Label: v})
	}
	return out
}

var sortLabels = map[job.SortKey]string{
	job.SortNewest:     "Newest first",
	job.SortOldest:     "Oldest first",
	job.SortSalaryDesc: "Highest salary",
	job.SortSalaryAsc:  "Lowest salary",
	job.SortPopular:    "Most viewed",
	job.SortTitle:      "Title",
}

func sortChoices() []Choice {
	keys := job.SortKeys()
	out := make([]Choice, 0, len(keys))
	for _, k := range keys {
		label, ok := sortLabels[k]
		if !ok {
			label = Label(string(k))
		}
		out = append(out, Choice{Value: string(k), Label: label})
	}
	return out
}

// Label turns a snake_case value into a display label: "full_time" -> "Full Time".
func Label(value string) string {
	words := strings.FieldsFunc(value, func(r rune) bool { return r == '_' || r == '-' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
