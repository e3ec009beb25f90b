package job

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/artem13815/jobboard/pkg/nlp"
)

// SortKey selects the ordering of search results.
type SortKey string

const (
	SortNewest     SortKey = "newest"
	SortOldest     SortKey = "oldest"
	SortSalaryDesc SortKey = "salary_desc"
	SortSalaryAsc  SortKey = "salary_asc"
	SortPopular    SortKey = "popular"
	SortTitle      SortKey = "title"
)

var sortKeys = []SortKey{SortNewest, SortOldest, SortSalaryDesc, SortSalaryAsc, SortPopular, SortTitle}

func SortKeys() []SortKey { return append([]SortKey(nil), sortKeys...) }

// field-style spellings accepted from older clients
var sortAliases = map[string]SortKey{
	"-created_at":  SortNewest,
	"created_at":   SortOldest,
	"-salary_min":  SortSalaryDesc,
	"salary_min":   SortSalaryAsc,
	"-views_count": SortPopular,
}

// Columns refer to "jobs j JOIN employer_profiles e". Every ordering ends with the id
// so that pages are stable.
var orderClauses = map[SortKey]string{
	SortNewest:     "j.created_at DESC, j.id DESC",
	SortOldest:     "j.created_at ASC, j.id ASC",
	SortSalaryDesc: "j.salary_min DESC NULLS LAST, j.created_at DESC, j.id DESC",
	SortSalaryAsc:  "j.salary_min ASC NULLS LAST, j.created_at DESC, j.id DESC",
	SortPopular:    "j.views_count DESC, j.created_at DESC, j.id DESC",
	SortTitle:      "j.title ASC, j.id ASC",
}

// ParseSortKey maps a raw sort parameter to a key; unknown values mean newest first.
func ParseSortKey(raw string) SortKey {
	raw = strings.TrimSpace(raw)
	if k, ok := sortAliases[raw]; ok {
		return k
	}
	k := SortKey(strings.ToLower(raw))
	if _, ok := orderClauses[k]; ok {
		return k
	}
	return SortNewest
}

// SearchCriteria holds the optional filters of a public job search.
// A zero field imposes no constraint.
type SearchCriteria struct {
	Keyword         string
	CategoryID      *uuid.UUID
	Location        string
	Type            Type
	ExperienceLevel ExperienceLevel
	SalaryMin       *int
	RemoteOnly      bool
	Sort            SortKey
}

// CriteriaFromQuery reads search parameters through get (usually a query-string lookup).
// Malformed values are dropped rather than reported.
func CriteriaFromQuery(get func(string) string) SearchCriteria {
	c := SearchCriteria{
		Keyword:  strings.TrimSpace(get("search")),
		Location: strings.TrimSpace(get("location")),
		Sort:     ParseSortKey(get("sort_by")),
	}
	if id, err := uuid.Parse(strings.TrimSpace(get("category"))); err == nil && id != uuid.Nil {
		c.CategoryID = &id
	}
	if t := Type(strings.TrimSpace(get("job_type"))); t.Valid() {
		c.Type = t
	}
	if e := ExperienceLevel(strings.TrimSpace(get("experience_level"))); e.Valid() {
		c.ExperienceLevel = e
	}
	// 0 is "no floor", same as an empty field.
	if n, err := strconv.Atoi(strings.TrimSpace(get("salary_min"))); err == nil && n > 0 {
		// No stored salary exceeds MaxSalary, so clamping keeps the result empty.
		n = min(n, MaxSalary)
		c.SalaryMin = &n
	}
	c.RemoteOnly = parseFlag(get("is_remote"))
	return c
}

func parseFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// Query is a WHERE/ORDER BY pair with positional arguments for pgx.
type Query struct {
	Where   []string
	Args    []any
	OrderBy string
}

// WhereSQL renders the conjunction of all predicates.
func (q Query) WhereSQL() string {
	if len(q.Where) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(q.Where, " AND ")
}

// Bind appends an argument and returns its placeholder.
func (q *Query) Bind(v any) string {
	q.Args = append(q.Args, v)
	return fmt.Sprintf("$%d", len(q.Args))
}

// BuildSearch translates criteria into predicates over "jobs j JOIN employer_profiles e".
// Only active jobs match; filters are ANDed; the keyword is an OR over title, company
// name, description and required skills.
func BuildSearch(c SearchCriteria) Query {
	q := Query{}
	q.Where = append(q.Where, "j.status = "+q.Bind(string(StatusActive)))

	if kw := strings.TrimSpace(c.Keyword); kw != "" {
		p := q.Bind(ContainsPattern(kw))
		q.Where = append(q.Where, fmt.Sprintf(
			"(j.title ILIKE %[1]s OR e.company_name ILIKE %[1]s OR j.description ILIKE %[1]s OR j.required_skills ILIKE %[1]s)", p))
	}
	if c.CategoryID != nil {
		q.Where = append(q.Where, "j.category_id = "+q.Bind(*c.CategoryID))
	}
	if c.Type.Valid() {
		q.Where = append(q.Where, "j.job_type = "+q.Bind(string(c.Type)))
	}
	if c.ExperienceLevel.Valid() {
		q.Where = append(q.Where, "j.experience_level = "+q.Bind(string(c.ExperienceLevel)))
	}
	if loc := strings.TrimSpace(c.Location); loc != "" {
		q.Where = append(q.Where, "j.location ILIKE "+q.Bind(ContainsPattern(loc)))
	}
	if c.RemoteOnly {
		q.Where = append(q.Where, "j.is_remote")
	}
	// NULL salary_min never satisfies >=, so jobs without a salary drop out.
	if c.SalaryMin != nil {
		q.Where = append(q.Where, "j.salary_min >= "+q.Bind(*c.SalaryMin))
	}

	clause, ok := orderClauses[c.Sort]
	if !ok {
		clause = orderClauses[SortNewest]
	}
	q.OrderBy = clause
	return q
}

// BuildRecommend matches active jobs whose required skills mention any of the given
// skills or their aliases. It returns ok=false when there is nothing to match on.
func BuildRecommend(skills []string) (q Query, ok bool) {
	variants := nlp.ExpandSkills(skills)
	if len(variants) == 0 {
		return Query{}, false
	}
	q.Where = append(q.Where, "j.status = "+q.Bind(string(StatusActive)))
	ors := make([]string, 0, len(variants))
	for _, v := range variants {
		ors = append(ors, "j.required_skills ILIKE "+q.Bind(ContainsPattern(v)))
	}
	q.Where = append(q.Where, "("+strings.Join(ors, " OR ")+")")
	q.OrderBy = orderClauses[SortNewest]
	return q, true
}

// BuildAdminList filters every job regardless of status for the admin job list.
// The keyword matches the title or the company name.
func BuildAdminList(f AdminFilter) Query {
	q := Query{}
	if f.Status.Valid() {
		q.Where = append(q.Where, "j.status = "+q.Bind(string(f.Status)))
	}
	if f.CategoryID != nil {
		q.Where = append(q.Where, "j.category_id = "+q.Bind(*f.CategoryID))
	}
	if kw := strings.TrimSpace(f.Search); kw != "" {
		p := q.Bind(ContainsPattern(kw))
		q.Where = append(q.Where, fmt.Sprintf("(j.title ILIKE %[1]s OR e.company_name ILIKE %[1]s)", p))
	}
	q.OrderBy = orderClauses[SortNewest]
	return q
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern turns user text into a literal substring pattern for ILIKE.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
