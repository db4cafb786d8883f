package prompts

import (
	"net/url"
	"strconv"

	"github.com/meridian-legal/counsel/internal/classify"
	"github.com/meridian-legal/counsel/pkg/query"
	"github.com/meridian-legal/counsel/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "prompt_versions", "pv").
	Project("id", "ID").
	Project("version_id", "VersionID").
	Project("task", "Task").
	Project("content", "Content").
	Project("source_example_count", "SourceExampleCount").
	Project("active", "Active").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "created_at",
	Descending: true,
}

// Filters contains optional filtering criteria for version queries.
// Nil fields are ignored; both use exact matching.
type Filters struct {
	Task   *classify.Task `json:"task,omitempty"`
	Active *bool          `json:"active,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Task", f.Task).
		WhereEquals("Active", f.Active)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if t := values.Get("task"); t != "" {
		if task, err := classify.ParseTask(t); err == nil {
			f.Task = &task
		}
	}

	if a := values.Get("active"); a != "" {
		if v, err := strconv.ParseBool(a); err == nil {
			f.Active = &v
		}
	}

	return f
}

func scanVersion(s repository.Scanner) (Version, error) {
	var v Version
	err := s.Scan(
		&v.ID,
		&v.VersionID,
		&v.Task,
		&v.Content,
		&v.SourceExampleCount,
		&v.Active,
		&v.CreatedAt,
	)
	return v, err
}
