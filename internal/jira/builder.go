package jira

import (
	"fmt"
	"strings"
)

// Filter is a set of optional constraints used to build a JQL query.
// An empty field means no constraint on that axis.
type Filter struct {
	ProjectKey string
	IssueTypes []string
	Labels     []string
	Assignee   string
	Status     string
}

// allowedStatuses is the fixed set of status values accepted by BuildJQL.
var allowedStatuses = []string{
	"To Do",
	"In Progress",
	"Done",
	"Backlog",
	"Selected for Development",
}

// FilterValidationError reports a status value outside the allow-list.
type FilterValidationError struct {
	Status  string
	Allowed []string
}

func (e *FilterValidationError) Error() string {
	return fmt.Sprintf("invalid status: '%s'. Allowed statuses are: %s",
		e.Status, strings.Join(e.Allowed, ", "))
}

// AllowedStatuses returns a copy of the status allow-list.
func AllowedStatuses() []string {
	return append([]string(nil), allowedStatuses...)
}

// BuildJQL builds a JQL query string from filter parameters. Conditions
// are joined with AND in a fixed order: project, issue type, labels,
// assignee, status. A filter with no fields set yields an empty string.
func BuildJQL(f Filter) (string, error) {
	var parts []string

	if f.ProjectKey != "" {
		parts = append(parts, fmt.Sprintf("project = %s", f.ProjectKey))
	}

	if len(f.IssueTypes) > 0 {
		parts = append(parts, fmt.Sprintf("issueType in (%s)", quoteList(f.IssueTypes)))
	}

	if len(f.Labels) > 0 {
		parts = append(parts, fmt.Sprintf("labels in (%s)", quoteList(f.Labels)))
	}

	if f.Assignee != "" {
		// Assignee can be a username or display name, Jira resolves it.
		parts = append(parts, fmt.Sprintf(`assignee = "%s"`, f.Assignee))
	}

	if f.Status != "" {
		if !statusAllowed(f.Status) {
			return "", &FilterValidationError{Status: f.Status, Allowed: AllowedStatuses()}
		}
		// Status names can have spaces, so enclose in quotes
		parts = append(parts, fmt.Sprintf(`status = "%s"`, f.Status))
	}

	return strings.Join(parts, " AND "), nil
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf(`"%s"`, v)
	}
	return strings.Join(quoted, ", ")
}

func statusAllowed(status string) bool {
	for _, s := range allowedStatuses {
		if s == status {
			return true
		}
	}
	return false
}
