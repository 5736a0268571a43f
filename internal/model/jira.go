package model

// JiraIssue represents a Jira issue response
type JiraIssue struct {
	ID     string     `json:"id"`
	Key    string     `json:"key"`
	Fields JiraFields `json:"fields"`
}

// JiraFields represents the fields in a Jira issue
type JiraFields struct {
	Summary   string        `json:"summary"`
	Status    JiraStatus    `json:"status"`
	IssueType JiraIssueType `json:"issuetype"`
	Assignee  *JiraUser     `json:"assignee"`
	Reporter  *JiraUser     `json:"reporter"`
	Priority  *JiraPriority `json:"priority"`
	Labels    []string      `json:"labels"`
	Created   string        `json:"created"`
	Updated   string        `json:"updated"`
	DueDate   string        `json:"duedate"`
	Parent    *JiraParent   `json:"parent"`
}

// JiraStatus represents the status of a Jira issue
type JiraStatus struct {
	Name string `json:"name"`
}

// JiraIssueType represents the type of a Jira issue
type JiraIssueType struct {
	Name string `json:"name"`
}

// JiraPriority represents the priority of a Jira issue
type JiraPriority struct {
	Name string `json:"name"`
}

// JiraUser represents a Jira user
type JiraUser struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// JiraParent references the parent issue, if any
type JiraParent struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

// JiraSearchResponse represents the response from a Jira search
type JiraSearchResponse struct {
	StartAt    int         `json:"startAt"`
	MaxResults int         `json:"maxResults"`
	Total      int         `json:"total"`
	Issues     []JiraIssue `json:"issues"`
}

// IssueSummary is the shaped, read-only view of a fetched issue
// returned by the API layer.
type IssueSummary struct {
	ID        string   `json:"id"`
	Key       string   `json:"key"`
	Summary   string   `json:"summary"`
	IssueType string   `json:"issue_type"`
	Status    string   `json:"status"`
	Assignee  string   `json:"assignee,omitempty"`
	Labels    []string `json:"labels"`
}

// NewIssueSummary shapes a raw Jira issue payload into an IssueSummary
func NewIssueSummary(issue JiraIssue) IssueSummary {
	summary := IssueSummary{
		ID:        issue.ID,
		Key:       issue.Key,
		Summary:   issue.Fields.Summary,
		IssueType: issue.Fields.IssueType.Name,
		Status:    issue.Fields.Status.Name,
		Labels:    issue.Fields.Labels,
	}
	if issue.Fields.Assignee != nil {
		summary.Assignee = issue.Fields.Assignee.DisplayName
	}
	if summary.Labels == nil {
		summary.Labels = []string{}
	}
	return summary
}
