package jira

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"jira_assistant/internal/logger"
	"jira_assistant/internal/model"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	apiVersion = "rest/api/2"

	// DefaultMaxResults is the page size used when the caller does not
	// supply one. Pagination beyond a single page is left to the caller.
	DefaultMaxResults = 50

	requestTimeout = 30 * time.Second

	// Bounded retry for transient transport failures. Only GET search
	// calls are retried, so every retry is idempotent.
	retryCount       = 2
	retryWaitTime    = 4 * time.Second
	retryMaxWaitTime = 10 * time.Second
)

// defaultFields is the field selection used when the caller does not
// supply one.
var defaultFields = []string{
	"summary", "status", "assignee", "labels", "issuetype", "priority",
	"reporter", "created", "updated", "duedate", "parent",
}

// TransportError reports an HTTP or network failure from the Jira API.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("jira request failed: %v", e.Err)
	}
	return fmt.Sprintf("jira api error (%d): %s", e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client is an authenticated client for the Jira REST API.
type Client struct {
	http    *resty.Client
	baseURL string
}

// NewClient creates a Jira client. All three credentials are required;
// a missing one fails before any network activity.
func NewClient(baseURL, username, apiToken string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("jira base URL must be provided (JIRA_BASE_URL)")
	}
	if username == "" {
		return nil, fmt.Errorf("jira username must be provided (JIRA_USERNAME)")
	}
	if apiToken == "" {
		return nil, fmt.Errorf("jira API token must be provided (JIRA_API_TOKEN)")
	}

	baseURL = strings.TrimRight(baseURL, "/")

	client := resty.New().
		SetBaseURL(baseURL).
		SetBasicAuth(username, apiToken).
		SetTimeout(requestTimeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWaitTime).
		SetRetryMaxWaitTime(retryMaxWaitTime).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if r != nil && r.Request != nil && r.Request.Method != http.MethodGet {
				return false
			}
			return err != nil || (r != nil && r.StatusCode() >= http.StatusInternalServerError)
		})

	return &Client{
		http:    client,
		baseURL: baseURL,
	}, nil
}

// SearchIssues performs a JQL search and returns a single result page.
func (c *Client) SearchIssues(ctx context.Context, jql string, fields []string, startAt, maxResults int) (*model.JiraSearchResponse, error) {
	if len(fields) == 0 {
		fields = defaultFields
	}
	if startAt < 0 {
		startAt = 0
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	var response model.JiraSearchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("jql", jql).
		SetQueryParam("startAt", strconv.Itoa(startAt)).
		SetQueryParam("maxResults", strconv.Itoa(maxResults)).
		SetQueryParam("fields", strings.Join(fields, ",")).
		SetResult(&response).
		Get(fmt.Sprintf("/%s/search", apiVersion))

	if err := c.checkResponse(resp, err); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetIssue fetches a single issue by key.
func (c *Client) GetIssue(ctx context.Context, key string, fields []string) (*model.JiraIssue, error) {
	req := c.http.R().SetContext(ctx)
	if len(fields) > 0 {
		req.SetQueryParam("fields", strings.Join(fields, ","))
	}

	var issue model.JiraIssue
	resp, err := req.
		SetResult(&issue).
		Get(fmt.Sprintf("/%s/issue/%s", apiVersion, key))

	if err := c.checkResponse(resp, err); err != nil {
		return nil, err
	}
	return &issue, nil
}

// GetEpics retrieves epics, optionally filtered by project, labels,
// assignee and status.
func (c *Client) GetEpics(ctx context.Context, f Filter, fields []string) ([]model.JiraIssue, error) {
	return c.getByIssueTypes(ctx, f, []string{"Epic"}, fields)
}

// GetStories retrieves stories, optionally filtered.
func (c *Client) GetStories(ctx context.Context, f Filter, fields []string) ([]model.JiraIssue, error) {
	return c.getByIssueTypes(ctx, f, []string{"Story"}, fields)
}

// GetTasks retrieves tasks and sub-tasks, optionally filtered.
func (c *Client) GetTasks(ctx context.Context, f Filter, fields []string) ([]model.JiraIssue, error) {
	return c.getByIssueTypes(ctx, f, []string{"Task", "Sub-task"}, fields)
}

func (c *Client) getByIssueTypes(ctx context.Context, f Filter, issueTypes, fields []string) ([]model.JiraIssue, error) {
	f.IssueTypes = issueTypes
	jql, err := BuildJQL(f)
	if err != nil {
		return nil, err
	}
	response, err := c.SearchIssues(ctx, jql, fields, 0, DefaultMaxResults)
	if err != nil {
		return nil, err
	}
	return response.Issues, nil
}

// Close releases the underlying connections.
func (c *Client) Close() {
	c.http.GetClient().CloseIdleConnections()
}

func (c *Client) checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		logger.GetLogger().Error("jira request error", zap.Error(err))
		return &TransportError{Err: err}
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		logger.GetLogger().Error("jira api error",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", resp.String()))
		return &TransportError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return nil
}
