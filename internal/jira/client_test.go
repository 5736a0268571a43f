package jira

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientMissingCredentials(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		username string
		apiToken string
		want     string
	}{
		{"missing base url", "", "user", "token", "JIRA_BASE_URL"},
		{"missing username", "https://jira.example.com", "", "token", "JIRA_USERNAME"},
		{"missing api token", "https://jira.example.com", "user", "", "JIRA_API_TOKEN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.baseURL, tt.username, tt.apiToken)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	client, err := NewClient("https://jira.example.com/", "user", "token")
	require.NoError(t, err)
	defer client.Close()
	assert.Equal(t, "https://jira.example.com", client.baseURL)
}

func TestSearchIssuesDefaults(t *testing.T) {
	var captured *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"startAt":0,"maxResults":50,"total":1,"issues":[{"id":"10001","key":"PROJ-1","fields":{"summary":"First","status":{"name":"To Do"},"issuetype":{"name":"Story"},"labels":["frontend"]}}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	defer client.Close()

	response, err := client.SearchIssues(context.Background(), "project = PROJ", nil, 0, 0)
	require.NoError(t, err)
	require.NotNil(t, captured)

	assert.Equal(t, "/rest/api/2/search", captured.URL.Path)
	query := captured.URL.Query()
	assert.Equal(t, "project = PROJ", query.Get("jql"))
	assert.Equal(t, "0", query.Get("startAt"))
	assert.Equal(t, "50", query.Get("maxResults"))
	assert.Equal(t, "summary,status,assignee,labels,issuetype,priority,reporter,created,updated,duedate,parent", query.Get("fields"))

	username, password, ok := captured.BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "user", username)
	assert.Equal(t, "token", password)

	assert.Equal(t, 1, response.Total)
	require.Len(t, response.Issues, 1)
	assert.Equal(t, "PROJ-1", response.Issues[0].Key)
	assert.Equal(t, "Story", response.Issues[0].Fields.IssueType.Name)
}

func TestSearchIssuesExplicitParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "summary,status", query.Get("fields"))
		assert.Equal(t, "25", query.Get("startAt"))
		assert.Equal(t, "10", query.Get("maxResults"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total":0,"issues":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	defer client.Close()

	_, err := client.SearchIssues(context.Background(), "project = PROJ", []string{"summary", "status"}, 25, 10)
	require.NoError(t, err)
}

func TestSearchIssuesClientErrorNotRetried(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errorMessages":["bad jql"]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	defer client.Close()

	_, err := client.SearchIssues(context.Background(), "bogus", nil, 0, 0)
	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusBadRequest, transportErr.StatusCode)
	assert.Contains(t, transportErr.Body, "bad jql")
	assert.Equal(t, int32(1), attempts.Load())
}

func TestSearchIssuesServerErrorRetried(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total":0,"issues":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	defer client.Close()

	_, err := client.SearchIssues(context.Background(), "project = PROJ", nil, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestGetEpicsBuildsIssueTypeCondition(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jql := r.URL.Query().Get("jql")
		assert.Equal(t, `project = PROJ AND issueType in ("Epic") AND labels in ("backend")`, jql)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total":1,"issues":[{"id":"1","key":"PROJ-10","fields":{"summary":"Epic one","status":{"name":"Backlog"},"issuetype":{"name":"Epic"}}}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	defer client.Close()

	issues, err := client.GetEpics(context.Background(), Filter{ProjectKey: "PROJ", Labels: []string{"backend"}}, nil)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "PROJ-10", issues[0].Key)
}

func TestGetTasksIncludesSubTasks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `issueType in ("Task", "Sub-task")`, r.URL.Query().Get("jql"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total":0,"issues":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	defer client.Close()

	_, err := client.GetTasks(context.Background(), Filter{}, nil)
	require.NoError(t, err)
}

func TestGetStoriesInvalidStatusFailsBeforeRequest(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	defer client.Close()

	_, err := client.GetStories(context.Background(), Filter{Status: "Nope"}, nil)
	var validationErr *FilterValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, int32(0), requests.Load(), "validation must happen before any network call")
}

func TestGetIssue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/2/issue/PROJ-7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"7","key":"PROJ-7","fields":{"summary":"Seven","status":{"name":"Done"},"issuetype":{"name":"Task"}}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	defer client.Close()

	issue, err := client.GetIssue(context.Background(), "PROJ-7", nil)
	require.NoError(t, err)
	assert.Equal(t, "PROJ-7", issue.Key)
	assert.Equal(t, "Done", issue.Fields.Status.Name)
}

// newTestClient builds a client against the test server with retry
// waits shrunk so retry paths run fast.
func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(baseURL, "user", "token")
	require.NoError(t, err)
	client.http.SetRetryWaitTime(time.Millisecond).SetRetryMaxWaitTime(5 * time.Millisecond)
	return client
}
