// Package api is the HTTP client for the PomodoroTrack backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/leoarenas/pomodorotrack/internal/apperr"
	"github.com/leoarenas/pomodorotrack/internal/models"
	"github.com/leoarenas/pomodorotrack/internal/timeutil"
)

const requestTimeout = 10 * time.Second

var (
	errRequestFailed = &apperr.Error{
		Message: "request failed with status %d: %s",
	}

	errNotAuthenticated = &apperr.Error{
		Message: "not logged in: run 'pomodorotrack login' first",
	}
)

// Client issues authenticated requests against the backend REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New returns an API client for the given base URL. The token may be empty
// for unauthenticated calls such as login.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// errorDetail is the backend's error envelope.
type errorDetail struct {
	Detail string `json:"detail"`
}

func (c *Client) do(
	ctx context.Context,
	method, path string,
	body, out any,
) error {
	var reqBody io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}

		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		method,
		c.baseURL+path,
		reqBody,
	)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var detail errorDetail

		msg := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&detail); err == nil &&
			detail.Detail != "" {
			msg = detail.Detail
		}

		return errRequestFailed.Fmt(resp.StatusCode, msg)
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// Login exchanges credentials for an API token.
func (c *Client) Login(
	ctx context.Context,
	email, password string,
) (*LoginResponse, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var resp LoginResponse

	err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// Logout invalidates the current token server-side.
func (c *Client) Logout(ctx context.Context) error {
	if c.token == "" {
		return errNotAuthenticated
	}

	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

// Projects lists the projects of the user's company.
func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	if c.token == "" {
		return nil, errNotAuthenticated
	}

	var projects []Project

	err := c.do(ctx, http.MethodGet, "/api/projects", nil, &projects)
	if err != nil {
		return nil, err
	}

	return projects, nil
}

// CreateProject registers a new project under the user's company.
func (c *Client) CreateProject(
	ctx context.Context,
	name string,
) (*Project, error) {
	if c.token == "" {
		return nil, errNotAuthenticated
	}

	body := map[string]string{"name": name}

	var project Project

	err := c.do(ctx, http.MethodPost, "/api/projects", body, &project)
	if err != nil {
		return nil, err
	}

	return &project, nil
}

// CreateTimeEntry submits a completed work or break phase. The duration is
// rounded to the nearest minute with a floor of one minute; a pomodoro entry
// counts one pomodoro, a break entry none.
func (c *Client) CreateTimeEntry(
	ctx context.Context,
	entry models.TimeEntry,
) (*TimeRecord, error) {
	if c.token == "" {
		return nil, errNotAuthenticated
	}

	mins := timeutil.Round(float64(entry.DurationSeconds) / 60)
	if mins < 1 {
		mins = 1
	}

	pomodoros := 0
	if entry.Type == models.EntryPomodoro {
		pomodoros = 1
	}

	body := map[string]any{
		"projectId":       entry.ProjectID,
		"durationMinutes": mins,
		"pomodoros":       pomodoros,
		"notes":           entry.Notes,
	}

	var record TimeRecord

	err := c.do(ctx, http.MethodPost, "/api/time-records", body, &record)
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// TimeEntries lists the user's time records, optionally filtered by project.
func (c *Client) TimeEntries(
	ctx context.Context,
	projectID string,
) ([]TimeRecord, error) {
	if c.token == "" {
		return nil, errNotAuthenticated
	}

	path := "/api/time-records"
	if projectID != "" {
		path += "?projectId=" + url.QueryEscape(projectID)
	}

	var records []TimeRecord

	err := c.do(ctx, http.MethodGet, path, nil, &records)
	if err != nil {
		return nil, err
	}

	return records, nil
}

// StatsToday returns today's aggregate counts and durations.
func (c *Client) StatsToday(ctx context.Context) (*TodayStats, error) {
	if c.token == "" {
		return nil, errNotAuthenticated
	}

	var stats TodayStats

	err := c.do(ctx, http.MethodGet, "/api/stats/today", nil, &stats)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// StatsWeek returns the current week's per-day aggregates.
func (c *Client) StatsWeek(ctx context.Context) (*WeekStats, error) {
	if c.token == "" {
		return nil, errNotAuthenticated
	}

	var stats WeekStats

	err := c.do(ctx, http.MethodGet, "/api/stats/week", nil, &stats)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// StatsByProject returns per-project aggregates.
func (c *Client) StatsByProject(ctx context.Context) ([]ProjectStats, error) {
	if c.token == "" {
		return nil, errNotAuthenticated
	}

	var stats []ProjectStats

	err := c.do(ctx, http.MethodGet, "/api/stats/by-project", nil, &stats)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
