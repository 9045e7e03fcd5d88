// Package apiclient talks to the workout tracker REST API. Client implements
// workout.SessionStore, so an Engine can run against a remote server.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/undergroundgym/internal/telemetry/tracing"
	"github.com/2beens/undergroundgym/internal/workout"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

const defaultTimeout = 10 * time.Second

var _ workout.SessionStore = (*Client)(nil)

// StatusError is a non-2xx answer from the server.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for the API at baseURL. A nil httpClient gets a
// traced default with a timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

type progressResponse struct {
	Message        string `json:"message"`
	ExerciseID     string `json:"exercise_id"`
	CompletedCount int    `json:"completed_count"`
	IsArchived     bool   `json:"is_archived"`
}

func (c *Client) CreateSession(ctx context.Context, draft workout.SessionDraft) (*workout.Session, error) {
	var session workout.Session
	if err := c.do(ctx, "create session", http.MethodPost, "/api/sessions", draft, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) UpdateSessionExercises(ctx context.Context, sessionID string, exercises []workout.WorkoutExercise) (*workout.Session, error) {
	body := map[string][]workout.WorkoutExercise{"exercises": exercises}
	var session workout.Session
	if err := c.do(ctx, "update session", http.MethodPut, "/api/sessions/"+url.PathEscape(sessionID), body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) CompleteExercise(ctx context.Context, sessionID, exerciseID string) (workout.Progress, error) {
	return c.progress(ctx, "complete exercise", sessionID, exerciseID, "complete")
}

func (c *Client) ResetExercise(ctx context.Context, sessionID, exerciseID string) (workout.Progress, error) {
	return c.progress(ctx, "reset exercise", sessionID, exerciseID, "reset")
}

func (c *Client) progress(ctx context.Context, op, sessionID, exerciseID, action string) (workout.Progress, error) {
	path := fmt.Sprintf(
		"/api/sessions/%s/exercises/%s/%s",
		url.PathEscape(sessionID), url.PathEscape(exerciseID), action,
	)
	var resp progressResponse
	if err := c.do(ctx, op, http.MethodPatch, path, nil, &resp); err != nil {
		return workout.Progress{}, err
	}
	// target is not part of the answer; the engine keeps its own
	return workout.Progress{
		CompletedCount: resp.CompletedCount,
		IsArchived:     resp.IsArchived,
	}, nil
}

func (c *Client) GetSession(ctx context.Context, sessionID string) (*workout.Session, error) {
	var session workout.Session
	if err := c.do(ctx, "get session", http.MethodGet, "/api/sessions/"+url.PathEscape(sessionID), nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// ListSessions returns sessions newest first. A limit of zero returns all.
func (c *Client) ListSessions(ctx context.Context, limit int) ([]workout.Session, error) {
	path := "/api/sessions"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var sessions []workout.Session
	if err := c.do(ctx, "list sessions", http.MethodGet, path, nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (c *Client) ListExercises(ctx context.Context, muscleGroup string) ([]workout.Exercise, error) {
	path := "/api/exercises"
	if muscleGroup != "" {
		path += "?muscle_group=" + url.QueryEscape(muscleGroup)
	}
	var exercises []workout.Exercise
	if err := c.do(ctx, "list exercises", http.MethodGet, path, nil, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (c *Client) AddExercise(ctx context.Context, ex workout.Exercise) (*workout.Exercise, error) {
	var added workout.Exercise
	if err := c.do(ctx, "add exercise", http.MethodPost, "/api/exercises", ex, &added); err != nil {
		return nil, err
	}
	return &added, nil
}

func (c *Client) MuscleGroups(ctx context.Context) ([]string, error) {
	var groups []string
	if err := c.do(ctx, "list muscle groups", http.MethodGet, "/api/muscle-groups", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *Client) Splits(ctx context.Context) ([]workout.Split, error) {
	var splits []workout.Split
	if err := c.do(ctx, "list splits", http.MethodGet, "/api/splits", nil, &splits); err != nil {
		return nil, err
	}
	return splits, nil
}

func (c *Client) GetSplit(ctx context.Context, id string) (*workout.Split, error) {
	var split workout.Split
	if err := c.do(ctx, "get split", http.MethodGet, "/api/splits/"+url.PathEscape(id), nil, &split); err != nil {
		return nil, err
	}
	return &split, nil
}

func (c *Client) CreateSplit(ctx context.Context, split workout.Split) (*workout.Split, error) {
	var created workout.Split
	if err := c.do(ctx, "create split", http.MethodPost, "/api/splits", split, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteSplit(ctx context.Context, id string) error {
	return c.do(ctx, "delete split", http.MethodDelete, "/api/splits/"+url.PathEscape(id), nil, nil)
}

func (c *Client) Templates(ctx context.Context) (map[string]workout.Template, error) {
	var templates map[string]workout.Template
	if err := c.do(ctx, "list templates", http.MethodGet, "/api/templates", nil, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (c *Client) GetOrder(ctx context.Context) ([]string, error) {
	var payload struct {
		ExerciseIDs []string `json:"exercise_ids"`
	}
	if err := c.do(ctx, "get exercise order", http.MethodGet, "/api/exercises/order", nil, &payload); err != nil {
		return nil, err
	}
	return payload.ExerciseIDs, nil
}

func (c *Client) PutOrder(ctx context.Context, ids []string) error {
	payload := map[string][]string{"exercise_ids": ids}
	return c.do(ctx, "save exercise order", http.MethodPut, "/api/exercises/order", payload, nil)
}

func (c *Client) History(ctx context.Context) (workout.History, error) {
	var history workout.History
	if err := c.do(ctx, "exercise history", http.MethodGet, "/api/exercises/history", nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// do runs one round-trip. Every failure comes back as a
// *workout.TransportError; a 404 wraps a *workout.NotFoundError.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "apiclient."+strings.ReplaceAll(op, " ", "_"))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.path", path),
	)

	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return &workout.TransportError{Op: op, Err: fmt.Errorf("marshal request: %w", err)}
		}
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &workout.TransportError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &workout.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &workout.TransportError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}

	log.Tracef("api client: %s %s -> %d", method, path, resp.StatusCode)
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &workout.TransportError{Op: op, Err: &workout.NotFoundError{Resource: resourceOf(path), ID: lastSegment(path)}}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &workout.TransportError{Op: op, Err: &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(respBytes))}}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBytes, out); err != nil {
		return &workout.TransportError{Op: op, Err: fmt.Errorf("unmarshal response: %w", err)}
	}
	return nil
}

// resourceOf maps /api/sessions/s1/exercises/e1/complete to "exercises".
func resourceOf(path string) string {
	segments := pathSegments(path)
	for i := len(segments) - 2; i >= 1; i-- {
		switch segments[i] {
		case "sessions", "splits", "exercises":
			return segments[i]
		}
	}
	if len(segments) > 1 {
		return segments[1]
	}
	return path
}

func lastSegment(path string) string {
	segments := pathSegments(path)
	for i := len(segments) - 1; i >= 0; i-- {
		switch segments[i] {
		case "complete", "reset":
			continue
		}
		return segments[i]
	}
	return ""
}

func pathSegments(path string) []string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return strings.Split(strings.Trim(path, "/"), "/")
}
