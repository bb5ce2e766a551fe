package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/claude/vincera/internal/models"
)

// HTTPClient implements DataSource by calling the Vincera REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Compile-time check: *HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL. apiKey
// may be empty when the server runs without auth.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, int, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("httpclient: create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("httpclient: read body: %w", err)
	}

	// 404 is a domain answer (nothing selected / nothing active), not a
	// transport failure.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		return nil, resp.StatusCode, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, resp.StatusCode, nil
}

func (c *HTTPClient) Workouts(ctx context.Context, t models.Timeframe, search string) ([]models.Workout, error) {
	params := url.Values{}
	params.Set("timeframe", string(t))
	if search != "" {
		params.Set("search", search)
	}

	body, _, err := c.get(ctx, "/api/v1/workouts", params)
	if err != nil {
		return nil, err
	}

	var workouts []models.Workout
	if err := json.Unmarshal(body, &workouts); err != nil {
		return nil, fmt.Errorf("httpclient: decode workouts: %w", err)
	}
	return workouts, nil
}

func (c *HTTPClient) ActiveWorkout(ctx context.Context) (*models.Workout, error) {
	body, status, err := c.get(ctx, "/api/v1/session", nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}

	var workout models.Workout
	if err := json.Unmarshal(body, &workout); err != nil {
		return nil, fmt.Errorf("httpclient: decode active workout: %w", err)
	}
	return &workout, nil
}

func (c *HTTPClient) CurrentSplit(ctx context.Context) (*models.Split, *models.Day, error) {
	body, _, err := c.get(ctx, "/api/v1/splits/current", nil)
	if err != nil {
		return nil, nil, err
	}

	var resp *struct {
		Split *models.Split `json:"split"`
		Day   *models.Day   `json:"day"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, nil, fmt.Errorf("httpclient: decode current split: %w", err)
	}
	if resp == nil {
		return nil, nil, nil
	}
	return resp.Split, resp.Day, nil
}

func (c *HTTPClient) Splits(ctx context.Context) ([]models.Split, error) {
	body, _, err := c.get(ctx, "/api/v1/splits", nil)
	if err != nil {
		return nil, err
	}

	var splits []models.Split
	if err := json.Unmarshal(body, &splits); err != nil {
		return nil, fmt.Errorf("httpclient: decode splits: %w", err)
	}
	return splits, nil
}

func (c *HTTPClient) PersonalRecords(ctx context.Context) ([]models.PRValues, error) {
	body, _, err := c.get(ctx, "/api/v1/records", nil)
	if err != nil {
		return nil, err
	}

	var records []models.PRValues
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("httpclient: decode records: %w", err)
	}
	return records, nil
}

func (c *HTTPClient) Volume(ctx context.Context, t models.Timeframe) ([]models.Volume, error) {
	params := url.Values{}
	params.Set("timeframe", string(t))

	body, _, err := c.get(ctx, "/api/v1/volume", params)
	if err != nil {
		return nil, err
	}

	var volumes []models.Volume
	if err := json.Unmarshal(body, &volumes); err != nil {
		return nil, fmt.Errorf("httpclient: decode volume: %w", err)
	}
	return volumes, nil
}

func (c *HTTPClient) PreviousExercises(ctx context.Context, listIDs []string, afterWorkoutID string) ([]models.Exercise, error) {
	params := url.Values{}
	params.Set("listIds", strings.Join(listIDs, ","))
	if afterWorkoutID != "" {
		params.Set("after", afterWorkoutID)
	}

	body, _, err := c.get(ctx, "/api/v1/previous-exercises", params)
	if err != nil {
		return nil, err
	}

	var previous []models.Exercise
	if err := json.Unmarshal(body, &previous); err != nil {
		return nil, fmt.Errorf("httpclient: decode previous exercises: %w", err)
	}
	return previous, nil
}

func (c *HTTPClient) Exercises(ctx context.Context, search string) ([]models.ListExercise, error) {
	params := url.Values{}
	if search != "" {
		params.Set("search", search)
	}

	body, _, err := c.get(ctx, "/api/v1/exercises", params)
	if err != nil {
		return nil, err
	}

	var exercises []models.ListExercise
	if err := json.Unmarshal(body, &exercises); err != nil {
		return nil, fmt.Errorf("httpclient: decode exercises: %w", err)
	}
	return exercises, nil
}
