// Package catalog loads the exercise catalog: remote endpoint first, then the
// cached copy of the last successful fetch, then the bundled default.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/claude/vincera/internal/models"
)

// ErrInvalidURL is returned for a malformed catalog endpoint.
var ErrInvalidURL = errors.New("invalid catalog url")

// RemoteExercise is the optional-field wire shape of a catalog record.
type RemoteExercise struct {
	ID              *string  `json:"id"`
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Directions      []string `json:"directions"`
	Cues            []string `json:"cues"`
	Image           *string  `json:"image"`
	VideoID         *string  `json:"videoId"`
	BodyPart        *string  `json:"bodyPart"`
	PrimaryGroup    *string  `json:"primaryGroup"`
	SecondaryGroups []string `json:"secondaryGroups"`
	ExerciseType    *string  `json:"exerciseType"`
	EquipmentType   *string  `json:"equipmentType"`
	RepsLow         *int     `json:"repsLow"`
	RepsHigh        *int     `json:"repsHigh"`
}

// ToListExercise validates the record. False when any required field (id,
// name, primary group, exercise type, equipment type, body part) is missing.
func (r RemoteExercise) ToListExercise() (models.ListExercise, bool) {
	if r.ID == nil || r.Name == nil || r.PrimaryGroup == nil ||
		r.ExerciseType == nil || r.EquipmentType == nil || r.BodyPart == nil {
		return models.ListExercise{}, false
	}
	le := models.ListExercise{
		ID:              *r.ID,
		Name:            *r.Name,
		Directions:      r.Directions,
		Cues:            r.Cues,
		BodyPart:        *r.BodyPart,
		PrimaryGroup:    *r.PrimaryGroup,
		SecondaryGroups: r.SecondaryGroups,
		ExerciseType:    *r.ExerciseType,
		EquipmentType:   *r.EquipmentType,
	}
	if r.Description != nil {
		le.Description = *r.Description
	}
	if r.Image != nil {
		le.Image = *r.Image
	}
	if r.VideoID != nil {
		le.VideoID = *r.VideoID
	}
	if r.RepsLow != nil {
		le.RepsLow = *r.RepsLow
	}
	if r.RepsHigh != nil {
		le.RepsHigh = *r.RepsHigh
	}
	return le, true
}

// RejectedError reports catalog records dropped by validation. It is carried
// alongside the accepted records so callers can log it; it never aborts a
// load.
type RejectedError struct {
	Indexes []int
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("catalog: %d records missing required fields", len(e.Indexes))
}

// Parse decodes a JSON array of remote records, returning the accepted
// entries and a RejectedError when any were dropped.
func Parse(data []byte) ([]models.ListExercise, *RejectedError, error) {
	var remote []RemoteExercise
	if err := json.Unmarshal(data, &remote); err != nil {
		return nil, nil, fmt.Errorf("decoding catalog: %w", err)
	}

	var accepted []models.ListExercise
	var rejected []int
	for i, r := range remote {
		le, ok := r.ToListExercise()
		if !ok {
			rejected = append(rejected, i)
			continue
		}
		accepted = append(accepted, le)
	}
	if len(rejected) > 0 {
		return accepted, &RejectedError{Indexes: rejected}, nil
	}
	return accepted, nil, nil
}

// Client fetches the remote exercise catalog.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient validates the endpoint and returns a Client.
func NewClient(endpoint string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, endpoint)
	}
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		url:        endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Fetch retrieves and validates the remote catalog. The raw body and etag are
// returned so the caller can refresh the cache and sync state.
func (c *Client) Fetch(ctx context.Context) (exercises []models.ListExercise, body []byte, etag string, rejected *RejectedError, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, nil, "", nil, fmt.Errorf("catalog: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, "", nil, fmt.Errorf("catalog: fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, "", nil, fmt.Errorf("catalog: read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, nil, "", nil, fmt.Errorf("catalog: endpoint returned %d", resp.StatusCode)
	}

	exercises, rejected, err = Parse(body)
	if err != nil {
		return nil, nil, "", nil, err
	}
	return exercises, body, resp.Header.Get("ETag"), rejected, nil
}
