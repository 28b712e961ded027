// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package client is a typed HTTP client for the QuickVote API, used by
// cmd/qvlink and by anything else that wants the API without hand-rolled
// requests.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/quickvote/quickvote/models"
)

// Client is the QuickVote API client.
type Client struct {
	baseURL    string
	deviceUUID string
	httpClient *http.Client
}

// New creates a new API client. deviceUUID may be empty for callers that
// never cast device-gated votes; see LoadDeviceUUID.
func New(baseURL, deviceUUID string) *Client {
	return &Client{
		baseURL:    baseURL,
		deviceUUID: deviceUUID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreateElection creates a new election and returns it with its share links.
func (c *Client) CreateElection(ctx context.Context, req models.CreateElectionRequest) (*models.CreateElectionResponse, error) {
	var resp models.CreateElectionResponse
	if err := c.post(ctx, "/elections", req, &resp); err != nil {
		return nil, fmt.Errorf("client.CreateElection: %w", err)
	}
	return &resp, nil
}

// GetElection returns the host view: election, live tallies, code counts.
func (c *Client) GetElection(ctx context.Context, id string) (*models.HostViewResponse, error) {
	var resp models.HostViewResponse
	if err := c.get(ctx, "/elections/"+url.PathEscape(id), &resp); err != nil {
		return nil, fmt.Errorf("client.GetElection: %w", err)
	}
	return &resp, nil
}

// GetBallot returns the voter-facing ballot view.
func (c *Client) GetBallot(ctx context.Context, id string) (*models.BallotViewResponse, error) {
	var resp models.BallotViewResponse
	if err := c.get(ctx, "/elections/"+url.PathEscape(id)+"/ballot", &resp); err != nil {
		return nil, fmt.Errorf("client.GetBallot: %w", err)
	}
	return &resp, nil
}

// OpenElection opens voting.
func (c *Client) OpenElection(ctx context.Context, id string) (*models.LifecycleResponse, error) {
	var resp models.LifecycleResponse
	if err := c.post(ctx, "/elections/"+url.PathEscape(id)+"/open", nil, &resp); err != nil {
		return nil, fmt.Errorf("client.OpenElection: %w", err)
	}
	return &resp, nil
}

// CloseElection closes voting.
func (c *Client) CloseElection(ctx context.Context, id string) (*models.LifecycleResponse, error) {
	var resp models.LifecycleResponse
	if err := c.post(ctx, "/elections/"+url.PathEscape(id)+"/close", nil, &resp); err != nil {
		return nil, fmt.Errorf("client.CloseElection: %w", err)
	}
	return &resp, nil
}

// CastVote submits one ballot. The client's device UUID rides along for
// code-less elections.
func (c *Client) CastVote(ctx context.Context, id string, req models.CastVoteRequest) (*models.CastVoteResponse, error) {
	var resp models.CastVoteResponse
	if err := c.post(ctx, "/elections/"+url.PathEscape(id)+"/votes", req, &resp); err != nil {
		return nil, fmt.Errorf("client.CastVote: %w", err)
	}
	return &resp, nil
}

// GetResults returns the public sorted results.
func (c *Client) GetResults(ctx context.Context, id string) (*models.ResultsResponse, error) {
	var resp models.ResultsResponse
	if err := c.get(ctx, "/elections/"+url.PathEscape(id)+"/results", &resp); err != nil {
		return nil, fmt.Errorf("client.GetResults: %w", err)
	}
	return &resp, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.deviceUUID != "" {
		req.Header.Set("X-Device-UUID", c.deviceUUID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr models.ErrorResponse
		msg := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			msg = apiErr.Message
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
