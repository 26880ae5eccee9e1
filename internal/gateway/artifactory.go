// Package gateway provides a gateway to the Artifactory REST API,
// abstracting away authentication and transport concerns.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/artifactory-ops/storage-monitor/internal/domain"
)

// Fetcher defines the behavior of a gateway for fetching project and
// storage information from Artifactory.
type Fetcher interface {
	// CheckAuth probes the service and reports whether the token works.
	CheckAuth(ctx context.Context) bool
	// FetchProjects retrieves every project visible to the token.
	FetchProjects(ctx context.Context) ([]domain.Project, error)
	// FetchStorageRecords retrieves the service-wide per-repository
	// storage summary, unfiltered.
	FetchStorageRecords(ctx context.Context) ([]domain.RepositoryRecord, error)
}

// ArtifactoryGateway is the concrete implementation of the Fetcher interface.
type ArtifactoryGateway struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// storageInfoResponse mirrors the subset of /artifactory/api/storageinfo
// this tool consumes.
type storageInfoResponse struct {
	RepositoriesSummaryList []domain.RepositoryRecord `json:"repositoriesSummaryList"`
}

// NewArtifactoryGateway is a constructor that creates a new instance of
// ArtifactoryGateway. Requests carry the token as a Bearer header and are
// retried on transient failures.
func NewArtifactoryGateway(baseURL, token string, timeout time.Duration, logger zerolog.Logger) Fetcher {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.Logger = nil

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &oauth2.Transport{
			Base:   &retryablehttp.RoundTripper{Client: retryClient},
			Source: ts,
		},
	}

	return &ArtifactoryGateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// CheckAuth calls the version endpoint, which any authenticated user may
// read. Any transport error or non-200 status counts as a failed probe.
func (g *ArtifactoryGateway) CheckAuth(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/artifactory/api/system/version", nil)
	if err != nil {
		return false
	}
	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Debug().Err(err).Msg("auth probe failed")
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK
}

func (g *ArtifactoryGateway) FetchProjects(ctx context.Context) ([]domain.Project, error) {
	g.logger.Debug().Msg("[1/2] fetching project list")
	body, err := g.get(ctx, "/access/api/v1/projects", map[int]error{
		http.StatusUnauthorized: ErrAuthFailed,
		http.StatusForbidden:    ErrPermissionDenied,
		http.StatusNotFound:     ErrEndpointMissing,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project list: %w", err)
	}

	var projects []domain.Project
	if err := json.Unmarshal(body, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode project list: %w", err)
	}
	g.logger.Debug().Int("projects", len(projects)).Msg("completed fetching project list")
	return projects, nil
}

func (g *ArtifactoryGateway) FetchStorageRecords(ctx context.Context) ([]domain.RepositoryRecord, error) {
	g.logger.Debug().Msg("[2/2] fetching storage summary")
	body, err := g.get(ctx, "/artifactory/api/storageinfo", map[int]error{
		http.StatusUnauthorized: ErrAuthFailed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch storage info: %w", err)
	}

	var info storageInfoResponse
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to decode storage info: %w", err)
	}
	g.logger.Debug().Int("records", len(info.RepositoriesSummaryList)).Msg("completed fetching storage summary")
	return info.RepositoriesSummaryList, nil
}

// get issues a GET against path and returns the response body. Statuses
// present in statusErrs map to their sentinel error; any other non-200
// status becomes a generic error carrying the status text.
func (g *ArtifactoryGateway) get(ctx context.Context, path string, statusErrs map[int]error) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if sentinel, ok := statusErrs[resp.StatusCode]; ok {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, sentinel
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	return io.ReadAll(resp.Body)
}
