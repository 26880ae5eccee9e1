// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/artifactory-ops/storage-monitor/internal/domain"
	"github.com/artifactory-ops/storage-monitor/internal/gateway"
)

// Snapshot is one fetched view of the service: every project plus the
// service-wide repository storage records. All report computation runs
// against a single snapshot.
type Snapshot struct {
	Projects []domain.Project
	Records  []domain.RepositoryRecord
}

// NotFoundError reports a project selector that matched nothing. It
// carries every known project key so the caller can hint at valid input.
type NotFoundError struct {
	Selector  string
	KnownKeys []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("project %q not found (known projects: %s)",
		e.Selector, strings.Join(e.KnownKeys, ", "))
}

// Aggregator is the use case for computing per-project storage usage.
// It orchestrates the fetching and combining of data.
type Aggregator struct {
	fetcher gateway.Fetcher
	logger  zerolog.Logger
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(fetcher gateway.Fetcher, logger zerolog.Logger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		logger:  logger,
	}
}

// FetchSnapshot retrieves the project list and the storage records. The
// two endpoints are independent, so they are fetched concurrently.
func (a *Aggregator) FetchSnapshot(ctx context.Context) (*Snapshot, error) {
	a.logger.Debug().Msg("fetching snapshot")

	var snap Snapshot
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var err error
		snap.Projects, err = a.fetcher.FetchProjects(egCtx)
		return err
	})

	eg.Go(func() error {
		var err error
		snap.Records, err = a.fetcher.FetchStorageRecords(egCtx)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	a.logger.Debug().
		Int("projects", len(snap.Projects)).
		Int("records", len(snap.Records)).
		Msg("snapshot fetched")
	return &snap, nil
}

// ComputeUsage sums the storage records belonging to one project. A record
// belongs to the project when its projectKey matches and its repoKey is
// not the TOTAL grand-total row, which would otherwise be double-counted.
// An empty match is a valid zero summary, never an error.
func ComputeUsage(projectKey string, records []domain.RepositoryRecord) domain.ProjectUsageSummary {
	var summary domain.ProjectUsageSummary
	for _, r := range records {
		if r.ProjectKey != projectKey || r.RepoKey == domain.TotalSentinel {
			continue
		}
		summary.Repositories = append(summary.Repositories, r)
		summary.TotalUsedBytes += r.UsedBytes
	}
	summary.RepoCount = len(summary.Repositories)
	return summary
}

// FindProject resolves a selector against the project key or the display
// name, case-sensitive exact match, first match wins.
func (s *Snapshot) FindProject(selector string) (domain.Project, error) {
	for _, p := range s.Projects {
		if p.Key == selector || p.DisplayName == selector {
			return p, nil
		}
	}

	keys := make([]string, 0, len(s.Projects))
	for _, p := range s.Projects {
		keys = append(keys, p.Key)
	}
	return domain.Project{}, &NotFoundError{Selector: selector, KnownKeys: keys}
}
