// Package domain contains the core data structures and domain logic for the application.
package domain

// TotalSentinel is the synthetic repoKey of the pre-aggregated grand-total
// row that Artifactory injects into the storage summary. It must never be
// counted as a real repository.
const TotalSentinel = "TOTAL"

// Project is a tenant namespace in Artifactory that owns repositories and
// an optional storage quota.
type Project struct {
	Key         string `json:"project_key"`
	DisplayName string `json:"display_name"`
	QuotaBytes  int64  `json:"storage_quota_bytes"`
}

// Unlimited reports whether the project has no storage quota.
// Artifactory encodes "no limit" as a quota of zero or below.
func (p Project) Unlimited() bool {
	return p.QuotaBytes <= 0
}

// RepositoryRecord is one row of the service-wide storage summary: the
// space a single repository consumes, tagged with its owning project.
type RepositoryRecord struct {
	RepoKey    string `json:"repoKey"`
	ProjectKey string `json:"projectKey"`
	RepoType   string `json:"repoType"`
	UsedBytes  int64  `json:"usedSpaceInBytes"`
}

// ProjectUsageSummary is the aggregated storage consumption of a single
// project, derived from the service-wide records for one report and
// discarded afterwards.
//
// Invariant: TotalUsedBytes is the sum of UsedBytes over Repositories and
// RepoCount equals len(Repositories).
type ProjectUsageSummary struct {
	Repositories   []RepositoryRecord
	TotalUsedBytes int64
	RepoCount      int
}
