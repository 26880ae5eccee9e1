package report

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/artifactory-ops/storage-monitor/internal/domain"
)

const (
	separatorLength = 70
	barLength       = 30

	unlimitedLabel = "无限制"
)

var (
	separatorLine = strings.Repeat("=", separatorLength)
	dashLine      = strings.Repeat("-", separatorLength)
)

// Header formats the report title printed once before any project block.
func Header(baseURL string) string {
	return fmt.Sprintf("\nArtifactory 项目存储使用率监控 - %s\n%s\n", baseURL, separatorLine)
}

// UsagePercent returns the project's usage percentage and whether the
// project has a limited quota. Unlimited projects never divide; their
// percentage is reported as zero with limited=false.
func UsagePercent(project domain.Project, usage domain.ProjectUsageSummary) (float64, bool) {
	if project.Unlimited() {
		return 0, false
	}
	return float64(usage.TotalUsedBytes) / float64(project.QuotaBytes) * 100, true
}

// RenderProject formats one project's usage block. The field order and
// label text are the output contract; consumers parse them as-is.
func RenderProject(project domain.Project, usage domain.ProjectUsageSummary, showDetails bool) string {
	var b strings.Builder

	usagePercent, limited := UsagePercent(project, usage)
	quotaDisplay := unlimitedLabel
	if limited {
		quotaDisplay = FormatSize(project.QuotaBytes)
	}
	tier := Classify(usagePercent)

	fmt.Fprintf(&b, "\n%s\n", separatorLine)
	fmt.Fprintf(&b, "项目名称: %s%s%s (%s)\n", tier.Color(), project.DisplayName, colorReset, project.Key)
	fmt.Fprintf(&b, "存储限制: %s\n", quotaDisplay)
	fmt.Fprintf(&b, "已用空间: %s\n", FormatSize(usage.TotalUsedBytes))
	fmt.Fprintf(&b, "仓库数量: %d\n", usage.RepoCount)

	if limited {
		fmt.Fprintf(&b, "使用比例: %.2f%%\n", usagePercent)
		fmt.Fprintf(&b, "使用情况: [%s] %.1f%%\n", usageBar(usagePercent), usagePercent)
		if line := tier.WarningLine(); line != "" {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	} else {
		fmt.Fprintf(&b, "使用比例: %s\n", unlimitedLabel)
	}

	if showDetails && len(usage.Repositories) > 0 {
		b.WriteString("\n仓库详情:\n")
		fmt.Fprintf(&b, "%s %s %s %s\n",
			Pad("仓库名称", 25, AlignLeft),
			Pad("类型", 12, AlignLeft),
			Pad("使用空间", 18, AlignLeft),
			Pad("占比", 12, AlignLeft))
		fmt.Fprintf(&b, "%s\n", dashLine)

		for _, repo := range usage.Repositories {
			shareDisplay := "N/A"
			if limited {
				share := float64(repo.UsedBytes) / float64(project.QuotaBytes) * 100
				shareDisplay = fmt.Sprintf("%.2f%%", share)
			}
			repoType := repo.RepoType
			if repoType == "" {
				repoType = "N/A"
			}
			fmt.Fprintf(&b, "%s %s %s %s\n",
				Pad(repo.RepoKey, 25, AlignLeft),
				Pad(repoType, 12, AlignLeft),
				Pad(FormatSize(repo.UsedBytes), 18, AlignLeft),
				Pad(shareDisplay, 12, AlignLeft))
		}
	}

	return b.String()
}

// usageBar draws the fixed-length fill bar. Percentages past 100 grow the
// filled part beyond the nominal length rather than being clamped, so an
// over-quota project is visibly over.
func usageBar(usagePercent float64) string {
	filled := int(float64(barLength) * usagePercent / 100)
	if filled < 0 {
		filled = 0
	}
	empty := barLength - filled
	if empty < 0 {
		empty = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", empty)
}

// RenderSummary formats the aggregate block printed after the full project
// list. limitedPercents holds the usage percentage of every limited-quota
// project and feeds the mean/max lines, which come after the original
// fields so existing consumers see those unchanged.
func RenderSummary(projects []domain.Project, limitedPercents []float64) string {
	var b strings.Builder

	var totalQuota int64
	limited, unlimited := 0, 0
	for _, p := range projects {
		if p.Unlimited() {
			unlimited++
		} else {
			limited++
			totalQuota += p.QuotaBytes
		}
	}

	fmt.Fprintf(&b, "\n%s\n", separatorLine)
	b.WriteString("汇总信息:\n")
	fmt.Fprintf(&b, "总项目数: %d\n", len(projects))
	fmt.Fprintf(&b, "有限制项目: %d个\n", limited)
	fmt.Fprintf(&b, "无限制项目: %d个\n", unlimited)
	if totalQuota > 0 {
		fmt.Fprintf(&b, "总存储限制: %s\n", FormatSize(totalQuota))
	}

	if len(limitedPercents) > 0 {
		if mean, err := stats.Mean(limitedPercents); err == nil {
			fmt.Fprintf(&b, "平均使用率: %.2f%%\n", mean)
		}
		if max, err := stats.Max(limitedPercents); err == nil {
			fmt.Fprintf(&b, "最高使用率: %.2f%%\n", max)
		}
	}

	return b.String()
}
