package report

// Tier classifies a usage percentage against the 80/90 thresholds. It
// drives both the project-name color and the warning line, so the
// boundary logic lives in exactly one place.
type Tier int

const (
	TierNormal Tier = iota
	TierWarning
	TierDanger
)

const (
	colorNormal  = "\033[1;32m"
	colorWarning = "\033[1;33m"
	colorDanger  = "\033[1;31m"
	colorReset   = "\033[0m"
)

// Classify maps a usage percentage to its tier. Comparisons are strict:
// exactly 80 or 90 falls into the safer tier.
func Classify(usagePercent float64) Tier {
	switch {
	case usagePercent > 90:
		return TierDanger
	case usagePercent > 80:
		return TierWarning
	default:
		return TierNormal
	}
}

// Color returns the ANSI escape sequence for the tier.
func (t Tier) Color() string {
	switch t {
	case TierDanger:
		return colorDanger
	case TierWarning:
		return colorWarning
	default:
		return colorNormal
	}
}

// WarningLine returns the alert text for the tier, or "" for normal.
func (t Tier) WarningLine() string {
	switch t {
	case TierDanger:
		return "🔴 警告: 存储使用率超过90%! 请立即处理"
	case TierWarning:
		return "🟡 注意: 存储使用率超过80%"
	default:
		return ""
	}
}
