package rule

import "strings"

// ImpactLevel classifies how much a rule matters. Levels form a closed set
// ordered from highest to lowest priority.
type ImpactLevel string

const (
	ImpactCritical   ImpactLevel = "critical"
	ImpactHigh       ImpactLevel = "high"
	ImpactMediumHigh ImpactLevel = "medium-high"
	ImpactMedium     ImpactLevel = "medium"
	ImpactLowMedium  ImpactLevel = "low-medium"
	ImpactLow        ImpactLevel = "low"
)

// DefaultImpact is assumed when a rule file does not state an impact level.
const DefaultImpact = ImpactMedium

// impactPriority defines the priority order of impact levels.
// Lower index = higher priority.
var impactPriority = map[ImpactLevel]int{
	ImpactCritical:   0,
	ImpactHigh:       1,
	ImpactMediumHigh: 2,
	ImpactMedium:     3,
	ImpactLowMedium:  4,
	ImpactLow:        5,
}

// AllImpactLevels returns the valid levels in priority order (highest first).
func AllImpactLevels() []ImpactLevel {
	return []ImpactLevel{
		ImpactCritical,
		ImpactHigh,
		ImpactMediumHigh,
		ImpactMedium,
		ImpactLowMedium,
		ImpactLow,
	}
}

// ParseImpactLevel normalizes arbitrary input text (trim + lowercase) and
// reports whether it names a valid level. This is the single place that maps
// free text onto the closed set.
func ParseImpactLevel(s string) (ImpactLevel, bool) {
	lvl := ImpactLevel(strings.ToLower(strings.TrimSpace(s)))
	_, ok := impactPriority[lvl]
	return lvl, ok
}

// IsValid returns true if the level is a member of the closed set.
func (l ImpactLevel) IsValid() bool {
	_, ok := impactPriority[l]
	return ok
}

// Priority returns the priority rank of the level (0 = highest).
// Unknown levels rank below every valid one.
func (l ImpactLevel) Priority() int {
	if p, ok := impactPriority[l]; ok {
		return p
	}
	return len(impactPriority)
}

// String returns the string representation of the level.
func (l ImpactLevel) String() string {
	return string(l)
}
