package depletion

import "time"

// Alert thresholds. These are fixed in observed behavior; they are exported
// named constants so boundary behavior stays testable.
const (
	// RedExpiryDays marks a chemical red when its expiry date is strictly
	// before today + RedExpiryDays.
	RedExpiryDays = 90
	// YellowExpiryDays marks a chemical yellow when its expiry date is at
	// least RedExpiryDays out but strictly before today + YellowExpiryDays.
	YellowExpiryDays = 180
	// RedRemainingPercent marks a chemical red when its remaining percentage
	// is strictly below this value.
	RedRemainingPercent = 30.0
	// YellowRemainingPercent marks a chemical yellow when its remaining
	// percentage is at least RedRemainingPercent but strictly below this value.
	YellowRemainingPercent = 50.0
)

// AlertSet is the two-tier alert classification. Red takes priority: a name
// never appears in both tiers. Within each tier names keep state order and are
// deduplicated.
type AlertSet struct {
	Red    []string
	Yellow []string
}

// ClassifyAlerts classifies every derived state against the expiry and
// remaining-percentage thresholds relative to today.
//
// Boundary semantics are deliberate and load-bearing: an expiry exactly
// RedExpiryDays out is not red (strict <), a remaining percentage of exactly
// RedRemainingPercent is not red but is yellow, and exactly
// YellowRemainingPercent is neither. An undefined (NaN) percentage never
// matches a remaining-percentage condition (every float comparison with NaN
// is false), so zero-initial chemicals classify by expiry only.
func ClassifyAlerts(states []ItemState, today time.Time) AlertSet {
	redCutoff := today.AddDate(0, 0, RedExpiryDays)
	yellowCutoff := today.AddDate(0, 0, YellowExpiryDays)

	var set AlertSet
	inRed := make(map[string]bool, len(states))
	inYellow := make(map[string]bool)

	// Red pass first: the yellow pass must exclude every name that is red by
	// any of its rows, so the red set has to be complete before yellow starts.
	for _, s := range states {
		redByExpiry := s.ExpiryDate.Before(redCutoff)
		redByRemaining := s.RemainingPercent < RedRemainingPercent

		if (redByExpiry || redByRemaining) && !inRed[s.Name] {
			inRed[s.Name] = true
			set.Red = append(set.Red, s.Name)
		}
	}

	for _, s := range states {
		if inRed[s.Name] || inYellow[s.Name] {
			continue
		}

		yellowByExpiry := !s.ExpiryDate.Before(redCutoff) && s.ExpiryDate.Before(yellowCutoff)
		yellowByRemaining := s.RemainingPercent >= RedRemainingPercent &&
			s.RemainingPercent < YellowRemainingPercent

		if yellowByExpiry || yellowByRemaining {
			inYellow[s.Name] = true
			set.Yellow = append(set.Yellow, s.Name)
		}
	}

	return set
}
