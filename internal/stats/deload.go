package stats

import "time"

// Deload detection constants: a week whose tonnage drops below this fraction
// of its trailing average is presumed intentional recovery.
const (
	deloadTrailingWeeks = 4
	deloadFraction      = 0.70
)

// DetectDeloadWeeks flags weeks whose tonnage falls below 70% of the trailing
// 4-week average. Weeks without 4 full weeks of preceding history are never
// flagged; early in a user's history the average is too noisy to call
// anything a deload.
func DetectDeloadWeeks(weeks []time.Time, tonnageByWeek map[time.Time]float64) map[time.Time]bool {
	deload := make(map[time.Time]bool)
	for i := deloadTrailingWeeks; i < len(weeks); i++ {
		var sum float64
		for j := i - deloadTrailingWeeks; j < i; j++ {
			sum += tonnageByWeek[weeks[j]]
		}
		avg := sum / deloadTrailingWeeks
		if avg > 0 && tonnageByWeek[weeks[i]] < avg*deloadFraction {
			deload[weeks[i]] = true
		}
	}
	return deload
}
