package usecase

import "time"

// Since returns the inclusive lower bound of recent activity for a run at now.
// On Mondays it reaches back over the weekend.
func Since(now time.Time) time.Time {
	if now.Weekday() == time.Monday {
		return now.AddDate(0, 0, -3)
	}
	return now.AddDate(0, 0, -1)
}
