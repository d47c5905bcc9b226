// Package aggregate computes derived summary statistics over normalized
// engagement collections.
package aggregate

import (
	"math"
	"time"

	"engagetrack/internal/domain/entities"
	"engagetrack/internal/normalize"
)

// Epoch is the LatestExpiry sentinel for "no expiry known". Callers render
// "N/A" when Summary.HasExpiry reports false.
var Epoch = time.Unix(0, 0).UTC()

// Summarize rolls up an already-normalized engagement collection. Missing or
// malformed optional data degrades to zero contributions; the function never
// fails.
func Summarize(engagements []entities.Engagement) entities.Summary {
	s := entities.Summary{LatestExpiry: Epoch}

	for _, e := range engagements {
		if e.Status == entities.EngagementStatusActive {
			s.ActiveCount++
		}

		switch e.RYGStatus {
		case entities.RYGYellow:
			s.StatusCounts.Yellow++
		case entities.RYGRed:
			s.StatusCounts.Red++
		default:
			s.StatusCounts.Green++
		}

		if e.MSA == nil {
			continue
		}
		if !math.IsNaN(e.MSA.Value) {
			s.TotalValue += e.MSA.Value
		}
		if t, ok := normalize.ParseDate(e.MSA.EndDate); ok && t.After(s.LatestExpiry) {
			s.LatestExpiry = t
		}
	}
	return s
}
