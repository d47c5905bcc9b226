package entities

import "time"

// StatusCounts tallies engagements by RYG health.
type StatusCounts struct {
	Green  int `json:"green"`
	Yellow int `json:"yellow"`
	Red    int `json:"red"`
}

// Summary is the derived engagement roll-up produced by the aggregate
// package. LatestExpiry uses the Unix epoch as the "nothing known" sentinel;
// renderers must check HasExpiry before formatting it.
type Summary struct {
	ActiveCount  int          `json:"activeCount"`
	TotalValue   float64      `json:"totalValue"`
	StatusCounts StatusCounts `json:"statusCounts"`
	LatestExpiry time.Time    `json:"latestExpiry"`
}

func (s Summary) HasExpiry() bool {
	return s.LatestExpiry.After(time.Unix(0, 0))
}
