package tools

import (
	"fmt"
	"regexp"
	"strconv"
)

// Anchor is a labeled point in time: an offset label and the absolute year.
type Anchor struct {
	Label string `json:"label"`
	Year  int    `json:"year"`
}

// AnchorResult is the output of the timeline anchor calculator.
type AnchorResult struct {
	StartYear    int      `json:"start_year"`
	HorizonYears int      `json:"horizon_years"`
	Anchors      []Anchor `json:"anchors"`
}

var horizonPattern = regexp.MustCompile(`^\s*(\d+)\s*[yY]\s*$`)

const defaultHorizonYears = 50

// TimelineAnchors computes T+Ny labels and absolute years from a horizon
// like "5y", "25y", "50y". A horizon that does not match <digits>y
// defaults to 50 years. When no intervals are given a ladder is chosen
// by total horizon. Offsets beyond the horizon are dropped. Never fails.
func TimelineAnchors(startYear int, horizon string, intervals []int) AnchorResult {
	total := defaultHorizonYears
	if m := horizonPattern.FindStringSubmatch(horizon); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			total = n
		}
	}

	if len(intervals) == 0 {
		switch {
		case total <= 10:
			intervals = []int{1, 3, 5, 10}
		case total <= 25:
			intervals = []int{1, 5, 10, 25}
		default:
			intervals = []int{1, 5, 10, 25, 50}
		}
	}

	anchors := []Anchor{}
	for _, n := range intervals {
		if n <= total {
			anchors = append(anchors, Anchor{
				Label: fmt.Sprintf("T+%dy", n),
				Year:  startYear + n,
			})
		}
	}
	return AnchorResult{StartYear: startYear, HorizonYears: total, Anchors: anchors}
}
