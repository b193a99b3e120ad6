package domain

import (
	"math"
	"sort"
	"time"
)

// unscoredDistance ranks a flight without any usable departure timestamp last.
const unscoredDistance = int64(math.MaxInt64)

// SelectClosest picks the flight whose scheduled departure is closest to ref.
// Ties keep input order, so the earliest candidate wins. A candidate without
// any departure timestamp is only chosen when nothing better exists.
// It returns false when flights is empty.
func SelectClosest(flights []Flight, ref time.Time) (Flight, bool) {
	if len(flights) == 0 {
		return Flight{}, false
	}

	type scored struct {
		index    int
		distance int64
	}

	scores := make([]scored, len(flights))
	for i, f := range flights {
		scores[i] = scored{index: i, distance: DepartureDistance(f, ref)}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].distance < scores[j].distance
	})

	return flights[scores[0].index], true
}

// DepartureDistance returns the absolute distance in seconds between the
// flight's departure estimate and ref.
func DepartureDistance(f Flight, ref time.Time) int64 {
	dep, ok := f.DepartureEstimate()
	if !ok {
		return unscoredDistance
	}

	diff := dep.Unix() - ref.Unix()
	if diff < 0 {
		return -diff
	}
	return diff
}
