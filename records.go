/*
Copyright © 2019 the SOC authors.
This file is part of SOC.

SOC is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

SOC is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with SOC.  If not, see <http://www.gnu.org/licenses/>.
*/

package soc

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"gonum.org/v1/gonum/stat"
)

// DefaultCoverage is the area coverage, in percent, of a record that
// does not specify one.
const DefaultCoverage = 100.

// Coverage thresholds, in percent.
const (
	MatchThreshold         = 30.
	SuperMajorityThreshold = 70.
)

// CumulativeMatch reports whether the records that match sum to at least
// threshold percent of the site area. n is the number of records, and
// coverage and match are called with indices in [0, n). A record for which
// coverage returns false is assumed to cover defaultCoverage percent.
func CumulativeMatch(n int, coverage func(i int) (float64, bool), match func(i int) bool, threshold, defaultCoverage float64) bool {
	var total float64
	for i := 0; i < n; i++ {
		if !match(i) {
			continue
		}
		if v, ok := coverage(i); ok {
			total += v
		} else {
			total += defaultCoverage
		}
	}
	return total >= threshold
}

// ManagementMatch reports whether the management records that satisfy
// match cover at least threshold percent of the site.
func ManagementMatch(records []Management, match func(m *Management) bool, threshold float64) bool {
	return CumulativeMatch(len(records),
		func(i int) (float64, bool) {
			if records[i].Value == nil {
				return 0, false
			}
			return *records[i].Value, true
		},
		func(i int) bool { return match(&records[i]) },
		threshold, DefaultCoverage)
}

// MeasurementMatch reports whether the measurements that satisfy match
// cover at least threshold percent of the site. The coverage of a
// measurement is its first value.
func MeasurementMatch(records []Measurement, match func(m *Measurement) bool, threshold float64) bool {
	return CumulativeMatch(len(records),
		func(i int) (float64, bool) {
			if len(records[i].Value) == 0 {
				return 0, false
			}
			return records[i].Value[0], true
		},
		func(i int) bool { return match(&records[i]) },
		threshold, DefaultCoverage)
}

// Year returns the calendar year of an ISO 8601 date
// (YYYY, YYYY-MM or YYYY-MM-DD).
func Year(date string) (int, bool) {
	if len(date) < 4 {
		return 0, false
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0, false
	}
	return y, true
}

// Month returns the calendar month (1-12) of a YYYY-MM or YYYY-MM-DD date.
func Month(date string) (int, bool) {
	if len(date) < 7 || date[4] != '-' {
		return 0, false
	}
	m, err := strconv.Atoi(date[5:7])
	if err != nil || m < 1 || m > 12 {
		return 0, false
	}
	return m, true
}

// yearSpan returns every year from start to end, inclusive. A missing
// start date means the record applies only to its end year.
func yearSpan(start, end string) []int {
	e, ok := Year(end)
	if !ok {
		s, ok := Year(start)
		if !ok {
			return nil
		}
		return []int{s}
	}
	s, ok := Year(start)
	if !ok || s > e {
		s = e
	}
	o := make([]int, 0, e-s+1)
	for y := s; y <= e; y++ {
		o = append(o, y)
	}
	return o
}

// GroupManagementByYear partitions management records by the calendar
// years they span.
func GroupManagementByYear(records []Management) map[int][]Management {
	o := make(map[int][]Management)
	for _, m := range records {
		for _, y := range yearSpan(m.StartDate, m.EndDate) {
			o[y] = append(o[y], m)
		}
	}
	return o
}

// GroupCyclesByYear partitions cycles by the year they end in.
func GroupCyclesByYear(cycles []*Cycle) map[int][]*Cycle {
	o := make(map[int][]*Cycle)
	for _, c := range cycles {
		if y, ok := Year(c.EndDate); ok {
			o[y] = append(o[y], c)
		} else if y, ok := Year(c.StartDate); ok {
			o[y] = append(o[y], c)
		}
	}
	return o
}

// MonthlyByYear groups the values of the monthly measurements with the
// given term id by year and month. Later values for the same month
// replace earlier ones.
func MonthlyByYear(measurements []Measurement, termID string) map[int]map[int]float64 {
	o := make(map[int]map[int]float64)
	for _, m := range measurements {
		if m.Term.ID != termID {
			continue
		}
		for i, d := range m.Dates {
			if i >= len(m.Value) {
				break
			}
			y, ok := Year(d)
			if !ok {
				continue
			}
			mo, ok := Month(d)
			if !ok {
				continue
			}
			if o[y] == nil {
				o[y] = make(map[int]float64)
			}
			o[y][mo] = m.Value[i]
		}
	}
	return o
}

// SortedYears returns the members of a set of years in increasing order.
func SortedYears(set map[int]bool) []int {
	o := make([]int, 0, len(set))
	for y := range set {
		o = append(o, y)
	}
	sort.Ints(o)
	return o
}

// measurementYear returns the year a measurement refers to.
func measurementYear(m *Measurement) (int, bool) {
	if y, ok := Year(m.EndDate); ok {
		return y, true
	}
	if len(m.Dates) > 0 {
		if y, ok := Year(m.Dates[len(m.Dates)-1]); ok {
			return y, true
		}
	}
	return Year(m.StartDate)
}

func depthMatches(m *Measurement, upper, lower float64, strict bool) bool {
	if m.DepthUpper == nil || m.DepthLower == nil {
		return !strict
	}
	return *m.DepthUpper == upper && *m.DepthLower == lower
}

// MostRelevantValue returns the value of the measurement with the given
// term id whose year is closest to targetYear, along with that year.
// Only measurements with the given depth bounds are considered; when
// strict is false, measurements without depth bounds are also accepted.
// Undated measurements are used only when no dated one matches. The
// value of a measurement with several values is their mean.
func MostRelevantValue(measurements []Measurement, termID string, targetYear int, depthUpper, depthLower float64, strict bool) (value float64, year int, ok bool) {
	best := -1
	bestDist := math.MaxInt32
	undated := -1
	for i := range measurements {
		m := &measurements[i]
		if m.Term.ID != termID || len(m.Value) == 0 || !depthMatches(m, depthUpper, depthLower, strict) {
			continue
		}
		y, dated := measurementYear(m)
		if !dated {
			if undated < 0 {
				undated = i
			}
			continue
		}
		dist := y - targetYear
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist {
			best, bestDist, year = i, dist, y
		}
	}
	if best < 0 {
		if undated < 0 {
			return 0, 0, false
		}
		return stat.Mean(measurements[undated].Value, nil), 0, true
	}
	return stat.Mean(measurements[best].Value, nil), year, true
}

// PropertyValue returns the numeric value of the property of n with the
// given term id.
func PropertyValue(n *Node, termID string) (float64, bool) {
	for _, p := range n.Properties {
		if p.Term.ID != termID {
			continue
		}
		v := p.Value
		if s, ok := v.(string); ok {
			v = strings.TrimSpace(s)
		}
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
