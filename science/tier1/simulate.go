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

package tier1

import (
	"math"
	"sort"

	"github.com/spatialmodel/soc"
	"gonum.org/v1/gonum/floats"
)

// DefaultTransitionPeriod is the number of years the soil takes to reach
// a new equilibrium (IPCC 2019 Equation 2.25).
const DefaultTransitionPeriod = 20

// Result holds the stocks calculated by Simulate, including any
// transition years that were added to the inventory.
type Result struct {
	Years       []int
	Equilibrium []float64

	// Stock is the stock in each year [kg C ha⁻¹], scaled to the
	// measured stock if there is one.
	Stock []float64

	// Start is the index of the first year to report.
	Start int
}

// regimeStart returns the index of the last year before i whose
// equilibrium differs from that of year i, or false if the equilibrium
// has not changed since the first year.
func regimeStart(eq []float64, i int) (int, bool) {
	for j := i - 1; j >= 0; j-- {
		if eq[j] != eq[i] {
			return j, true
		}
	}
	return 0, false
}

// InsertTransitionYears adds the year in which the soil reaches the
// equilibrium of the last regime, if that year is after the final
// inventory year. The returned slices are new; years must be sorted.
func InsertTransitionYears(years []int, eq []float64, period int) ([]int, []float64) {
	outYears := append([]int(nil), years...)
	outEq := append([]float64(nil), eq...)
	for i, y := range years {
		start := years[0] - period
		j, found := regimeStart(eq, i)
		if found {
			start = years[j]
		}
		if changesLater(eq, i) {
			continue
		}
		steady := start + period
		if steady <= y {
			continue
		}
		k := sort.SearchInts(outYears, steady)
		if k < len(outYears) && outYears[k] == steady {
			continue
		}
		outYears = append(outYears, 0)
		copy(outYears[k+1:], outYears[k:])
		outYears[k] = steady
		outEq = append(outEq, 0)
		copy(outEq[k+1:], outEq[k:])
		outEq[k] = eq[i]
	}
	return outYears, outEq
}

// changesLater reports whether any year after i has a different
// equilibrium from year i.
func changesLater(eq []float64, i int) bool {
	for j := i + 1; j < len(eq); j++ {
		if eq[j] != eq[i] {
			return true
		}
	}
	return false
}

// Stocks returns the stock in each year as it moves linearly from the
// stock at the start of each regime to the regime's equilibrium over
// period years.
func Stocks(years []int, eq []float64, period int) []float64 {
	if len(years) == 0 {
		return nil
	}
	s := make([]float64, len(years))
	s[0] = eq[0]
	for i := 1; i < len(years); i++ {
		j, found := regimeStart(eq, i)
		start := years[0] - period
		if found {
			start = years[j]
		}
		ratio := math.Min(1, float64(years[i]-start)/float64(period))
		s[i] = s[j] + (eq[i]-s[j])*ratio
	}
	return s
}

// ClosestIndex returns the index of the year closest to target. Ties go to
// the earlier year.
func ClosestIndex(years []int, target int) int {
	best := 0
	for i, y := range years {
		if abs(y-target) < abs(years[best]-target) {
			best = i
		}
	}
	return best
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

// Simulate calculates the stock of an inventory in each year, scaled so
// that it matches the measured stock if there is one.
func Simulate(inv *Inventory, period int) *Result {
	years := make([]int, len(inv.Years))
	eq := make([]float64, len(inv.Years))
	for i, y := range inv.Years {
		years[i], eq[i] = y.Year, y.Equilibrium
	}
	years, eq = InsertTransitionYears(years, eq, period)
	r := &Result{
		Years:       years,
		Equilibrium: eq,
		Stock:       Stocks(years, eq, period),
	}
	if len(r.Stock) == 0 || math.IsNaN(inv.MeasuredStock) {
		return r
	}
	r.Start = ClosestIndex(years, inv.MeasuredYear)
	if s := r.Stock[r.Start]; s != 0 {
		floats.Scale(inv.MeasuredStock/s, r.Stock)
	}
	return r
}

// Stocks returns the output records of r from its start year onward.
func (r *Result) Stocks() []*soc.Stock {
	o := make([]*soc.Stock, 0, len(r.Years)-r.Start)
	for i := r.Start; i < len(r.Years); i++ {
		o = append(o, soc.NewStock(r.Years[i], r.Stock[i], soc.Tier1Model))
	}
	return o
}

// Run assembles the inventory of a site and simulates it. It returns one
// of the Err* values if the data are insufficient.
func Run(site *soc.Site, cycles []*soc.Cycle, l soc.Lookup, period int) ([]*soc.Stock, error) {
	inv, err := NewInventory(site, cycles, l)
	if err != nil {
		return nil, err
	}
	return Simulate(inv, period).Stocks(), nil
}
