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

package tier2

import (
	"math"

	"github.com/spatialmodel/soc"
	"gonum.org/v1/gonum/stat"
)

// Result holds the pool stocks [kg C ha⁻¹] calculated by Simulate.
// Index 0 is the equilibrium at the end of the run-in period.
type Result struct {
	Years                 []int
	Pools                 []Pools
	Active, Slow, Passive []float64
	Total                 []float64
}

// RunIn collapses the first n years of an inventory into a single year
// holding the mean of each driver, followed by the remaining years. The
// collapsed year takes the timestamp of the last run-in year.
func RunIn(years []Year, n int) []Year {
	if n > len(years) {
		n = len(years)
	}
	if n <= 1 {
		return append([]Year(nil), years...)
	}
	mean := func(f func(y Year) float64) float64 {
		v := make([]float64, n)
		for i := 0; i < n; i++ {
			v[i] = f(years[i])
		}
		return stat.Mean(v, nil)
	}
	zero := Year{
		Year:              years[n-1].Year,
		TemperatureFactor: mean(func(y Year) float64 { return y.TemperatureFactor }),
		WaterFactor:       mean(func(y Year) float64 { return y.WaterFactor }),
		CarbonInput:       mean(func(y Year) float64 { return y.CarbonInput }),
		NitrogenContent:   mean(func(y Year) float64 { return y.NitrogenContent }),
		LigninContent:     mean(func(y Year) float64 { return y.LigninContent }),
		F2:                mean(func(y Year) float64 { return y.F2 }),
		TillageFactor:     mean(func(y Year) float64 { return y.TillageFactor }),
	}
	return append([]Year{zero}, years[n:]...)
}

// Simulate runs the three-pool model over an inventory. Each pool starts
// at its steady state, or, if the inventory holds a measured stock, at
// its steady-state share of the measured stock.
func Simulate(inv *Inventory, p Params) *Result {
	years := RunIn(inv.Years, inv.RunInPeriod)
	r := &Result{
		Years:   make([]int, len(years)),
		Pools:   make([]Pools, len(years)),
		Active:  make([]float64, len(years)),
		Slow:    make([]float64, len(years)),
		Passive: make([]float64, len(years)),
		Total:   make([]float64, len(years)),
	}
	for i, y := range years {
		r.Years[i] = y.Year
		r.Pools[i] = NewPools(y, inv.SandContent, p)
	}
	if len(years) == 0 {
		return r
	}

	p0 := r.Pools[0]
	r.Active[0] = p0.Active.SteadyState
	r.Slow[0] = p0.Slow.SteadyState
	r.Passive[0] = p0.Passive.SteadyState
	if !math.IsNaN(inv.MeasuredStock) {
		total := r.Active[0] + r.Slow[0] + r.Passive[0]
		if total > 0 {
			r.Active[0] = inv.MeasuredStock * r.Active[0] / total
			r.Slow[0] = inv.MeasuredStock * r.Slow[0] / total
			r.Passive[0] = inv.MeasuredStock * r.Passive[0] / total
		} else {
			r.Active[0], r.Slow[0], r.Passive[0] = 0, 0, 0
		}
	}
	r.Total[0] = r.Active[0] + r.Slow[0] + r.Passive[0]

	for i := 1; i < len(years); i++ {
		pi := r.Pools[i]
		r.Active[i] = UpdateStock(pi.Active.SteadyState, r.Active[i-1], pi.Active.DecayRate, p)
		r.Slow[i] = UpdateStock(pi.Slow.SteadyState, r.Slow[i-1], pi.Slow.DecayRate, p)
		r.Passive[i] = UpdateStock(pi.Passive.SteadyState, r.Passive[i-1], pi.Passive.DecayRate, p)
		r.Total[i] = r.Active[i] + r.Slow[i] + r.Passive[i]
	}
	return r
}

// Stocks returns the output records of r, one for each year after the
// run-in equilibrium year.
func (r *Result) Stocks() []*soc.Stock {
	if len(r.Years) < 2 {
		return []*soc.Stock{}
	}
	o := make([]*soc.Stock, 0, len(r.Years)-1)
	for i := 1; i < len(r.Years); i++ {
		o = append(o, soc.NewStock(r.Years[i], r.Total[i], soc.Tier2Model))
	}
	return o
}

// Run assembles the inventory of a site and simulates it. It returns one
// of the Err* values if the data are insufficient.
func Run(site *soc.Site, cycles []*soc.Cycle, p Params) ([]*soc.Stock, error) {
	inv, err := NewInventory(site, cycles, p)
	if err != nil {
		return nil, err
	}
	return Simulate(inv, p).Stocks(), nil
}
