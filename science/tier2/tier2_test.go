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
	"fmt"
	"math"
	"testing"

	"github.com/spatialmodel/soc"
)

const tolerance = 1.e-9

// different reports whether a and b differ by more than the relative
// tolerance tol.
func different(a, b, tol float64) bool {
	if a == b {
		return false
	}
	return math.Abs(a-b)/math.Max(math.Abs(a), math.Abs(b)) > tol
}

func TestTemperatureFactor(t *testing.T) {
	p := DefaultParams()
	var tests = []struct {
		in, out float64
	}{
		{in: 45, out: 0},
		{in: 50, out: 0},
		{in: 33.69, out: 1},
		{in: 20, out: 0.685410530454712},
		{in: 0, out: 0.08035552401049131},
	}
	for _, test := range tests {
		t.Run(fmt.Sprint(test.in), func(t *testing.T) {
			have := TemperatureFactor(test.in, p)
			if different(have, test.out, tolerance) {
				t.Errorf("%g = %g, want %g", test.in, have, test.out)
			}
		})
	}
}

func TestAnnualTemperatureFactor(t *testing.T) {
	p := DefaultParams()
	if _, ok := AnnualTemperatureFactor(nil, p); ok {
		t.Error("empty series should be undefined")
	}
	have, ok := AnnualTemperatureFactor([]float64{45, 33.69}, p)
	if !ok || different(have, 0.5, tolerance) {
		t.Errorf("have %g, want 0.5", have)
	}
}

func TestWaterFactor(t *testing.T) {
	p := DefaultParams()
	for _, pp := range [][2]float64{{0, 0}, {50, 100}, {200, 100}, {10, 0}} {
		t.Run(fmt.Sprintf("irrigated_%g_%g", pp[0], pp[1]), func(t *testing.T) {
			if have := WaterFactor(pp[0], pp[1], true, p); have != IrrigatedWaterFactor {
				t.Errorf("have %g, want %g", have, IrrigatedWaterFactor)
			}
		})
	}
	var tests = []struct {
		precip, pet, out float64
	}{
		{precip: 50, pet: 100, out: 0.818075},
		{precip: 200, pet: 100, out: 1.49961875},
		{precip: 1000, pet: 0, out: 1.49961875},
		{precip: 0, pet: 0, out: 0.2129},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%g_%g", test.precip, test.pet), func(t *testing.T) {
			have := WaterFactor(test.precip, test.pet, false, p)
			if different(have, test.out, tolerance) {
				t.Errorf("have %g, want %g", have, test.out)
			}
		})
	}
}

func TestAnnualWaterFactor(t *testing.T) {
	p := DefaultParams()
	if _, ok := AnnualWaterFactor(nil, []float64{1}, nil, p); ok {
		t.Error("empty precipitation should be undefined")
	}
	if _, ok := AnnualWaterFactor([]float64{1}, nil, nil, p); ok {
		t.Error("empty PET should be undefined")
	}
	have, ok := AnnualWaterFactor([]float64{50, 50}, []float64{100, 100}, []bool{false, true}, p)
	want := 1.5 * (0.818075 + IrrigatedWaterFactor) / 2
	if !ok || different(have, want, tolerance) {
		t.Errorf("have %g, want %g", have, want)
	}
}

func TestCarbonInput(t *testing.T) {
	p := DefaultParams()
	t.Run("no sources", func(t *testing.T) {
		c, n, l := CarbonInput(nil, p)
		if c != 0 || n != p.DefaultNitrogenContent || l != p.DefaultLigninContent {
			t.Errorf("have (%g, %g, %g)", c, n, l)
		}
	})
	t.Run("zero mass", func(t *testing.T) {
		c, n, l := CarbonInput([]soc.CarbonSource{{Mass: 0, CarbonContent: 0.5, NitrogenContent: 0.1, LigninContent: 0.2}}, p)
		if c != 0 || n != p.DefaultNitrogenContent || l != p.DefaultLigninContent {
			t.Errorf("have (%g, %g, %g)", c, n, l)
		}
	})
	t.Run("weighted", func(t *testing.T) {
		c, n, l := CarbonInput([]soc.CarbonSource{
			{Mass: 1000, CarbonContent: 0.4, NitrogenContent: 0.01, LigninContent: 0.1},
			{Mass: 3000, CarbonContent: math.NaN(), NitrogenContent: math.NaN(), LigninContent: 0.2},
		}, p)
		wantC := 1000*0.4 + 3000*0.42
		wantN := (1000*0.01 + 3000*0.0085) / 4000
		wantL := (1000*0.1 + 3000*0.2) / 4000
		if different(c, wantC, tolerance) || different(n, wantN, tolerance) || different(l, wantL, tolerance) {
			t.Errorf("have (%g, %g, %g), want (%g, %g, %g)", c, n, l, wantC, wantN, wantL)
		}
	})
}

func TestUpdateStockSteadyState(t *testing.T) {
	p := DefaultParams()
	for _, k := range []float64{0, 0.001, 0.5, 1, 7.4} {
		t.Run(fmt.Sprint(k), func(t *testing.T) {
			if have := UpdateStock(1234.5, 1234.5, k, p); have != 1234.5 {
				t.Errorf("have %g, want 1234.5", have)
			}
		})
	}
	if have := UpdateStock(100, 0, 7.4, p); have != 100 {
		t.Errorf("decay rates above 1 should be capped: have %g, want 100", have)
	}
	if have := UpdateStock(100, 0, 0.25, p); have != 25 {
		t.Errorf("have %g, want 25", have)
	}
}

func TestPoolsZeroDecay(t *testing.T) {
	p := DefaultParams()
	pools := NewPools(Year{CarbonInput: 1000, NitrogenContent: 0.0085, LigninContent: 0.073, F2: 0.455, TillageFactor: 1}, 0.33, p)
	for _, pool := range []Pool{pools.Active, pools.Slow, pools.Passive} {
		if pool.SteadyState != 0 || pool.DecayRate != 0 {
			t.Errorf("pool %+v should be empty without decomposition", pool)
		}
	}
}

// climateSite returns a site with n years of constant monthly climate
// data starting in 2000.
func climateSite(n int, temperature, precipitation, pet, sand float64) *soc.Site {
	s := &soc.Site{ID: "site", SiteType: soc.Cropland}
	for _, term := range []struct {
		id string
		v  float64
	}{
		{soc.TemperatureMonthly, temperature},
		{soc.PrecipitationMonthly, precipitation},
		{soc.PETMonthly, pet},
	} {
		m := soc.Measurement{Term: soc.Term{ID: term.id}}
		for y := 2000; y < 2000+n; y++ {
			for mo := 1; mo <= 12; mo++ {
				m.Dates = append(m.Dates, fmt.Sprintf("%d-%02d", y, mo))
				m.Value = append(m.Value, term.v)
			}
		}
		s.Measurements = append(s.Measurements, m)
	}
	if !math.IsNaN(sand) {
		s.Measurements = append(s.Measurements, soc.Measurement{
			Term:  soc.Term{ID: soc.SandContent},
			Value: []float64{sand},
		})
	}
	return s
}

func residueCycle(year int, mass float64) *soc.Cycle {
	return &soc.Cycle{
		ID:        fmt.Sprint(year),
		SiteID:    "site",
		StartDate: fmt.Sprintf("%d-03-01", year),
		EndDate:   fmt.Sprintf("%d-10-01", year),
		Products: []soc.Node{{
			Term:  soc.Term{ID: "aboveGroundCropResidueLeftOnField", TermType: "cropResidue"},
			Value: []float64{mass},
		}},
	}
}

func TestEndToEnd(t *testing.T) {
	p := DefaultParams()
	stocks, err := Run(climateSite(6, 20, 60, 80, 33), nil, p)
	if err != nil {
		t.Fatal(err)
	}
	if len(stocks) != 1 {
		t.Fatalf("have %d stocks, want 1", len(stocks))
	}
	s := stocks[0]
	if s.Year != 2005 || s.DepthUpper != 0 || s.DepthLower != 30 || s.MethodClassification != soc.Tier2Model {
		t.Errorf("unexpected stock %+v", s)
	}
	if s.Value != 0 {
		t.Errorf("without carbon inputs the stock should be 0 but is %g", s.Value)
	}
}

func TestSimulateSteadyState(t *testing.T) {
	p := DefaultParams()
	var cycles []*soc.Cycle
	for y := 2000; y < 2008; y++ {
		cycles = append(cycles, residueCycle(y, 2000))
	}
	stocks, err := Run(climateSite(8, 20, 60, 80, 33), cycles, p)
	if err != nil {
		t.Fatal(err)
	}
	if len(stocks) != 3 {
		t.Fatalf("have %d stocks, want 3", len(stocks))
	}
	const want = 6678.070793367664
	for i, s := range stocks {
		if s.Year != 2005+i {
			t.Errorf("stock %d: year %d, want %d", i, s.Year, 2005+i)
		}
		if different(s.Value, want, 1.e-8) {
			t.Errorf("stock %d: have %g, want %g", i, s.Value, want)
		}
	}
}

func TestSimulateMeasuredStock(t *testing.T) {
	p := DefaultParams()
	site := climateSite(8, 20, 60, 80, 33)
	site.Measurements = append(site.Measurements, soc.Measurement{
		Term:       soc.Term{ID: soc.OrganicCarbonPerHa},
		Value:      []float64{3000},
		EndDate:    "2005",
		DepthUpper: soc.Float(0),
		DepthLower: soc.Float(30),
	})
	var cycles []*soc.Cycle
	for y := 2000; y < 2008; y++ {
		cycles = append(cycles, residueCycle(y, 2000))
	}
	inv, err := NewInventory(site, cycles, p)
	if err != nil {
		t.Fatal(err)
	}
	if inv.RunInPeriod != 6 {
		t.Errorf("run-in period: have %d, want 6", inv.RunInPeriod)
	}
	r := Simulate(inv, p)
	if r.Years[0] != 2005 {
		t.Errorf("year zero: have %d, want 2005", r.Years[0])
	}
	if different(r.Total[0], 3000, tolerance) {
		t.Errorf("initial stock: have %g, want 3000", r.Total[0])
	}
	ss := r.Pools[0]
	if different(r.Active[0]/r.Passive[0], ss.Active.SteadyState/ss.Passive.SteadyState, tolerance) {
		t.Error("measured stock should be split in proportion to the steady states")
	}
	for i := 1; i < len(r.Total); i++ {
		if r.Total[i] <= r.Total[i-1] {
			t.Errorf("stock should increase towards equilibrium: %v", r.Total)
		}
	}
}

func ExampleSimulate() {
	p := DefaultParams()
	inv := &Inventory{
		SandContent:   0.33,
		RunInPeriod:   1,
		MeasuredStock: math.NaN(),
	}
	for y := 2000; y < 2003; y++ {
		inv.Years = append(inv.Years, Year{
			Year:              y,
			TemperatureFactor: 0.7,
			WaterFactor:       1.6,
			CarbonInput:       840,
			NitrogenContent:   p.DefaultNitrogenContent,
			LigninContent:     p.DefaultLigninContent,
			F2:                p.F2FullTillage,
			TillageFactor:     p.TillageFactorFullTillage,
		})
	}
	r := Simulate(inv, p)
	for i, y := range r.Years {
		fmt.Printf("%d: %.0f kg C/ha\n", y, r.Total[i])
	}
	// Output:
	// 2000: 6946 kg C/ha
	// 2001: 6946 kg C/ha
	// 2002: 6946 kg C/ha
}

func TestRunIn(t *testing.T) {
	years := []Year{
		{Year: 2000, CarbonInput: 1, F2: 0.455},
		{Year: 2001, CarbonInput: 2, F2: 0.455},
		{Year: 2002, CarbonInput: 6, F2: 0.5},
		{Year: 2003, CarbonInput: 10, F2: 0.5},
	}
	have := RunIn(years, 3)
	if len(have) != 2 {
		t.Fatalf("have %d years, want 2", len(have))
	}
	if have[0].Year != 2002 || have[0].CarbonInput != 3 || different(have[0].F2, (0.455*2+0.5)/3, tolerance) {
		t.Errorf("unexpected run-in year %+v", have[0])
	}
	if have[1] != years[3] {
		t.Errorf("have %+v, want %+v", have[1], years[3])
	}
}

func TestNewInventoryErrors(t *testing.T) {
	p := DefaultParams()
	gap := climateSite(6, 20, 60, 80, 33)
	for i := 0; i < 3; i++ { // climate series only
		m := &gap.Measurements[i]
		m.Dates, m.Value = m.Dates[:24], m.Value[:24]
		for y := 2003; y < 2007; y++ {
			for mo := 1; mo <= 12; mo++ {
				m.Dates = append(m.Dates, fmt.Sprintf("%d-%02d", y, mo))
				m.Value = append(m.Value, m.Value[0])
			}
		}
	}
	shortPET := climateSite(6, 20, 60, 80, 33)
	shortPET.Measurements[2].Dates = shortPET.Measurements[2].Dates[1:]
	shortPET.Measurements[2].Value = shortPET.Measurements[2].Value[1:]

	var tests = []struct {
		name   string
		site   *soc.Site
		cycles []*soc.Cycle
		err    error
	}{
		{name: "too few years", site: climateSite(4, 20, 60, 80, 33), err: ErrTooFewYears},
		{name: "gap", site: gap, err: ErrNonConsecutiveYears},
		{name: "no sand", site: climateSite(6, 20, 60, 80, math.NaN()), err: ErrNoSandContent},
		{name: "incomplete pet", site: shortPET, err: ErrPET},
		{
			name:   "cycle outside climate data",
			site:   climateSite(6, 20, 60, 80, 33),
			cycles: []*soc.Cycle{residueCycle(2006, 1000)},
			err:    ErrTemperature,
		},
		{
			name:   "other site",
			site:   climateSite(6, 20, 60, 80, 33),
			cycles: []*soc.Cycle{{SiteID: "elsewhere", EndDate: "2001"}},
			err:    ErrInconsistentSites,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewInventory(test.site, test.cycles, p)
			if err != test.err {
				t.Errorf("have %v, want %v", err, test.err)
			}
		})
	}
}
