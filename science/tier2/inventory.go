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
	"errors"
	"math"

	"github.com/spatialmodel/soc"
	"github.com/spatialmodel/soc/classify"
)

// Reasons a site cannot be run through the Tier 2 model.
var (
	ErrTooFewYears         = errors.New("tier2: fewer than the minimum number of inventory years")
	ErrNonConsecutiveYears = errors.New("tier2: inventory years are not consecutive")
	ErrInconsistentSites   = errors.New("tier2: cycles belong to more than one site")
	ErrNoSandContent       = errors.New("tier2: missing sand content")
	ErrTemperature         = errors.New("tier2: incomplete monthly temperature data")
	ErrPrecipitation       = errors.New("tier2: incomplete monthly precipitation data")
	ErrPET                 = errors.New("tier2: incomplete monthly potential evapotranspiration data")
)

// Term ids of cycle products and term types of cycle inputs that are
// carbon inputs to the soil.
var (
	residueProducts = map[string]bool{
		"aboveGroundCropResidueLeftOnField":  true,
		"aboveGroundCropResidueIncorporated": true,
		"belowGroundCropResidue":             true,
	}
	carbonInputTypes = map[string]bool{
		classify.OrganicFertiliser: true,
		classify.SoilAmendment:     true,
		"seed":                     true,
	}
)

// Properties holding content percentages.
const (
	carbonContent   = "carbonContent"
	nitrogenContent = "nitrogenContent"
	ligninContent   = "ligninContent"
)

// Inventory holds the annual drivers of the model for a site over a
// period of consecutive years.
type Inventory struct {
	SiteID string
	Years  []Year

	// SandContent is the sand content fraction of the soil.
	SandContent float64

	// Irrigated holds, for each year, whether the site was irrigated.
	// It is currently never populated and is ignored by Simulate.
	Irrigated []bool

	// RunInPeriod is the number of leading years that are collapsed into
	// the initial equilibrium year.
	RunInPeriod int

	// MeasuredStock is a measured stock [kg C ha⁻¹] at the end of the
	// run-in period, or NaN if there is none.
	MeasuredStock float64
}

// NewInventory assembles the Tier 2 inventory of a site and its cycles.
// It returns one of the Err* values if the data are insufficient.
func NewInventory(site *soc.Site, cycles []*soc.Cycle, p Params) (*Inventory, error) {
	minYears := p.RunInPeriod
	if minYears < MinRunInPeriod {
		minYears = MinRunInPeriod
	}
	for _, c := range cycles {
		if c.SiteID != cycles[0].SiteID || (site.ID != "" && c.SiteID != site.ID) {
			return nil, ErrInconsistentSites
		}
	}

	temperature := soc.MonthlyByYear(site.Measurements, soc.TemperatureMonthly)
	precipitation := soc.MonthlyByYear(site.Measurements, soc.PrecipitationMonthly)
	pet := soc.MonthlyByYear(site.Measurements, soc.PETMonthly)
	cyclesByYear := soc.GroupCyclesByYear(cycles)

	yearSet := make(map[int]bool)
	for _, series := range []map[int]map[int]float64{temperature, precipitation, pet} {
		for y := range series {
			yearSet[y] = true
		}
	}
	for y := range cyclesByYear {
		yearSet[y] = true
	}
	years := soc.SortedYears(yearSet)

	if len(years) < minYears {
		return nil, ErrTooFewYears
	}
	for i := 1; i < len(years); i++ {
		if years[i] != years[i-1]+1 {
			return nil, ErrNonConsecutiveYears
		}
	}
	sand, _, ok := soc.MostRelevantValue(site.Measurements, soc.SandContent, years[0], 0, 30, false)
	if !ok {
		return nil, ErrNoSandContent
	}
	for _, check := range []struct {
		series map[int]map[int]float64
		err    error
	}{
		{temperature, ErrTemperature},
		{precipitation, ErrPrecipitation},
		{pet, ErrPET},
	} {
		for _, y := range years {
			if len(check.series[y]) != 12 {
				return nil, check.err
			}
		}
	}

	inv := &Inventory{
		SiteID:        site.ID,
		SandContent:   sand / 100,
		RunInPeriod:   minYears,
		MeasuredStock: math.NaN(),
		Years:         make([]Year, len(years)),
	}
	if measured, y, ok := soc.MostRelevantValue(site.Measurements, soc.OrganicCarbonPerHa,
		years[0], soc.StockDepthUpper, soc.StockDepthLower, true); ok && y >= years[0] && y <= years[len(years)-1] {
		if r := y - years[0] + 1; r > inv.RunInPeriod {
			inv.RunInPeriod = r
		}
		inv.MeasuredStock = measured
	}

	management := soc.GroupManagementByYear(site.Management)
	for i, y := range years {
		tf, _ := AnnualTemperatureFactor(months(temperature[y]), p)
		wf, _ := AnnualWaterFactor(months(precipitation[y]), months(pet[y]), nil, p)
		c, n, l := CarbonInput(carbonSources(cyclesByYear[y]), p)
		tillage := classify.TillageCategoryOf(management[y])
		inv.Years[i] = Year{
			Year:              y,
			TemperatureFactor: tf,
			WaterFactor:       wf,
			CarbonInput:       c,
			NitrogenContent:   n,
			LigninContent:     l,
			F2:                p.F2(tillage),
			TillageFactor:     p.TillageFactor(tillage),
		}
	}
	return inv, nil
}

// months returns the values of a year's monthly series in calendar order.
func months(m map[int]float64) []float64 {
	o := make([]float64, 0, 12)
	for mo := 1; mo <= 12; mo++ {
		if v, ok := m[mo]; ok {
			o = append(o, v)
		}
	}
	return o
}

// carbonSources returns the carbon inputs to the soil from a set of
// cycles: crop residues left on the field, organic fertilisers, soil
// amendments and seed.
func carbonSources(cycles []*soc.Cycle) []soc.CarbonSource {
	var o []soc.CarbonSource
	add := func(n *soc.Node) {
		mass := n.Total()
		if mass <= 0 {
			return
		}
		o = append(o, soc.CarbonSource{
			Mass:            mass,
			CarbonContent:   fraction(n, carbonContent),
			NitrogenContent: fraction(n, nitrogenContent),
			LigninContent:   fraction(n, ligninContent),
		})
	}
	for _, c := range cycles {
		for i := range c.Products {
			if residueProducts[c.Products[i].Term.ID] {
				add(&c.Products[i])
			}
		}
		for i := range c.Inputs {
			if carbonInputTypes[c.Inputs[i].Term.TermType] {
				add(&c.Inputs[i])
			}
		}
	}
	return o
}

// fraction returns a percentage property of n as a fraction, or NaN.
func fraction(n *soc.Node, termID string) float64 {
	v, ok := soc.PropertyValue(n, termID)
	if !ok {
		return math.NaN()
	}
	return v / 100
}
