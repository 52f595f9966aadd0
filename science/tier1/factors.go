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

// Package tier1 implements the IPCC (2019) Tier 1 stock-change method for
// mineral soils, described in:
//
// IPCC (2019). 2019 Refinement to the 2006 IPCC Guidelines for National
// Greenhouse Gas Inventories, Volume 4, Chapter 2, Equation 2.25, and
// Chapter 5, Tables 5.5 and 6.2.
//
// Reference stocks are adjusted by land-use, management and carbon-input
// factors to give an equilibrium stock, which the soil approaches linearly
// over a transition period.
package tier1

import (
	"github.com/spatialmodel/soc"
	"github.com/spatialmodel/soc/classify"
	"github.com/spatialmodel/soc/lookup"
)

// SOCRef returns the reference soil organic carbon stock [kg C ha⁻¹] for
// an eco-climate zone and soil category.
func SOCRef(l soc.Lookup, zone int, soil classify.SoilCategory) (float64, bool) {
	col, ok := lookup.SOCRefColumn(soil)
	if !ok {
		return 0, false
	}
	return l.EcoClimateZoneValue(zone, col)
}

// Factors holds the IPCC stock change factors of a year.
type Factors struct {
	LandUse, Management, CarbonInput float64
}

// StockChangeFactors returns the land-use (FLU), management (FMG) and
// carbon-input (FI) factors for an eco-climate zone. A factor is 1 for
// categories that have none, and for cells missing from the table.
func StockChangeFactors(l soc.Lookup, zone int, lu classify.LandUseCategory, mg classify.ManagementCategory, ci classify.CarbonInputCategory) Factors {
	get := func(col string, ok bool) float64 {
		if !ok {
			return 1
		}
		if v, ok := l.EcoClimateZoneValue(zone, col); ok {
			return v
		}
		return 1
	}
	return Factors{
		LandUse:     get(lookup.LandUseColumn(lu)),
		Management:  get(lookup.ManagementColumn(mg)),
		CarbonInput: get(lookup.CarbonInputColumn(ci)),
	}
}

// Equilibrium returns the equilibrium stock for a reference stock.
func (f Factors) Equilibrium(socRef float64) float64 {
	return socRef * f.LandUse * f.Management * f.CarbonInput
}
