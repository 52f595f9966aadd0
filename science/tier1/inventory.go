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
	"errors"
	"math"

	"github.com/spatialmodel/soc"
	"github.com/spatialmodel/soc/classify"
)

// Reasons a site cannot be run through the Tier 1 model.
var (
	ErrNoEcoClimateZone      = errors.New("tier1: missing eco-climate zone")
	ErrNoSOCRef              = errors.New("tier1: no reference stock for eco-climate zone and soil")
	ErrNoYears               = errors.New("tier1: no inventory years")
	ErrNonConsecutiveYears   = errors.New("tier1: inventory years are not consecutive")
	ErrInconsistentSites     = errors.New("tier1: cycles belong to more than one site")
	ErrMeasurementOutOfRange = errors.New("tier1: measured stock is outside of the inventory")
)

// Year holds the categories and equilibrium stock of a site in one year.
type Year struct {
	Year        int
	LandUse     classify.LandUseCategory
	Management  classify.ManagementCategory
	CarbonInput classify.CarbonInputCategory
	Factors     Factors

	// Equilibrium is the equilibrium stock [kg C ha⁻¹].
	Equilibrium float64
}

// Inventory holds the annual equilibrium stocks of a site over a period
// of consecutive years.
type Inventory struct {
	SiteID         string
	EcoClimateZone int
	Soil           classify.SoilCategory
	SOCRef         float64
	Years          []Year

	// MeasuredStock is a measured stock [kg C ha⁻¹] in MeasuredYear,
	// or NaN if there is none.
	MeasuredStock float64
	MeasuredYear  int
}

// NewInventory classifies a site in each year of its management and
// cycle records and calculates its equilibrium stocks. It returns one of
// the Err* values if the data are insufficient.
func NewInventory(site *soc.Site, cycles []*soc.Cycle, l soc.Lookup) (*Inventory, error) {
	for _, c := range cycles {
		if c.SiteID != cycles[0].SiteID || (site.ID != "" && c.SiteID != site.ID) {
			return nil, ErrInconsistentSites
		}
	}
	z, _, ok := soc.MostRelevantValue(site.Measurements, soc.EcoClimateZone, 0, 0, 30, false)
	zone := int(z)
	if !ok || zone <= 0 {
		return nil, ErrNoEcoClimateZone
	}
	soil := classify.SoilCategoryOf(site.Measurements)
	ref, ok := SOCRef(l, zone, soil)
	if !ok || ref <= 0 {
		return nil, ErrNoSOCRef
	}

	management := soc.GroupManagementByYear(site.Management)
	yearSet := make(map[int]bool)
	for y := range management {
		yearSet[y] = true
	}
	for y := range soc.GroupCyclesByYear(cycles) {
		yearSet[y] = true
	}
	years := soc.SortedYears(yearSet)
	if len(years) == 0 {
		return nil, ErrNoYears
	}
	for i := 1; i < len(years); i++ {
		if years[i] != years[i-1]+1 {
			return nil, ErrNonConsecutiveYears
		}
	}

	inv := &Inventory{
		SiteID:         site.ID,
		EcoClimateZone: zone,
		Soil:           soil,
		SOCRef:         ref,
		MeasuredStock:  math.NaN(),
		Years:          make([]Year, len(years)),
	}
	if v, y, ok := soc.MostRelevantValue(site.Measurements, soc.OrganicCarbonPerHa,
		years[0], soc.StockDepthUpper, soc.StockDepthLower, true); ok {
		if y < years[0] || y >= years[len(years)-1] {
			return nil, ErrMeasurementOutOfRange
		}
		inv.MeasuredStock, inv.MeasuredYear = v, y
	}

	for i, y := range years {
		m := management[y]
		lu := classify.LandUseCategoryOf(site.SiteType, m, soil)
		mg := classify.ManagementCategoryOf(m, lu)
		ci := classify.CarbonInputCategoryOf(m, mg)
		f := StockChangeFactors(l, zone, lu, mg, ci)
		inv.Years[i] = Year{
			Year:        y,
			LandUse:     lu,
			Management:  mg,
			CarbonInput: ci,
			Factors:     f,
			Equilibrium: f.Equilibrium(ref),
		}
	}
	return inv, nil
}
