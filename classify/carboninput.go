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

package classify

import "github.com/spatialmodel/soc"

// Indicators summarises the practices that determine the carbon-input
// category of a site in a given year.
type Indicators struct {
	Irrigated             bool
	ResidueRemovedOrBurnt bool
	LowResidueCrops       bool
	BareFallow            bool
	NitrogenUsed          bool
	CInputIncreasing      bool
	CoverCrop             bool
	OrganicFertiliserUsed bool
	AnimalManureUsed      bool
	GrasslandImprovements int
}

// NewIndicators derives the carbon-input indicators from a year's
// management records.
func NewIndicators(m []soc.Management) Indicators {
	match := func(f func(r *soc.Management) bool, threshold float64) bool {
		return soc.ManagementMatch(m, f, threshold)
	}
	anyOf := func(f func(r *soc.Management) bool) bool {
		for i := range m {
			if f(&m[i]) {
				return true
			}
		}
		return false
	}
	var i Indicators
	i.Irrigated = match(func(r *soc.Management) bool {
		return isIrrigation(r.Term.ID, r.Term.TermType)
	}, soc.MatchThreshold)
	i.ResidueRemovedOrBurnt = match(func(r *soc.Management) bool {
		return r.Term.TermType == CropResidueManagement && residueRemovedOrBurnt[r.Term.ID]
	}, soc.MatchThreshold)
	i.LowResidueCrops = match(func(r *soc.Management) bool {
		return r.Term.TermType == LandCover && lowResidueCrops[r.Term.ID]
	}, soc.SuperMajorityThreshold)
	i.BareFallow = coverMatch(m, bareFallowCover, soc.MatchThreshold)
	i.NitrogenUsed = match(func(r *soc.Management) bool {
		return r.Term.TermType == LandCover && nFixingCrops[r.Term.ID]
	}, soc.MatchThreshold) || anyOf(func(r *soc.Management) bool {
		return r.Term.TermType == InorganicFertiliser
	})
	i.CInputIncreasing = match(func(r *soc.Management) bool {
		return (r.Term.TermType == LandUseManagement || r.Term.TermType == CropResidueManagement) &&
			cInputPractices[r.Term.ID] &&
			!isCoverCrop(r.Term.ID) &&
			r.Term.ID != "irrigatedPasture"
	}, soc.MatchThreshold)
	i.CoverCrop = match(func(r *soc.Management) bool {
		return isCoverCrop(r.Term.ID)
	}, soc.MatchThreshold)
	i.OrganicFertiliserUsed = anyOf(func(r *soc.Management) bool {
		return r.Term.TermType == OrganicFertiliser || r.Term.TermType == SoilAmendment
	})
	i.AnimalManureUsed = anyOf(func(r *soc.Management) bool {
		return r.Term.TermType == OrganicFertiliser && isAnimalManure(r.Term.ID)
	})
	for _, b := range []bool{i.Irrigated, i.CInputIncreasing, i.NitrogenUsed, i.OrganicFertiliserUsed} {
		if b {
			i.GrasslandImprovements++
		}
	}
	return i
}

type carbonInputRule struct {
	category CarbonInputCategory
	match    func(i Indicators) bool
}

// croplandRules is IPCC (2019) Table 5.5, carbon-input levels for
// annual cropland.
var croplandRules = []carbonInputRule{
	{CroplandHighWithManure, func(i Indicators) bool {
		return residueRetained(i) && i.NitrogenUsed && highInput(i) && i.AnimalManureUsed
	}},
	{CroplandHighWithoutManure, func(i Indicators) bool {
		return residueRetained(i) && i.NitrogenUsed && highInput(i) && !i.AnimalManureUsed
	}},
	{CroplandMedium, func(i Indicators) bool {
		return residueRetained(i) && i.NitrogenUsed
	}},
	{CroplandMedium, func(i Indicators) bool {
		return i.ResidueRemovedOrBurnt && i.OrganicFertiliserUsed && i.NitrogenUsed &&
			!i.LowResidueCrops && !i.BareFallow
	}},
}

func residueRetained(i Indicators) bool {
	return !i.ResidueRemovedOrBurnt && !i.LowResidueCrops && !i.BareFallow
}

func highInput(i Indicators) bool {
	return i.Irrigated || i.CInputIncreasing || i.CoverCrop
}

// CarbonInputCategoryOf returns the IPCC carbon-input category of a site
// in a given year. Only improved grassland and tilled cropland have a
// carbon-input category; every other management category returns
// OtherCarbonInput.
func CarbonInputCategoryOf(management []soc.Management, mc ManagementCategory) CarbonInputCategory {
	switch {
	case mc == ImprovedGrassland:
		if NewIndicators(management).GrasslandImprovements >= 2 {
			return GrasslandHigh
		}
		return GrasslandMedium
	case mc.IsTillage():
		i := NewIndicators(management)
		for _, r := range croplandRules {
			if r.match(i) {
				return r.category
			}
		}
		return CroplandLow
	}
	return OtherCarbonInput
}
