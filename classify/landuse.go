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

type landUseRule struct {
	category LandUseCategory
	match    func(siteType string, m []soc.Management, soil SoilCategory) bool
}

var landUseRules = []landUseRule{
	{Grassland, siteTypeIs(soc.PermanentPasture)},
	{PerennialCrops, func(st string, m []soc.Management, _ SoilCategory) bool {
		return st == soc.Cropland && coverMatch(m, perennialCover, soc.MatchThreshold)
	}},
	{PaddyRice, func(st string, m []soc.Management, _ SoilCategory) bool {
		return st == soc.Cropland && (coverMatch(m, paddyRiceCover, soc.MatchThreshold) ||
			(coverMatch(m, uplandRiceCover, soc.SuperMajorityThreshold) && irrigated(m)))
	}},
	{AnnualCropsWet, func(st string, m []soc.Management, soil SoilCategory) bool {
		return soil == WetlandSoils && annualCrops(st, m)
	}},
	{AnnualCrops, func(st string, m []soc.Management, _ SoilCategory) bool {
		return annualCrops(st, m)
	}},
	{SetAside, siteTypeIs(soc.Cropland)},
	{ForestLand, siteTypeIs(soc.Forest)},
	{Native, siteTypeIs(soc.OtherNaturalVegetation)},
	{OtherLandUse, func(st string, _ []soc.Management, _ SoilCategory) bool {
		switch st {
		case soc.PermanentPasture, soc.Cropland, soc.Forest, soc.OtherNaturalVegetation:
			return false
		}
		return true
	}},
}

func siteTypeIs(siteType string) func(string, []soc.Management, SoilCategory) bool {
	return func(st string, _ []soc.Management, _ SoilCategory) bool {
		return st == siteType
	}
}

func coverMatch(m []soc.Management, c coverClass, threshold float64) bool {
	return soc.ManagementMatch(m, func(r *soc.Management) bool {
		return r.Term.TermType == LandCover && landCoverClasses[r.Term.ID] == c
	}, threshold)
}

func irrigated(m []soc.Management) bool {
	return soc.ManagementMatch(m, func(r *soc.Management) bool {
		return isIrrigation(r.Term.ID, r.Term.TermType)
	}, soc.MatchThreshold)
}

func annualCrops(siteType string, m []soc.Management) bool {
	return siteType == soc.Cropland &&
		coverMatch(m, annualCover, soc.MatchThreshold) &&
		!coverMatch(m, longFallowCover, soc.SuperMajorityThreshold)
}

// LandUseCategoryOf returns the IPCC land-use category of a site in a
// given year from its site type, the management records of that year, and
// its soil category. Cropland that matches none of the crop categories is
// set aside.
func LandUseCategoryOf(siteType string, management []soc.Management, soil SoilCategory) LandUseCategory {
	if siteType == "" {
		return OtherLandUse
	}
	for _, r := range landUseRules {
		if r.match(siteType, management, soil) {
			return r.category
		}
	}
	return OtherLandUse
}
