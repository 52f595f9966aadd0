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

type managementRule struct {
	category ManagementCategory
	match    func(m []soc.Management) bool
}

var grasslandRules = []managementRule{
	{SeverelyDegraded, grasslandCoverMatch(SeverelyDegraded)},
	{ImprovedGrassland, grasslandCoverMatch(ImprovedGrassland)},
	{HighIntensityGrazing, grasslandCoverMatch(HighIntensityGrazing)},
	{NominallyManaged, grasslandCoverMatch(NominallyManaged)},
	{OtherManagement, func(m []soc.Management) bool {
		return soc.ManagementMatch(m, func(r *soc.Management) bool {
			_, pasture := grasslandCovers[r.Term.ID]
			return r.Term.TermType == LandCover && !pasture
		}, soc.MatchThreshold)
	}},
}

var tillageRules = []managementRule{
	{FullTillage, tillageMatch(FullTillage)},
	{ReducedTillage, tillageMatch(ReducedTillage)},
	{NoTillage, func(m []soc.Management) bool {
		return tillageMatch(NoTillage)(m) && zeroTillages(m)
	}},
}

func grasslandCoverMatch(c ManagementCategory) func([]soc.Management) bool {
	return func(m []soc.Management) bool {
		return soc.ManagementMatch(m, func(r *soc.Management) bool {
			return r.Term.TermType == LandCover && grasslandCovers[r.Term.ID] == c
		}, soc.MatchThreshold)
	}
}

func tillageMatch(c ManagementCategory) func([]soc.Management) bool {
	return func(m []soc.Management) bool {
		return soc.ManagementMatch(m, func(r *soc.Management) bool {
			return r.Term.TermType == Tillage && tillageTerms[r.Term.ID] == c
		}, soc.MatchThreshold)
	}
}

// zeroTillages reports whether there is a record of zero tillage
// operations.
func zeroTillages(m []soc.Management) bool {
	for _, r := range m {
		if r.Term.ID == NumberOfTillages && r.Value != nil && *r.Value == 0 {
			return true
		}
	}
	return false
}

// ManagementCategoryOf returns the IPCC management category of a site in
// a given year. Grassland defaults to nominally managed and annual crops
// default to full tillage; management is not assessed for other land uses.
func ManagementCategoryOf(management []soc.Management, landUse LandUseCategory) ManagementCategory {
	var rules []managementRule
	var fallback ManagementCategory
	switch landUse {
	case Grassland:
		rules, fallback = grasslandRules, NominallyManaged
	case AnnualCrops, AnnualCropsWet:
		rules, fallback = tillageRules, FullTillage
	default:
		return OtherManagement
	}
	for _, r := range rules {
		if r.match(management) {
			return r.category
		}
	}
	return fallback
}

// TillageCategoryOf returns the tillage category of a year's management
// records, or OtherManagement if there are no tillage records.
func TillageCategoryOf(management []soc.Management) ManagementCategory {
	for _, r := range management {
		if r.Term.TermType == Tillage {
			return ManagementCategoryOf(management, AnnualCrops)
		}
	}
	return OtherManagement
}
