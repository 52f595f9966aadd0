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

// Sandy soils are those with less than maxSandyClay percent clay and more
// than minSandySand percent sand (IPCC 2019 Figure 3A.5.1).
const (
	maxSandyClay = 8.
	minSandySand = 70.
)

type soilRule struct {
	category SoilCategory
	match    func(soilTypes []soc.Measurement, all []soc.Measurement) bool
}

var soilRules = []soilRule{
	{OrganicSoils, soilTypeMatch(OrganicSoils)},
	{SandySoils, func(st, all []soc.Measurement) bool {
		return soilTypeMatch(SandySoils)(st, all) || sandyTexture(all)
	}},
	{WetlandSoils, soilTypeMatch(WetlandSoils)},
	{VolcanicSoils, soilTypeMatch(VolcanicSoils)},
	{SpodicSoils, soilTypeMatch(SpodicSoils)},
	{HighActivityClaySoils, soilTypeMatch(HighActivityClaySoils)},
	{LowActivityClaySoils, soilTypeMatch(LowActivityClaySoils)},
}

func soilTypeMatch(c SoilCategory) func(st, all []soc.Measurement) bool {
	return func(st, all []soc.Measurement) bool {
		return soc.MeasurementMatch(st, func(m *soc.Measurement) bool {
			return soilTypes[m.Term.ID] == c
		}, soc.MatchThreshold)
	}
}

func sandyTexture(m []soc.Measurement) bool {
	clay, _, okC := soc.MostRelevantValue(m, soc.ClayContent, 0, 0, 30, false)
	sand, _, okS := soc.MostRelevantValue(m, soc.SandContent, 0, 0, 30, false)
	return okC && okS && clay < maxSandyClay && sand > minSandySand
}

// SoilCategoryOf returns the IPCC soil category of a site from its
// measurements. The coverage of a soil-type measurement is its value, in
// percent of the site area. Sites with no soil information are assumed to
// have low-activity clay soils.
func SoilCategoryOf(measurements []soc.Measurement) SoilCategory {
	var st []soc.Measurement
	for _, m := range measurements {
		if m.Term.TermType == SoilType || m.Term.TermType == USDASoilType {
			st = append(st, m)
		}
	}
	for _, r := range soilRules {
		if r.match(st, measurements) {
			return r.category
		}
	}
	return LowActivityClaySoils
}
