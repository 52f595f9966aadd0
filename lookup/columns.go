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

package lookup

import "github.com/spatialmodel/soc/classify"

var socRefColumns = map[classify.SoilCategory]string{
	classify.OrganicSoils:          "IPCC_2019_SOC_REF_ORGANIC",
	classify.SandySoils:            "IPCC_2019_SOC_REF_SAN",
	classify.WetlandSoils:          "IPCC_2019_SOC_REF_WET",
	classify.VolcanicSoils:         "IPCC_2019_SOC_REF_VOL",
	classify.SpodicSoils:           "IPCC_2019_SOC_REF_POD",
	classify.HighActivityClaySoils: "IPCC_2019_SOC_REF_HAC",
	classify.LowActivityClaySoils:  "IPCC_2019_SOC_REF_LAC",
}

var landUseColumns = map[classify.LandUseCategory]string{
	classify.Grassland:      "IPCC_2019_FLU_GRASSLAND",
	classify.PerennialCrops: "IPCC_2019_FLU_PERENNIAL_CROPS",
	classify.PaddyRice:      "IPCC_2019_FLU_PADDY_RICE_CULTIVATION",
	classify.AnnualCropsWet: "IPCC_2019_FLU_ANNUAL_CROPS_WET",
	classify.AnnualCrops:    "IPCC_2019_FLU_ANNUAL_CROPS",
	classify.SetAside:       "IPCC_2019_FLU_SET_ASIDE",
}

var managementColumns = map[classify.ManagementCategory]string{
	classify.SeverelyDegraded:     "IPCC_2019_FMG_SEVERELY_DEGRADED",
	classify.ImprovedGrassland:    "IPCC_2019_FMG_IMPROVED_GRASSLAND",
	classify.HighIntensityGrazing: "IPCC_2019_FMG_HIGH_INTENSITY_GRAZING",
	classify.NominallyManaged:     "IPCC_2019_FMG_NOMINALLY_MANAGED",
	classify.FullTillage:          "IPCC_2019_FMG_FULL_TILLAGE",
	classify.ReducedTillage:       "IPCC_2019_FMG_REDUCED_TILLAGE",
	classify.NoTillage:            "IPCC_2019_FMG_NO_TILLAGE",
}

var carbonInputColumns = map[classify.CarbonInputCategory]string{
	classify.GrasslandHigh:             "IPCC_2019_FI_GRASSLAND_HIGH",
	classify.GrasslandMedium:           "IPCC_2019_FI_GRASSLAND_MEDIUM",
	classify.CroplandHighWithManure:    "IPCC_2019_FI_CROPLAND_HIGH_WITH_MANURE",
	classify.CroplandHighWithoutManure: "IPCC_2019_FI_CROPLAND_HIGH_WITHOUT_MANURE",
	classify.CroplandMedium:            "IPCC_2019_FI_CROPLAND_MEDIUM",
	classify.CroplandLow:               "IPCC_2019_FI_CROPLAND_LOW",
}

// SOCRefColumn returns the column holding the reference soil organic
// carbon stock of a soil category.
func SOCRefColumn(c classify.SoilCategory) (string, bool) {
	col, ok := socRefColumns[c]
	return col, ok
}

// LandUseColumn returns the column holding the land-use factor (FLU) of a
// category. Forest, native and other land have no factor.
func LandUseColumn(c classify.LandUseCategory) (string, bool) {
	col, ok := landUseColumns[c]
	return col, ok
}

// ManagementColumn returns the column holding the management factor (FMG)
// of a category. The other category has no factor.
func ManagementColumn(c classify.ManagementCategory) (string, bool) {
	col, ok := managementColumns[c]
	return col, ok
}

// CarbonInputColumn returns the column holding the carbon-input factor
// (FI) of a category. The other category has no factor.
func CarbonInputColumn(c classify.CarbonInputCategory) (string, bool) {
	col, ok := carbonInputColumns[c]
	return col, ok
}
