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

// Package classify assigns the IPCC (2019) soil, land-use, management and
// carbon-input categories to a site from its measurement and management
// records. Each classification is an ordered list of candidate categories;
// the first candidate whose rule matches is returned.
package classify

// SoilCategory is an IPCC (2019) soil class, Table 2.3.
type SoilCategory string

// Soil categories, in order of priority.
const (
	OrganicSoils          SoilCategory = "organic soils"
	SandySoils            SoilCategory = "sandy soils"
	WetlandSoils          SoilCategory = "wetland soils"
	VolcanicSoils         SoilCategory = "volcanic soils"
	SpodicSoils           SoilCategory = "spodic soils"
	HighActivityClaySoils SoilCategory = "high-activity clay soils"
	LowActivityClaySoils  SoilCategory = "low-activity clay soils"
)

// LandUseCategory is an IPCC (2019) land-use class, Table 5.5 and Table 6.2.
type LandUseCategory string

// Land-use categories, in order of priority.
const (
	Grassland      LandUseCategory = "grassland"
	PerennialCrops LandUseCategory = "perennial crops"
	PaddyRice      LandUseCategory = "paddy rice cultivation"
	AnnualCropsWet LandUseCategory = "annual crops wet"
	AnnualCrops    LandUseCategory = "annual crops"
	SetAside       LandUseCategory = "set aside"
	ForestLand     LandUseCategory = "forest"
	Native         LandUseCategory = "native"
	OtherLandUse   LandUseCategory = "other"
)

// ManagementCategory is an IPCC (2019) management class.
type ManagementCategory string

// Management categories. The first five apply to grassland and the
// tillage categories apply to annual crops.
const (
	SeverelyDegraded     ManagementCategory = "severely degraded"
	ImprovedGrassland    ManagementCategory = "improved grassland"
	HighIntensityGrazing ManagementCategory = "high-intensity grazing"
	NominallyManaged     ManagementCategory = "nominally managed"
	FullTillage          ManagementCategory = "full tillage"
	ReducedTillage       ManagementCategory = "reduced tillage"
	NoTillage            ManagementCategory = "no tillage"
	OtherManagement      ManagementCategory = "other"
)

// CarbonInputCategory is an IPCC (2019) carbon-input class.
type CarbonInputCategory string

// Carbon-input categories.
const (
	GrasslandHigh             CarbonInputCategory = "grassland high"
	GrasslandMedium           CarbonInputCategory = "grassland medium"
	CroplandHighWithManure    CarbonInputCategory = "cropland high (with manure)"
	CroplandHighWithoutManure CarbonInputCategory = "cropland high (without manure)"
	CroplandMedium            CarbonInputCategory = "cropland medium"
	CroplandLow               CarbonInputCategory = "cropland low"
	OtherCarbonInput          CarbonInputCategory = "other"
)

// IsTillage reports whether m is one of the cropland tillage categories.
func (m ManagementCategory) IsTillage() bool {
	return m == FullTillage || m == ReducedTillage || m == NoTillage
}
