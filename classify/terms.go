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

import "strings"

// Term types of the records consulted by the classifiers.
const (
	SoilType              = "soilType"
	USDASoilType          = "usdaSoilType"
	LandCover             = "landCover"
	Tillage               = "tillage"
	WaterRegime           = "waterRegime"
	CropResidueManagement = "cropResidueManagement"
	LandUseManagement     = "landUseManagement"
	OrganicFertiliser     = "organicFertiliser"
	SoilAmendment         = "soilAmendment"
	InorganicFertiliser   = "inorganicFertiliser"
)

// NumberOfTillages is the id of the management record that counts
// tillage operations.
const NumberOfTillages = "numberOfTillages"

// soilTypes maps soil-type term ids (FAO World Reference Base and USDA
// soil taxonomy) to the IPCC soil category they belong to.
var soilTypes = map[string]SoilCategory{
	// World Reference Base.
	"histosols":    OrganicSoils,
	"arenosols":    SandySoils,
	"gleysols":     WetlandSoils,
	"andosols":     VolcanicSoils,
	"podzols":      SpodicSoils,
	"leptosols":    HighActivityClaySoils,
	"vertisols":    HighActivityClaySoils,
	"kastanozems":  HighActivityClaySoils,
	"chernozems":   HighActivityClaySoils,
	"phaeozems":    HighActivityClaySoils,
	"luvisols":     HighActivityClaySoils,
	"alisols":      HighActivityClaySoils,
	"albeluvisols": HighActivityClaySoils,
	"solonetz":     HighActivityClaySoils,
	"calcisols":    HighActivityClaySoils,
	"gypsisols":    HighActivityClaySoils,
	"umbrisols":    HighActivityClaySoils,
	"cambisols":    HighActivityClaySoils,
	"regosols":     HighActivityClaySoils,
	"acrisols":     LowActivityClaySoils,
	"lixisols":     LowActivityClaySoils,
	"nitisols":     LowActivityClaySoils,
	"ferralsols":   LowActivityClaySoils,
	"durisols":     LowActivityClaySoils,
	"plinthosols":  LowActivityClaySoils,

	// USDA.
	"psamments":   SandySoils,
	"andisols":    VolcanicSoils,
	"spodosols":   SpodicSoils,
	"mollisols":   HighActivityClaySoils,
	"inceptisols": HighActivityClaySoils,
	"aridisols":   HighActivityClaySoils,
	"alfisols":    HighActivityClaySoils,
	"entisols":    HighActivityClaySoils,
	"ultisols":    LowActivityClaySoils,
	"oxisols":     LowActivityClaySoils,
}

// cropland classes of land-cover terms.
type coverClass int

const (
	annualCover coverClass = iota + 1
	perennialCover
	paddyRiceCover
	uplandRiceCover
	longFallowCover
	bareFallowCover
)

// landCoverClasses maps cropland land-cover term ids to their class.
var landCoverClasses = map[string]coverClass{
	"annualCropland":    annualCover,
	"wheatPlant":        annualCover,
	"maizePlant":        annualCover,
	"barleyPlant":       annualCover,
	"oatPlant":          annualCover,
	"ryePlant":          annualCover,
	"sorghumPlant":      annualCover,
	"soybeanPlant":      annualCover,
	"peaPlant":          annualCover,
	"beanPlant":         annualCover,
	"lentilPlant":       annualCover,
	"chickpeaPlant":     annualCover,
	"groundnutPlant":    annualCover,
	"rapeseedPlant":     annualCover,
	"sunflowerPlant":    annualCover,
	"potatoPlant":       annualCover,
	"sugarBeetPlant":    annualCover,
	"cassavaPlant":      annualCover,
	"cottonPlant":       annualCover,
	"tobaccoPlant":      annualCover,
	"onionPlant":        annualCover,
	"carrotPlant":       annualCover,
	"cabbagePlant":      annualCover,
	"tomatoPlant":       annualCover,
	"coverCrop":         annualCover,
	"perennialCropland": perennialCover,
	"appleTree":         perennialCover,
	"citrusTree":        perennialCover,
	"coffeePlant":       perennialCover,
	"cocoaTree":         perennialCover,
	"oilPalmTree":       perennialCover,
	"grapevine":         perennialCover,
	"oliveTree":         perennialCover,
	"sugarcanePlant":    perennialCover,
	"alfalfaPlant":      perennialCover,
	"ricePlantFlooded":  paddyRiceCover,
	"ricePlantUpland":   uplandRiceCover,
	"longFallowLand":    longFallowCover,
	"shortBareFallow":   bareFallowCover,
}

// grasslandCovers maps grassland land-cover term ids to the management
// category they indicate.
var grasslandCovers = map[string]ManagementCategory{
	"severelyDegradedPasture":     SeverelyDegraded,
	"improvedPasture":             ImprovedGrassland,
	"highIntensityGrazingPasture": HighIntensityGrazing,
	"nominallyManagedPasture":     NominallyManaged,
	"nativePasture":               NominallyManaged,
}

// tillageTerms maps tillage term ids to tillage categories.
var tillageTerms = map[string]ManagementCategory{
	"fullTillage":          FullTillage,
	"fullInversionTillage": FullTillage,
	"reducedTillage":       ReducedTillage,
	"minimumTillage":       ReducedTillage,
	"noTillage":            NoTillage,
}

// lowResidueCrops produce little residue (IPCC 2019 Table 5.5: root
// crops, vegetables, tobacco and cotton).
var lowResidueCrops = map[string]bool{
	"potatoPlant":    true,
	"sugarBeetPlant": true,
	"cassavaPlant":   true,
	"cottonPlant":    true,
	"tobaccoPlant":   true,
	"onionPlant":     true,
	"carrotPlant":    true,
	"cabbagePlant":   true,
	"tomatoPlant":    true,
}

var nFixingCrops = map[string]bool{
	"soybeanPlant":   true,
	"peaPlant":       true,
	"beanPlant":      true,
	"lentilPlant":    true,
	"chickpeaPlant":  true,
	"groundnutPlant": true,
	"alfalfaPlant":   true,
	"cloverPlant":    true,
}

// cInputPractices are land-use management practices that increase
// carbon inputs to the soil.
var cInputPractices = map[string]bool{
	"greenManure":              true,
	"improvedVegetatedFallow":  true,
	"highResidueProducingCrop": true,
	"residueIncorporated":      true,
	"coverCrop":                true,
	"irrigatedPasture":         true,
}

var residueRemovedOrBurnt = map[string]bool{
	"residueRemoved": true,
	"residueBurnt":   true,
}

func isIrrigation(id, termType string) bool {
	return termType == WaterRegime && strings.HasPrefix(id, "irrigated")
}

func isCoverCrop(id string) bool { return id == "coverCrop" }

func isAnimalManure(id string) bool {
	id = strings.ToLower(id)
	return strings.Contains(id, "manure") || strings.Contains(id, "slurry")
}
