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

// Package soc holds the data model shared by the IPCC (2019) soil organic
// carbon stock-change methods, as described in:
//
// IPCC (2019). 2019 Refinement to the 2006 IPCC Guidelines for National
// Greenhouse Gas Inventories, Volume 4, Chapter 5: Cropland, and
// Chapter 2: Generic methodologies applicable to multiple land-use categories.
//
// The process-based calculations live in the subpackages of science/, and
// package socutil selects between them.
package soc

import "gonum.org/v1/gonum/floats"

// Site types understood by the land-use classification.
const (
	Cropland               = "cropland"
	PermanentPasture       = "permanent pasture"
	Forest                 = "forest"
	OtherNaturalVegetation = "other natural vegetation"
)

// Term ids of the measurements used by the model.
const (
	EcoClimateZone       = "ecoClimateZone"
	TemperatureMonthly   = "temperatureMonthly"
	PrecipitationMonthly = "precipitationMonthly"
	PETMonthly           = "potentialEvapotranspirationMonthly"
	SandContent          = "sandContent"
	ClayContent          = "clayContent"
	OrganicCarbonPerHa   = "organicCarbonPerHa"
)

// Term is a reference to a glossary term.
type Term struct {
	ID       string
	TermType string
}

// Property is an attribute of a Node, such as its carbon content.
// Value is usually numeric, but input data frequently carries strings.
type Property struct {
	Term  Term
	Value interface{}
}

// Node is a product or input of a Cycle.
type Node struct {
	Term       Term
	Value      []float64
	Properties []Property
}

// Total returns the sum of n.Value.
func (n Node) Total() float64 {
	if len(n.Value) == 0 {
		return 0
	}
	return floats.Sum(n.Value)
}

// Measurement is a dated scalar or time-series observation on a site.
// Monthly series carry one value per date in Dates, formatted as YYYY-MM.
type Measurement struct {
	Term  Term
	Value []float64
	Dates []string

	StartDate, EndDate string

	// DepthUpper and DepthLower are the soil depth bounds in cm,
	// or nil if the measurement is not depth-bounded.
	DepthUpper, DepthLower *float64

	MethodClassification string
}

// Management is a practice applied to part of a site for a period of time.
type Management struct {
	Term Term

	// Value is the percentage of the site area the practice covers.
	// A nil Value means the whole site. For count-type practices such
	// as the number of tillages, Value holds the count instead.
	Value *float64

	StartDate, EndDate string
}

// Site is a land parcel.
type Site struct {
	ID           string
	SiteType     string
	Measurements []Measurement
	Management   []Management
}

// Cycle is a production cycle, such as a single cropping season, on a site.
type Cycle struct {
	ID       string
	SiteID   string
	Products []Node
	Inputs   []Node

	StartDate, EndDate string
}

// CarbonSource is a carbon input to the soil. Content values are
// fractions; a content that is missing from the input data is NaN.
type CarbonSource struct {
	Mass            float64 // kg ha⁻¹
	CarbonContent   float64
	NitrogenContent float64
	LigninContent   float64
}

// Lookup resolves cells of a reference table keyed by eco-climate zone.
type Lookup interface {
	EcoClimateZoneValue(zone int, column string) (float64, bool)
}

// CycleSource returns the cycles that were carried out on a site.
type CycleSource interface {
	RelatedCycles(siteID string) ([]*Cycle, error)
}

// Cycles is a CycleSource backed by an in-memory list.
type Cycles []*Cycle

// RelatedCycles returns the cycles in c that belong to the site.
func (c Cycles) RelatedCycles(siteID string) ([]*Cycle, error) {
	var o []*Cycle
	for _, cc := range c {
		if cc.SiteID == siteID {
			o = append(o, cc)
		}
	}
	return o, nil
}

// Float returns a pointer to v, for filling in optional record fields.
func Float(v float64) *float64 { return &v }
