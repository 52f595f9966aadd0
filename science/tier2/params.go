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

// Package tier2 implements the IPCC (2019) Tier 2 steady-state method for
// mineral soils, a three-pool (active, slow and passive) soil organic
// carbon model described in:
//
// IPCC (2019). 2019 Refinement to the 2006 IPCC Guidelines for National
// Greenhouse Gas Inventories, Volume 4, Chapter 5, Section 5.2.3.3 and
// Equations 5.0A to 5.0H.
package tier2

import "github.com/spatialmodel/soc/classify"

// Params holds the parameters of the Tier 2 model. Values are from
// IPCC (2019) Table 5.5B unless noted.
type Params struct {
	// MaxTemperature is the maximum monthly air temperature for
	// decomposition [°C].
	MaxTemperature float64

	// OptimumTemperature is the optimum air temperature for
	// decomposition [°C].
	OptimumTemperature float64

	// WaterFactorSlope is the slope of the water factor.
	WaterFactorSlope float64

	// DefaultCarbonContent, DefaultNitrogenContent and DefaultLigninContent
	// are the fractions used for carbon sources that do not specify them.
	DefaultCarbonContent   float64
	DefaultNitrogenContent float64
	DefaultLigninContent   float64

	// F1 is the stabilisation efficiency of structural decay products
	// entering the active pool.
	F1 float64

	// F2 holds the stabilisation efficiency of metabolic decay products
	// entering the active pool, by tillage category. F2Other is used
	// when the tillage regime is unknown.
	F2FullTillage, F2ReducedTillage, F2NoTillage, F2Other float64

	// F3 is the fraction of structural component lignin entering the
	// slow pool.
	F3 float64

	// F5 is the fraction of active pool decay products entering the
	// passive pool.
	F5 float64

	// F6 is the fraction of slow pool decay products entering the passive
	// pool.
	F6 float64

	// F7 is the stabilisation efficiency of structural decay products
	// entering the slow pool.
	F7 float64

	// F8 is the stabilisation efficiency of active pool decay products
	// entering the slow pool.
	F8 float64

	// Tillage factors applied to the active and slow pool decay rates.
	TillageFactorFullTillage, TillageFactorReducedTillage, TillageFactorNoTillage float64

	// Decay rate constants under optimal conditions [year⁻¹].
	ActiveDecayFactor, SlowDecayFactor, PassiveDecayFactor float64

	// Timestep is the length of a model step [years].
	Timestep float64

	// RunInPeriod is the default number of years collapsed into the
	// initial equilibrium year.
	RunInPeriod int
}

// MinRunInPeriod is the minimum number of consecutive years of data
// required to run the model.
const MinRunInPeriod = 5

// DefaultParams returns the IPCC (2019) default parameters.
func DefaultParams() Params {
	return Params{
		MaxTemperature:     45,
		OptimumTemperature: 33.69,
		WaterFactorSlope:   1.331,

		DefaultCarbonContent:   0.42,
		DefaultNitrogenContent: 0.0085,
		DefaultLigninContent:   0.073,

		F1:               0.378,
		F2FullTillage:    0.455,
		F2ReducedTillage: 0.477,
		F2NoTillage:      0.5,
		F2Other:          0.368,
		F3:               0.455,
		F5:               0.0855,
		F6:               0.0504,
		F7:               0.42,
		F8:               0.45,

		TillageFactorFullTillage:    3.036,
		TillageFactorReducedTillage: 2.075,
		TillageFactorNoTillage:      1,

		ActiveDecayFactor:  7.4,
		SlowDecayFactor:    0.209,
		PassiveDecayFactor: 0.00689,

		Timestep:    1,
		RunInPeriod: MinRunInPeriod,
	}
}

// F2 returns the active pool stabilisation efficiency for a tillage
// category.
func (p Params) F2(c classify.ManagementCategory) float64 {
	switch c {
	case classify.FullTillage:
		return p.F2FullTillage
	case classify.ReducedTillage:
		return p.F2ReducedTillage
	case classify.NoTillage:
		return p.F2NoTillage
	}
	return p.F2Other
}

// TillageFactor returns the decay rate multiplier for a tillage category.
// Unknown regimes are treated as full tillage.
func (p Params) TillageFactor(c classify.ManagementCategory) float64 {
	switch c {
	case classify.ReducedTillage:
		return p.TillageFactorReducedTillage
	case classify.NoTillage:
		return p.TillageFactorNoTillage
	}
	return p.TillageFactorFullTillage
}
