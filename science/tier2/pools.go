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

package tier2

import "math"

// Year holds the drivers of the model for a single year.
type Year struct {
	Year int

	TemperatureFactor, WaterFactor float64

	// CarbonInput is the organic carbon input [kg C ha⁻¹].
	CarbonInput float64

	// NitrogenContent and LigninContent are the mass-weighted
	// fractions of the carbon inputs.
	NitrogenContent, LigninContent float64

	F2, TillageFactor float64
}

// Pool is the state of a soil carbon pool in a given year.
type Pool struct {
	// SteadyState is the equilibrium stock [kg C ha⁻¹].
	SteadyState float64

	// DecayRate is the decay rate [year⁻¹].
	DecayRate float64
}

// Pools holds the three pools of the model.
type Pools struct {
	Active, Slow, Passive Pool
}

// NewPools calculates the steady states and decay rates of the three pools
// for a year, where sand is the sand content fraction of the soil.
func NewPools(y Year, sand float64, p Params) Pools {
	a := ActivePool(y, sand, p)
	s := SlowPool(y, sand, a, p)
	return Pools{
		Active:  a,
		Slow:    s,
		Passive: PassivePool(y, a, s, p),
	}
}

// f4 is the fraction of active pool decay products entering the slow pool.
func f4(sand float64, p Params) float64 {
	return 1 - p.F5 - (0.17 + 0.68*sand)
}

// steadyState divides an input by a decay rate, returning zero instead
// of an infinite stock when nothing decays.
func steadyState(input, decayRate float64) float64 {
	if decayRate == 0 || math.IsNaN(decayRate) {
		return 0
	}
	return input / decayRate
}

// ActivePool returns the active pool (IPCC 2019 Equations 5.0B and 5.0C).
func ActivePool(y Year, sand float64, p Params) Pool {
	n := y.NitrogenContent
	if n <= 0 {
		n = p.DefaultNitrogenContent
	}
	β := y.CarbonInput * (0.85 - 0.018*(y.LigninContent/n))
	f4v := f4(sand, p)
	α := (β*p.F1 +
		(y.CarbonInput*(1-y.LigninContent)-β)*y.F2 +
		y.CarbonInput*y.LigninContent*p.F3*(p.F7+p.F6*p.F8)) /
		(1 - f4v*p.F7 - p.F5*p.F8 - f4v*p.F6*p.F8)

	k := y.TemperatureFactor * y.WaterFactor * y.TillageFactor * (0.25 + 0.75*sand) * p.ActiveDecayFactor
	return Pool{SteadyState: steadyState(α, k), DecayRate: k}
}

// SlowPool returns the slow pool (IPCC 2019 Equation 5.0D).
func SlowPool(y Year, sand float64, active Pool, p Params) Pool {
	k := y.TemperatureFactor * y.WaterFactor * y.TillageFactor * p.SlowDecayFactor
	in := y.CarbonInput*y.LigninContent*p.F3 + active.SteadyState*active.DecayRate*f4(sand, p)
	return Pool{SteadyState: steadyState(in, k), DecayRate: k}
}

// PassivePool returns the passive pool (IPCC 2019 Equation 5.0E).
func PassivePool(y Year, active, slow Pool, p Params) Pool {
	k := y.TemperatureFactor * y.WaterFactor * p.PassiveDecayFactor
	in := active.SteadyState*active.DecayRate*p.F5 + slow.SteadyState*slow.DecayRate*p.F6
	return Pool{SteadyState: steadyState(in, k), DecayRate: k}
}

// UpdateStock moves the stock of a pool from its previous value towards
// its steady state.
func UpdateStock(steadyState, previous, decayRate float64, p Params) float64 {
	return previous + (steadyState-previous)*p.Timestep*math.Min(1, decayRate)
}
