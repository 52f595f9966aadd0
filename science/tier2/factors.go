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

import (
	"math"

	"github.com/spatialmodel/soc"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// IrrigatedWaterFactor is the monthly water factor of irrigated land
// (IPCC 2019 Equation 5.0F).
const IrrigatedWaterFactor = 0.775

// maxMAPPET is the upper limit of the ratio of precipitation to potential
// evapotranspiration.
const maxMAPPET = 1.25

// TemperatureFactor returns the effect of the average monthly air
// temperature t [°C] on decomposition (IPCC 2019 Equation 5.0E).
func TemperatureFactor(t float64, p Params) float64 {
	if t >= p.MaxTemperature {
		return 0
	}
	prelim := (p.MaxTemperature - t) / (p.MaxTemperature - p.OptimumTemperature)
	return math.Pow(prelim, 0.2) * math.Exp((0.2/2.63)*(1-math.Pow(prelim, 2.63)))
}

// AnnualTemperatureFactor returns the mean of the monthly temperature
// factors of a year. It returns false if there is no data.
func AnnualTemperatureFactor(monthly []float64, p Params) (float64, bool) {
	if len(monthly) == 0 {
		return 0, false
	}
	f := make([]float64, len(monthly))
	for i, t := range monthly {
		f[i] = TemperatureFactor(t, p)
	}
	return stat.Mean(f, nil), true
}

// WaterFactor returns the effect of monthly precipitation and potential
// evapotranspiration [mm] on decomposition (IPCC 2019 Equation 5.0F).
func WaterFactor(precipitation, pet float64, irrigated bool, p Params) float64 {
	if irrigated {
		return IrrigatedWaterFactor
	}
	var mappet float64
	switch {
	case pet > 0:
		mappet = math.Min(maxMAPPET, precipitation/pet)
	case precipitation > 0:
		mappet = maxMAPPET
	}
	return 0.2129 + p.WaterFactorSlope*mappet - 0.2413*mappet*mappet
}

// AnnualWaterFactor returns 1.5 times the mean of the monthly water
// factors of a year. irrigated may be nil. It returns false if either
// series is empty.
func AnnualWaterFactor(precipitation, pet []float64, irrigated []bool, p Params) (float64, bool) {
	n := len(precipitation)
	if n == 0 || len(pet) == 0 {
		return 0, false
	}
	if len(pet) < n {
		n = len(pet)
	}
	f := make([]float64, n)
	for i := 0; i < n; i++ {
		f[i] = WaterFactor(precipitation[i], pet[i], i < len(irrigated) && irrigated[i], p)
	}
	return 1.5 * stat.Mean(f, nil), true
}

// CarbonInput returns the total organic carbon input [kg C ha⁻¹] of a
// year's carbon sources, along with their mass-weighted nitrogen and
// lignin content fractions. Missing contents are replaced by the defaults
// in p.
func CarbonInput(sources []soc.CarbonSource, p Params) (c, nitrogen, lignin float64) {
	if len(sources) == 0 {
		return 0, p.DefaultNitrogenContent, p.DefaultLigninContent
	}
	mass := make([]float64, len(sources))
	n := make([]float64, len(sources))
	l := make([]float64, len(sources))
	for i, s := range sources {
		mass[i] = s.Mass
		c += s.Mass * orDefault(s.CarbonContent, p.DefaultCarbonContent)
		n[i] = orDefault(s.NitrogenContent, p.DefaultNitrogenContent)
		l[i] = orDefault(s.LigninContent, p.DefaultLigninContent)
	}
	if floats.Sum(mass) <= 0 {
		return c, p.DefaultNitrogenContent, p.DefaultLigninContent
	}
	return c, stat.Mean(n, mass), stat.Mean(l, mass)
}

func orDefault(v, def float64) float64 {
	if math.IsNaN(v) {
		return def
	}
	return v
}
