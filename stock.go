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

package soc

import "fmt"

// Method is the methodology used to calculate a Stock.
type Method string

// Available methods.
const (
	Tier1Model Method = "tier-1-model"
	Tier2Model Method = "tier-2-model"
)

// Depth bounds of every Stock, in cm.
const (
	StockDepthUpper = 0.
	StockDepthLower = 30.
)

// Stock is the soil organic carbon stock of a site at the end of a year.
type Stock struct {
	TermID string
	Year   int

	// Value is the stock in kg C ha⁻¹.
	Value float64

	DepthUpper, DepthLower float64
	Dates                  []string

	MethodClassification Method
}

// NewStock returns the stock record for the given year.
func NewStock(year int, value float64, method Method) *Stock {
	return &Stock{
		TermID:               OrganicCarbonPerHa,
		Year:                 year,
		Value:                value,
		DepthUpper:           StockDepthUpper,
		DepthLower:           StockDepthLower,
		Dates:                []string{fmt.Sprintf("%d-12-31", year)},
		MethodClassification: method,
	}
}

func (s *Stock) String() string {
	return fmt.Sprintf("%s %d: %g kg C/ha (%s)", s.TermID, s.Year, s.Value, s.MethodClassification)
}
