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

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/kr/pretty"
)

func TestManagementMatch(t *testing.T) {
	tillage := func(m *Management) bool { return m.Term.TermType == "tillage" }
	var tests = []struct {
		name    string
		records []Management
		want    bool
	}{
		{
			name:    "exactly 30",
			records: []Management{{Term: Term{TermType: "tillage"}, Value: Float(30)}},
			want:    true,
		},
		{
			name:    "just under 30",
			records: []Management{{Term: Term{TermType: "tillage"}, Value: Float(29.999)}},
			want:    false,
		},
		{
			name: "cumulative",
			records: []Management{
				{Term: Term{TermType: "tillage"}, Value: Float(10)},
				{Term: Term{TermType: "landCover"}, Value: Float(50)},
				{Term: Term{TermType: "tillage"}, Value: Float(20)},
			},
			want: true,
		},
		{
			name:    "default coverage",
			records: []Management{{Term: Term{TermType: "tillage"}}},
			want:    true,
		},
		{
			name: "no records",
			want: false,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			have := ManagementMatch(test.records, tillage, MatchThreshold)
			if have != test.want {
				t.Errorf("have %v, want %v", have, test.want)
			}
		})
	}
}

func TestCumulativeMatchSuperMajority(t *testing.T) {
	cov := []float64{40, 29}
	match := func(i int) bool { return true }
	coverage := func(i int) (float64, bool) { return cov[i], true }
	if CumulativeMatch(len(cov), coverage, match, SuperMajorityThreshold, DefaultCoverage) {
		t.Error("69% should not be a super-majority")
	}
	cov[1] = 30
	if !CumulativeMatch(len(cov), coverage, match, SuperMajorityThreshold, DefaultCoverage) {
		t.Error("70% should be a super-majority")
	}
}

func TestGroupManagementByYear(t *testing.T) {
	records := []Management{
		{Term: Term{ID: "a"}, StartDate: "2000-03-01", EndDate: "2002-10-01"},
		{Term: Term{ID: "b"}, EndDate: "2001"},
		{Term: Term{ID: "c"}},
	}
	g := GroupManagementByYear(records)
	want := map[int][]string{
		2000: {"a"},
		2001: {"a", "b"},
		2002: {"a"},
	}
	have := make(map[int][]string)
	for y, ms := range g {
		for _, m := range ms {
			have[y] = append(have[y], m.Term.ID)
		}
	}
	if !reflect.DeepEqual(have, want) {
		t.Errorf("have %v, want %v", have, want)
	}
}

func TestMonthlyByYear(t *testing.T) {
	m := []Measurement{
		{
			Term:  Term{ID: TemperatureMonthly},
			Value: []float64{1, 2, 3},
			Dates: []string{"2000-01", "2000-02", "2001-01"},
		},
		{
			Term:  Term{ID: PrecipitationMonthly},
			Value: []float64{100},
			Dates: []string{"2000-01"},
		},
	}
	have := MonthlyByYear(m, TemperatureMonthly)
	want := map[int]map[int]float64{
		2000: {1: 1, 2: 2},
		2001: {1: 3},
	}
	if !reflect.DeepEqual(have, want) {
		t.Error(pretty.Diff(have, want))
	}
}

func TestMostRelevantValue(t *testing.T) {
	m := []Measurement{
		{
			Term:       Term{ID: OrganicCarbonPerHa},
			Value:      []float64{50000},
			EndDate:    "2005",
			DepthUpper: Float(0), DepthLower: Float(30),
		},
		{
			Term:       Term{ID: OrganicCarbonPerHa},
			Value:      []float64{40000, 42000},
			EndDate:    "2010",
			DepthUpper: Float(0), DepthLower: Float(30),
		},
		{
			Term:       Term{ID: OrganicCarbonPerHa},
			Value:      []float64{1},
			EndDate:    "2009",
			DepthUpper: Float(0), DepthLower: Float(10),
		},
		{
			Term:    Term{ID: OrganicCarbonPerHa},
			Value:   []float64{2},
			EndDate: "2008",
		},
	}
	var tests = []struct {
		target    int
		strict    bool
		value     float64
		year      int
		available bool
	}{
		{target: 2000, strict: true, value: 50000, year: 2005, available: true},
		{target: 2009, strict: true, value: 41000, year: 2010, available: true},
		{target: 2008, strict: false, value: 2, year: 2008, available: true},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%d_%v", test.target, test.strict), func(t *testing.T) {
			v, y, ok := MostRelevantValue(m, OrganicCarbonPerHa, test.target, 0, 30, test.strict)
			if ok != test.available || v != test.value || y != test.year {
				t.Errorf("have (%g, %d, %v), want (%g, %d, %v)", v, y, ok, test.value, test.year, test.available)
			}
		})
	}
	if _, _, ok := MostRelevantValue(m, SandContent, 2000, 0, 30, false); ok {
		t.Error("sand content should not be available")
	}
}

func TestPropertyValue(t *testing.T) {
	n := &Node{
		Properties: []Property{
			{Term: Term{ID: "carbonContent"}, Value: 42.5},
			{Term: Term{ID: "nitrogenContent"}, Value: " 1.2 "},
			{Term: Term{ID: "ligninContent"}, Value: "n/a"},
		},
	}
	var tests = []struct {
		id   string
		want float64
		ok   bool
	}{
		{id: "carbonContent", want: 42.5, ok: true},
		{id: "nitrogenContent", want: 1.2, ok: true},
		{id: "ligninContent", ok: false},
		{id: "dryMatter", ok: false},
	}
	for _, test := range tests {
		t.Run(test.id, func(t *testing.T) {
			v, ok := PropertyValue(n, test.id)
			if ok != test.ok || v != test.want {
				t.Errorf("have (%g, %v), want (%g, %v)", v, ok, test.want, test.ok)
			}
		})
	}
	if v := n.Properties[1].Value; v != " 1.2 " {
		t.Errorf("the node should not be modified: have %q", v)
	}
}

func TestNewStock(t *testing.T) {
	have := NewStock(2012, 51234.5, Tier2Model)
	want := &Stock{
		TermID:               "organicCarbonPerHa",
		Year:                 2012,
		Value:                51234.5,
		DepthUpper:           0,
		DepthLower:           30,
		Dates:                []string{"2012-12-31"},
		MethodClassification: "tier-2-model",
	}
	if !reflect.DeepEqual(have, want) {
		t.Error(pretty.Diff(have, want))
	}
	if Tier1Model != "tier-1-model" {
		t.Errorf("tier 1 method: have %q, want %q", Tier1Model, "tier-1-model")
	}
}

func TestCycles(t *testing.T) {
	c := Cycles{{ID: "1", SiteID: "a"}, {ID: "2", SiteID: "b"}, {ID: "3", SiteID: "a"}}
	have, err := c.RelatedCycles("a")
	if err != nil {
		t.Fatal(err)
	}
	if len(have) != 2 || have[0].ID != "1" || have[1].ID != "3" {
		t.Errorf("unexpected cycles %v", have)
	}
}
