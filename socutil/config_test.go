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

package socutil

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/lnashier/viper"
	"github.com/spatialmodel/soc/science/tier2"
)

func TestReadConfig(t *testing.T) {
	const cfg = `
CacheSize = 100
LookupFile = "${SOC_TEST_DIR}/factors.csv"

[Tier1]
TransitionPeriod = 30

[Tier2]
F1 = 0.4
RunInPeriod = 10
`
	c, err := ReadConfig(strings.NewReader(cfg))
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	want.CacheSize = 100
	want.LookupFile = "${SOC_TEST_DIR}/factors.csv"
	want.Tier1.TransitionPeriod = 30
	want.Tier2.F1 = 0.4
	want.Tier2.RunInPeriod = 10
	if !reflect.DeepEqual(c, want) {
		t.Error(pretty.Diff(c, want))
	}
}

func TestReadConfigErrors(t *testing.T) {
	var tests = []struct {
		name, cfg, err string
	}{
		{name: "syntax", cfg: "CacheSize = ", err: "parsing the configuration file"},
		{name: "transition", cfg: "[Tier1]\nTransitionPeriod = 0", err: "Tier1.TransitionPeriod=0"},
		{name: "cache", cfg: "CacheSize = -1", err: "CacheSize=-1"},
		{name: "run-in", cfg: "[Tier2]\nRunInPeriod = 3", err: "Tier2.RunInPeriod=3"},
		{name: "timestep", cfg: "[Tier2]\nTimestep = 0.0", err: "Tier2.Timestep=0"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ReadConfig(strings.NewReader(test.cfg))
			if err == nil || !strings.Contains(err.Error(), test.err) {
				t.Errorf("have %v, want an error containing %q", err, test.err)
			}
		})
	}
}

func TestParamsFromViper(t *testing.T) {
	cfg := viper.New()
	cfg.Set("Tier2.MaxTemperature", "40")
	cfg.Set("Tier2.F2NoTillage", 0.51)
	cfg.Set("Tier2.RunInPeriod", "7")
	p, err := ParamsFromViper(cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := tier2.DefaultParams()
	want.MaxTemperature = 40
	want.F2NoTillage = 0.51
	want.RunInPeriod = 7
	if p != want {
		t.Error(pretty.Diff(p, want))
	}

	cfg.Set("Tier2.F3", "x")
	if _, err := ParamsFromViper(cfg); err == nil || !strings.Contains(err.Error(), "Tier2.F3") {
		t.Errorf("have %v, want a Tier2.F3 error", err)
	}
}

func TestConfigFromViperLookup(t *testing.T) {
	dir, err := ioutil.TempDir("", "soc")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	const table = "ecoClimateZone,IPCC_2019_SOC_REF_LAC\n1,50000\n"
	if err := ioutil.WriteFile(filepath.Join(dir, "factors.csv"), []byte(table), 0644); err != nil {
		t.Fatal(err)
	}
	os.Setenv("SOC_TEST_DIR", dir)
	defer os.Unsetenv("SOC_TEST_DIR")

	cfg := viper.New()
	cfg.Set("LookupFile", "${SOC_TEST_DIR}/factors.csv")
	cfg.Set("Tier1.TransitionPeriod", 25)
	cfg.Set("CacheSize", 5)
	c, err := ConfigFromViper(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if c.Tier1.TransitionPeriod != 25 || c.CacheSize != 5 || c.Tier2 != tier2.DefaultParams() {
		t.Errorf("unexpected configuration %# v", pretty.Formatter(c))
	}
	l, err := c.Lookup()
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := l.EcoClimateZoneValue(1, "IPCC_2019_SOC_REF_LAC"); !ok || v != 50000 {
		t.Errorf("have %g %v, want 50000 true", v, ok)
	}

	c.LookupFile = ""
	if _, err := c.Lookup(); err == nil {
		t.Error("a missing LookupFile should be an error")
	}
	c.LookupFile = filepath.Join(dir, "missing.csv")
	if _, err := c.Lookup(); err == nil {
		t.Error("a nonexistent LookupFile should be an error")
	}
}
