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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lnashier/viper"
	"github.com/spatialmodel/soc/lookup"
	"github.com/spatialmodel/soc/science/tier1"
	"github.com/spatialmodel/soc/science/tier2"
	"github.com/spf13/cast"
)

// Config holds the model configuration.
type Config struct {
	// Tier2 holds the Tier 2 model parameters.
	Tier2 tier2.Params

	Tier1 struct {
		// TransitionPeriod is the number of years the soil takes to
		// reach a new equilibrium.
		TransitionPeriod int
	}

	// CacheSize is the number of site results to keep in memory.
	// Results are not cached if it is zero.
	CacheSize int

	// LookupFile is the path to the Tier 1 reference table, in CSV or
	// XLSX format. It can include environment variables.
	LookupFile string

	// LookupSheet is the sheet of an XLSX LookupFile to read. The first
	// sheet is used if it is empty.
	LookupSheet string
}

// DefaultConfig returns a configuration with the IPCC (2019) default
// parameters and no lookup file.
func DefaultConfig() *Config {
	c := &Config{Tier2: tier2.DefaultParams()}
	c.Tier1.TransitionPeriod = tier1.DefaultTransitionPeriod
	return c
}

// ReadConfig reads a TOML configuration. Values that are not in the file
// keep their defaults.
func ReadConfig(r io.Reader) (*Config, error) {
	c := DefaultConfig()
	if _, err := toml.DecodeReader(r, c); err != nil {
		return nil, fmt.Errorf("socutil: there has been an error parsing the configuration file: %v", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.Tier1.TransitionPeriod <= 0 {
		return fmt.Errorf("socutil: parsing configuration: Tier1.TransitionPeriod=%d but should be >0", c.Tier1.TransitionPeriod)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("socutil: parsing configuration: CacheSize=%d but should be >=0", c.CacheSize)
	}
	if c.Tier2.RunInPeriod < tier2.MinRunInPeriod {
		return fmt.Errorf("socutil: parsing configuration: Tier2.RunInPeriod=%d but should be >=%d", c.Tier2.RunInPeriod, tier2.MinRunInPeriod)
	}
	vars := []float64{c.Tier2.Timestep, c.Tier2.MaxTemperature - c.Tier2.OptimumTemperature}
	varNames := []string{"Tier2.Timestep", "Tier2.MaxTemperature-Tier2.OptimumTemperature"}
	for i, v := range vars {
		if !(v > 0) {
			return fmt.Errorf("socutil: parsing configuration: %s=%g but should be >0", varNames[i], v)
		}
	}
	return nil
}

// Lookup loads the reference table in c.LookupFile. Files ending in .xlsx
// are read as spreadsheets and all others as CSV.
func (c *Config) Lookup() (*lookup.Table, error) {
	if c.LookupFile == "" {
		return nil, fmt.Errorf("socutil: LookupFile is not specified")
	}
	path := os.ExpandEnv(c.LookupFile)
	if strings.ToLower(filepath.Ext(path)) == ".xlsx" {
		return lookup.ReadXLSX(path, os.ExpandEnv(c.LookupSheet))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("socutil: opening lookup file: %v", err)
	}
	defer f.Close()
	return lookup.ReadCSV(f)
}

// tier2Keys maps viper configuration keys to the parameters they set.
func tier2Keys(p *tier2.Params) map[string]*float64 {
	return map[string]*float64{
		"Tier2.MaxTemperature":              &p.MaxTemperature,
		"Tier2.OptimumTemperature":          &p.OptimumTemperature,
		"Tier2.WaterFactorSlope":            &p.WaterFactorSlope,
		"Tier2.DefaultCarbonContent":        &p.DefaultCarbonContent,
		"Tier2.DefaultNitrogenContent":      &p.DefaultNitrogenContent,
		"Tier2.DefaultLigninContent":        &p.DefaultLigninContent,
		"Tier2.F1":                          &p.F1,
		"Tier2.F2FullTillage":               &p.F2FullTillage,
		"Tier2.F2ReducedTillage":            &p.F2ReducedTillage,
		"Tier2.F2NoTillage":                 &p.F2NoTillage,
		"Tier2.F2Other":                     &p.F2Other,
		"Tier2.F3":                          &p.F3,
		"Tier2.F5":                          &p.F5,
		"Tier2.F6":                          &p.F6,
		"Tier2.F7":                          &p.F7,
		"Tier2.F8":                          &p.F8,
		"Tier2.TillageFactorFullTillage":    &p.TillageFactorFullTillage,
		"Tier2.TillageFactorReducedTillage": &p.TillageFactorReducedTillage,
		"Tier2.TillageFactorNoTillage":      &p.TillageFactorNoTillage,
		"Tier2.ActiveDecayFactor":           &p.ActiveDecayFactor,
		"Tier2.SlowDecayFactor":             &p.SlowDecayFactor,
		"Tier2.PassiveDecayFactor":          &p.PassiveDecayFactor,
		"Tier2.Timestep":                    &p.Timestep,
	}
}

// ParamsFromViper returns the Tier 2 parameters in a viper configuration.
// Parameters that are not set keep their IPCC (2019) defaults.
func ParamsFromViper(cfg *viper.Viper) (tier2.Params, error) {
	p := tier2.DefaultParams()
	for key, v := range tier2Keys(&p) {
		if !cfg.IsSet(key) {
			continue
		}
		f, err := cast.ToFloat64E(cfg.Get(key))
		if err != nil {
			return p, fmt.Errorf("socutil: %s: %v", key, err)
		}
		*v = f
	}
	if cfg.IsSet("Tier2.RunInPeriod") {
		n, err := cast.ToIntE(cfg.Get("Tier2.RunInPeriod"))
		if err != nil {
			return p, fmt.Errorf("socutil: Tier2.RunInPeriod: %v", err)
		}
		p.RunInPeriod = n
	}
	return p, nil
}

// ConfigFromViper returns the configuration in a viper configuration.
// Values that are not set keep their defaults.
func ConfigFromViper(cfg *viper.Viper) (*Config, error) {
	c := DefaultConfig()
	var err error
	if c.Tier2, err = ParamsFromViper(cfg); err != nil {
		return nil, err
	}
	if cfg.IsSet("Tier1.TransitionPeriod") {
		c.Tier1.TransitionPeriod = cfg.GetInt("Tier1.TransitionPeriod")
	}
	c.CacheSize = cfg.GetInt("CacheSize")
	c.LookupFile = os.ExpandEnv(cfg.GetString("LookupFile"))
	c.LookupSheet = os.ExpandEnv(cfg.GetString("LookupSheet"))
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}
