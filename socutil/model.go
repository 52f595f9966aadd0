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

// Package socutil selects and runs the soil organic carbon model that a
// site has sufficient data for, and configures it.
package socutil

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/ctessum/requestcache"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/soc"
	"github.com/spatialmodel/soc/internal/hash"
	"github.com/spatialmodel/soc/science/tier1"
	"github.com/spatialmodel/soc/science/tier2"
)

// ErrNoLookup is returned by RunTier1 when the model has no reference
// table.
var ErrNoLookup = errors.New("socutil: no reference table")

// Model calculates soil organic carbon stocks for sites, using the Tier 2
// method when a site has the data for it and the Tier 1 method otherwise.
type Model struct {
	// Lookup holds the Tier 1 reference stocks and stock change factors.
	Lookup soc.Lookup

	// Cycles supplies the production cycles of each site.
	Cycles soc.CycleSource

	Tier2Params      tier2.Params
	TransitionPeriod int

	// Log receives progress messages. It defaults to the logrus
	// standard logger.
	Log logrus.FieldLogger

	cache *requestcache.Cache
}

// NewModel returns a model with the parameters in cfg. If cfg.CacheSize is
// greater than zero, results are kept in memory for that many sites, and
// concurrent requests for the same site are only calculated once.
func NewModel(cfg *Config, l soc.Lookup, cycles soc.CycleSource) *Model {
	m := &Model{
		Lookup:           l,
		Cycles:           cycles,
		Tier2Params:      cfg.Tier2,
		TransitionPeriod: cfg.Tier1.TransitionPeriod,
		Log:              logrus.StandardLogger(),
	}
	if cfg.CacheSize > 0 {
		m.cache = requestcache.NewCache(func(ctx context.Context, request interface{}) (interface{}, error) {
			r := request.(*siteRequest)
			return m.run(r.site, r.cycles), nil
		}, runtime.GOMAXPROCS(-1), requestcache.Deduplicate(), requestcache.Memory(cfg.CacheSize))
	}
	return m
}

type siteRequest struct {
	site   *soc.Site
	cycles []*soc.Cycle
}

func (m *Model) log() logrus.FieldLogger {
	if m.Log == nil {
		return logrus.StandardLogger()
	}
	return m.Log
}

// Run returns the yearly stocks of a site. The result is empty, not an
// error, when neither method can be run. Errors are only returned when the
// cycles of the site can't be retrieved. The returned stocks may be shared
// with other callers and must not be modified.
func (m *Model) Run(ctx context.Context, site *soc.Site) ([]*soc.Stock, error) {
	var cycles []*soc.Cycle
	if m.Cycles != nil {
		var err error
		cycles, err = m.Cycles.RelatedCycles(site.ID)
		if err != nil {
			return nil, fmt.Errorf("socutil: retrieving cycles for site %s: %v", site.ID, err)
		}
	}
	if m.cache == nil {
		return m.run(site, cycles), nil
	}
	req := m.cache.NewRequest(ctx, &siteRequest{site: site, cycles: cycles},
		hash.Key(site, cycles, m.Tier2Params, m.TransitionPeriod))
	result, err := req.Result()
	if err != nil {
		return nil, err
	}
	return result.([]*soc.Stock), nil
}

func (m *Model) run(site *soc.Site, cycles []*soc.Cycle) []*soc.Stock {
	log := m.log().WithField("site", site.ID)

	stocks, err := m.RunTier2(site, cycles)
	if err == nil {
		log.WithFields(logrus.Fields{"tier": soc.Tier2Model, "years": len(stocks)}).
			Info("calculated soil organic carbon stocks")
		return stocks
	}
	log.WithError(err).Debug("tier 2 model not run")

	stocks, err = m.RunTier1(site, cycles)
	if err == nil {
		log.WithFields(logrus.Fields{"tier": soc.Tier1Model, "years": len(stocks)}).
			Info("calculated soil organic carbon stocks")
		return stocks
	}
	log.WithError(err).Debug("tier 1 model not run")
	log.Info("insufficient data to calculate soil organic carbon stocks")
	return []*soc.Stock{}
}

// RunTier2 runs the Tier 2 model only. It returns one of the tier2.Err*
// values if the site has insufficient data.
func (m *Model) RunTier2(site *soc.Site, cycles []*soc.Cycle) ([]*soc.Stock, error) {
	return tier2.Run(site, cycles, m.Tier2Params)
}

// RunTier1 runs the Tier 1 model only. It returns one of the tier1.Err*
// values if the site has insufficient data.
func (m *Model) RunTier1(site *soc.Site, cycles []*soc.Cycle) ([]*soc.Stock, error) {
	if m.Lookup == nil {
		return nil, ErrNoLookup
	}
	period := m.TransitionPeriod
	if period <= 0 {
		period = tier1.DefaultTransitionPeriod
	}
	return tier1.Run(site, cycles, m.Lookup, period)
}

// RunAll runs every site concurrently and returns their stocks in the
// same order as sites. It stops at the first error or when ctx is done.
func (m *Model) RunAll(ctx context.Context, sites []*soc.Site) ([][]*soc.Stock, error) {
	out := make([][]*soc.Stock, len(sites))
	nprocs := runtime.GOMAXPROCS(0)
	errs := make(chan error, nprocs)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(nprocs)
	for pp := 0; pp < nprocs; pp++ {
		go func(pp int) {
			defer wg.Done()
			for ii := pp; ii < len(sites); ii += nprocs {
				if err := ctx.Err(); err != nil {
					errs <- err
					return
				}
				stocks, err := m.Run(ctx, sites[ii])
				if err != nil {
					errs <- err
					cancel()
					return
				}
				out[ii] = stocks
			}
		}(pp)
	}
	wg.Wait()
	close(errs)
	if err := <-errs; err != nil {
		return nil, err
	}
	return out, nil
}
