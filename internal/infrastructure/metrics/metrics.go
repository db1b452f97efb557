package metrics

import (
	"expvar"
)

// Redirect node metrics.
var (
	forwardedTotal     = new(expvar.Int)
	cacheHitsTotal     = new(expvar.Int)
	canonicalLoads     = new(expvar.Int)
	physicalLoadsTotal = new(expvar.Int)
	registrationsTotal = new(expvar.Int)
	skippedTotal       = new(expvar.Int)
)

// Flow storage metrics keyed by backend (memory, postgres).
var (
	flowsSaved  = expvar.NewMap("aiexec_flows_saved_total")
	flowsLoaded = expvar.NewMap("aiexec_flows_loaded_total")
)

func init() {
	expvar.Publish("aiexec_redirect_forwarded_total", forwardedTotal)
	expvar.Publish("aiexec_redirect_cache_hits_total", cacheHitsTotal)
	expvar.Publish("aiexec_canonical_loads_total", canonicalLoads)
	expvar.Publish("aiexec_physical_loads_total", physicalLoadsTotal)
	expvar.Publish("aiexec_registrations_total", registrationsTotal)
	expvar.Publish("aiexec_registrations_skipped_total", skippedTotal)
}

// Redirect helpers
func IncForwarded()      { forwardedTotal.Add(1) }
func IncCacheHits()      { cacheHitsTotal.Add(1) }
func IncCanonicalLoads() { canonicalLoads.Add(1) }
func IncPhysicalLoads()  { physicalLoadsTotal.Add(1) }
func IncRegistrations()  { registrationsTotal.Add(1) }
func IncSkipped()        { skippedTotal.Add(1) }

// Flow storage helpers
func FlowSaved(backend string)  { flowsSaved.Add(backend, 1) }
func FlowLoaded(backend string) { flowsLoaded.Add(backend, 1) }
