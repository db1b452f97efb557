// Package metrics exposes expvar-published counters used by the AiEXEC
// compatibility runtime (redirect nodes, loaders, and flow storage). It
// intentionally avoids external dependencies and shows up under /debug/vars
// when a consumer wires the default HTTP mux.
package metrics
