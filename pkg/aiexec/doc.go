// Package aiexec is the public surface of the AiEXEC backwards
// compatibility layer. Legacy aiexec.* dotted namespaces forward, lazily
// and cached, to the canonical lfx.* component tree; aiexec-only
// namespaces load from their own source files. Setup runs once per
// process; afterwards shadow names behave like their canonical targets
// for every attribute that exists there.
package aiexec
