// Package timeouts defines shared timeout constants used across the server.
// Centralizing these values keeps the durations discoverable and prevents
// drift between wiring sites.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 10 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 10 * time.Second

// OtelShutdown limits how long telemetry flushing may delay process exit.
const OtelShutdown = 5 * time.Second
