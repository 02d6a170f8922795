// Package metrics documents the Prometheus metrics exported by the Airbase
// client. The metrics themselves are defined next to the code they observe
// (pkg/client, pkg/fetch, pkg/session) to keep packages self-contained.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the client. All
// metrics register automatically via promauto in their packages.
var Registry = prometheus.DefaultRegisterer

// Transport metrics (pkg/client):
//   - airbase_requests_total{table, status} (Counter): requests by table and HTTP status
//   - airbase_request_duration_seconds{table} (Histogram): page request duration
//   - airbase_errors_total{class} (Counter): errors by class (client, server, network)
//
// Fetch metrics (pkg/fetch):
//   - airbase_rows_skipped_total{kind} (Counter): upstream rows skipped for
//     missing field subsets
//
// Cache and delivery metrics (pkg/session):
//   - airbase_cache_hits_total{store} (Counter): collection cache hits
//   - airbase_cache_misses_total (Counter): collection cache misses
//   - airbase_cache_errors_total{operation} (Counter): cache operation errors
//   - airbase_stale_discards_total (Counter): outcomes dropped for detached requesters
//
// Example Prometheus queries:
//
//   # Cache hit rate
//   sum(rate(airbase_cache_hits_total[5m])) /
//   (sum(rate(airbase_cache_hits_total[5m])) + sum(rate(airbase_cache_misses_total[5m])))
//
//   # Request error rate
//   rate(airbase_errors_total[5m])
//
//   # P95 page latency
//   histogram_quantile(0.95, rate(airbase_request_duration_seconds_bucket[5m]))
