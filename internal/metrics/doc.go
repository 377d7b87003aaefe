// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

/*
Package metrics defines the Prometheus instrumentation of the service.

Metrics are registered on the default registry through promauto and exposed
at /metrics:

	curl http://localhost:8080/metrics

API:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Engine:
  - engine_queries_total{operation, outcome} where outcome is found or absent
  - engine_query_duration_seconds{operation}

Datasets:
  - dataset_rows{dataset}
  - dataset_version
  - dataset_reloads_total{result} where result is success, partial, failure or rejected
  - dataset_reload_duration_seconds
  - dataset_last_reload_timestamp_seconds

Circuit breaker:
  - circuit_breaker_state{name} (0=closed, 1=half-open, 2=open)
  - circuit_breaker_state_transitions_total{name, from_state, to_state}
*/
package metrics
