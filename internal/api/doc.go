// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

/*
Package api exposes the recommendation engine over HTTP using the Chi router.

Every response uses one envelope:

	{
	  "success": true,
	  "data": {...},
	  "error": {"code": "NOT_FOUND", "message": "...", "details": {...}},
	  "meta": {"timestamp": "...", "query_time_ms": 0, "dataset_version": 3, "request_id": "..."}
	}

Endpoints (all under /api/v1):

	GET  /health/live            liveness
	GET  /health/ready           readiness, 503 until datasets are published
	GET  /stats                  engine counters and per-route latency
	GET  /datasets               snapshot version, load time and row counts
	POST /datasets/reload        reload datasets now (stricter rate limit)
	GET  /crops                  crops with a nutrient profile
	POST /crops/recommend        crop matcher
	POST /fertilizer/needs       nutrient deficits, 404 for unknown crops
	POST /fertilizer/dosage      historical dosage, 404 without soil data
	GET  /regions/productivity   district ranking for ?commodity=
	POST /regions/roi            ROI simulation, 404 for unknown regions
	GET  /regions/options        provinces, districts and commodities

The handlers carry swag annotations; the generated OpenAPI document is
served at /swagger/doc.json next to the Swagger UI at /swagger/index.html.
Regenerate it after changing a handler or a request type:

	swag init -g cmd/server/docs.go -o docs --parseInternal

Absence of data is never an error inside the engine. Handlers map absence
results to 404 NOT_FOUND and empty rankings to empty lists. Malformed JSON
yields 400 BAD_REQUEST and failed field rules yield 400 VALIDATION_ERROR
with per-field details.

Each handler pins one snapshot through Engine.Query, so a reload that lands
mid-request never mixes datasets, and the response reports the version used.
*/
package api
