// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

// General API information for swag. Regenerate the docs package with:
//
//	swag init -g cmd/server/docs.go -o docs --parseInternal
//
// @title AgriSensa API
// @version 1.0
// @description Agricultural recommendation engine over reference CSV datasets held in memory.
// @description
// @description Crop matching, fertilizer deficits, historical fertilizer doses and regional planting economics.
// @description
// @description Every response uses the same envelope with success, data, error and meta fields. meta.dataset_version names the snapshot an answer was computed from.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/agrisensa/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3857
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Health
// @tag.description Liveness and readiness probes
//
// @tag.name Core
// @tag.description Engine counters and endpoint latency
//
// @tag.name Datasets
// @tag.description Dataset snapshot status and manual reloads
//
// @tag.name Crops
// @tag.description Crop matching from soil and climate measurements
//
// @tag.name Fertilizer
// @tag.description Nutrient deficits and historical fertilizer doses
//
// @tag.name Regions
// @tag.description Regional productivity rankings and planting economics
package main
