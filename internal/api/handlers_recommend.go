// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package api

import (
	"net/http"

	"github.com/tomtom215/agrisensa/internal/recommend"
)

// CropsResult is the body of crop listing and crop matching responses.
type CropsResult struct {
	Crops []string `json:"crops"`
	Count int      `json:"count"`
}

// RegionsResult is the body of GET /regions/productivity.
type RegionsResult struct {
	Commodity string                         `json:"commodity"`
	Regions   []recommend.RegionProductivity `json:"regions"`
	Count     int                            `json:"count"`
}

// RecommendCrops handles POST /api/v1/crops/recommend.
//
// @Summary Recommend crops for field conditions
// @Description Returns up to three crop labels, most voted first, among the nearest reference observations.
// @Tags Crops
// @Accept json
// @Produce json
// @Param request body CropRecommendRequest true "Field conditions"
// @Success 200 {object} APIResponse{data=CropsResult} "Recommended crops, possibly empty"
// @Failure 400 {object} APIResponse{error=APIError} "Malformed body or invalid measurements"
// @Router /crops/recommend [post]
func (h *Handler) RecommendCrops(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	var req CropRecommendRequest
	if !decodeAndValidate(rw, w, r, &req) {
		return
	}

	q := h.engine.Query()
	crops := q.RecommendCrops(req.Conditions())
	rw.WithDatasetVersion(q.Snapshot().Version).Success(CropsResult{Crops: crops, Count: len(crops)})
}

// CropList handles GET /api/v1/crops.
//
// @Summary List crops with a nutrient profile
// @Tags Crops
// @Produce json
// @Success 200 {object} APIResponse{data=CropsResult} "Sorted crop names"
// @Router /crops [get]
func (h *Handler) CropList(w http.ResponseWriter, r *http.Request) {
	q := h.engine.Query()
	crops := q.CropList()
	NewResponseWriter(w, r).WithDatasetVersion(q.Snapshot().Version).
		Success(CropsResult{Crops: crops, Count: len(crops)})
}

// FertilizerNeeds handles POST /api/v1/fertilizer/needs.
//
// @Summary Calculate nutrient deficits
// @Description Compares soil measurements with the ideal profile of a crop and returns deficits and corrective advice.
// @Tags Fertilizer
// @Accept json
// @Produce json
// @Param request body FertilizerNeedsRequest true "Crop and soil measurements"
// @Success 200 {object} APIResponse{data=recommend.NutrientAnalysis} "Deficits and advice"
// @Failure 400 {object} APIResponse{error=APIError} "Malformed body or invalid measurements"
// @Failure 404 {object} APIResponse{error=APIError} "No nutrient profile for the crop"
// @Router /fertilizer/needs [post]
func (h *Handler) FertilizerNeeds(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	var req FertilizerNeedsRequest
	if !decodeAndValidate(rw, w, r, &req) {
		return
	}

	q := h.engine.Query()
	rw.WithDatasetVersion(q.Snapshot().Version)
	analysis, ok := q.CalculateNeeds(req.Crop, req.Soil())
	if !ok {
		rw.NotFound("No nutrient profile for crop " + req.Crop)
		return
	}
	rw.Success(analysis)
}

// FertilizerDosage handles POST /api/v1/fertilizer/dosage.
//
// @Summary Recommend fertilizer doses from history
// @Description Averages the Urea, SP36 and KCl doses of the most similar historical plantings.
// @Tags Fertilizer
// @Accept json
// @Produce json
// @Param request body DosageRequest true "Soil measurements"
// @Success 200 {object} APIResponse{data=recommend.DosageRecommendation} "Averaged doses"
// @Failure 400 {object} APIResponse{error=APIError} "Malformed body or invalid measurements"
// @Failure 404 {object} APIResponse{error=APIError} "No historical plantings with complete soil data"
// @Router /fertilizer/dosage [post]
func (h *Handler) FertilizerDosage(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	var req DosageRequest
	if !decodeAndValidate(rw, w, r, &req) {
		return
	}

	q := h.engine.Query()
	rw.WithDatasetVersion(q.Snapshot().Version)
	rec, ok := q.RecommendDosage(req.Soil())
	if !ok {
		rw.NotFound("No historical plantings with complete soil data")
		return
	}
	rw.Success(rec)
}

// RegionProductivity handles GET /api/v1/regions/productivity?commodity=.
//
// @Summary Rank districts by productivity
// @Description Returns the districts with the highest mean production of a commodity, best first.
// @Tags Regions
// @Produce json
// @Param commodity query string true "Commodity name"
// @Success 200 {object} APIResponse{data=RegionsResult} "Ranking, possibly empty"
// @Failure 400 {object} APIResponse{error=APIError} "Missing commodity"
// @Router /regions/productivity [get]
func (h *Handler) RegionProductivity(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req := ProductivityRequest{Commodity: r.URL.Query().Get("commodity")}
	if !validateRequest(rw, &req) {
		return
	}

	q := h.engine.Query()
	regions := q.ProductivityRanking(req.Commodity)
	rw.WithDatasetVersion(q.Snapshot().Version).Success(RegionsResult{
		Commodity: req.Commodity,
		Regions:   regions,
		Count:     len(regions),
	})
}

// RegionROI handles POST /api/v1/regions/roi.
//
// @Summary Simulate planting economics
// @Description Estimates production, revenue, cost, profit and ROI for planting a commodity in a district.
// @Tags Regions
// @Accept json
// @Produce json
// @Param request body ROIRequest true "Region, commodity and area"
// @Success 200 {object} APIResponse{data=recommend.ROIEstimate} "Economic estimate"
// @Failure 400 {object} APIResponse{error=APIError} "Malformed body or invalid area"
// @Failure 404 {object} APIResponse{error=APIError} "No historical plantings for the region"
// @Router /regions/roi [post]
func (h *Handler) RegionROI(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	var req ROIRequest
	if !decodeAndValidate(rw, w, r, &req) {
		return
	}

	q := h.engine.Query()
	rw.WithDatasetVersion(q.Snapshot().Version)
	estimate, ok := q.EstimateROI(req.Query())
	if !ok {
		rw.NotFound("No historical plantings for " + req.Commodity + " in " + req.District + ", " + req.Province)
		return
	}
	rw.Success(estimate)
}

// RegionOptions handles GET /api/v1/regions/options.
//
// @Summary List locations and commodities
// @Tags Regions
// @Produce json
// @Success 200 {object} APIResponse{data=recommend.LocationOptions} "Sorted provinces, districts and commodities"
// @Router /regions/options [get]
func (h *Handler) RegionOptions(w http.ResponseWriter, r *http.Request) {
	q := h.engine.Query()
	NewResponseWriter(w, r).WithDatasetVersion(q.Snapshot().Version).Success(q.LocationOptions())
}
