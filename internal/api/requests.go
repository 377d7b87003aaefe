// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/agrisensa/internal/recommend"
	"github.com/tomtom215/agrisensa/internal/validation"
)

// Request body structs. Measurements are pointers so that an omitted field
// fails "required" instead of silently becoming zero.

// CropRecommendRequest is the body of POST /crops/recommend.
type CropRecommendRequest struct {
	Nitrogen    *float64 `json:"n" validate:"required,finite,gte=0"`
	Phosphorus  *float64 `json:"p" validate:"required,finite,gte=0"`
	Potassium   *float64 `json:"k" validate:"required,finite,gte=0"`
	Temperature *float64 `json:"temperature" validate:"required,finite"`
	Humidity    *float64 `json:"humidity" validate:"required,finite,gte=0,lte=100"`
	PH          *float64 `json:"ph" validate:"required,finite,gte=0,lte=14"`
	Rainfall    *float64 `json:"rainfall" validate:"required,finite,gte=0"`
}

// Conditions converts a validated request to engine input.
func (r *CropRecommendRequest) Conditions() recommend.FieldConditions {
	return recommend.FieldConditions{
		Nitrogen:    *r.Nitrogen,
		Phosphorus:  *r.Phosphorus,
		Potassium:   *r.Potassium,
		Temperature: *r.Temperature,
		Humidity:    *r.Humidity,
		PH:          *r.PH,
		Rainfall:    *r.Rainfall,
	}
}

// SoilRequest carries current soil measurements.
type SoilRequest struct {
	Nitrogen   *float64 `json:"n" validate:"required,finite,gte=0"`
	Phosphorus *float64 `json:"p" validate:"required,finite,gte=0"`
	Potassium  *float64 `json:"k" validate:"required,finite,gte=0"`
	PH         *float64 `json:"ph" validate:"required,finite,gte=0,lte=14"`
}

// Soil converts a validated request to engine input.
func (r *SoilRequest) Soil() recommend.SoilNutrients {
	return recommend.SoilNutrients{
		Nitrogen:   *r.Nitrogen,
		Phosphorus: *r.Phosphorus,
		Potassium:  *r.Potassium,
		PH:         *r.PH,
	}
}

// FertilizerNeedsRequest is the body of POST /fertilizer/needs.
type FertilizerNeedsRequest struct {
	Crop string `json:"crop" validate:"required,max=200"`
	SoilRequest
}

// DosageRequest is the body of POST /fertilizer/dosage.
type DosageRequest struct {
	SoilRequest
}

// ProductivityRequest holds the query parameters of GET /regions/productivity.
type ProductivityRequest struct {
	Commodity string `json:"commodity" validate:"required,max=200"`
}

// ROIRequest is the body of POST /regions/roi.
type ROIRequest struct {
	Province  string   `json:"province" validate:"required,max=200"`
	District  string   `json:"district" validate:"required,max=200"`
	Commodity string   `json:"commodity" validate:"required,max=200"`
	AreaHa    *float64 `json:"area_ha" validate:"required,finite,gt=0"`
}

// Query converts a validated request to engine input.
func (r *ROIRequest) Query() recommend.ROIQuery {
	return recommend.ROIQuery{
		Province:  r.Province,
		District:  r.District,
		Commodity: r.Commodity,
		AreaHa:    *r.AreaHa,
	}
}

// maxBodyBytes caps request bodies.
const maxBodyBytes = 64 << 10

// decodeAndValidate reads a JSON body into dst and validates it. On failure
// it writes the error response and returns false.
func decodeAndValidate(rw *ResponseWriter, w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := decodeJSON(w, r, dst); err != nil {
		rw.BadRequest(err.Error())
		return false
	}
	return validateRequest(rw, dst)
}

// validateRequest validates dst. On failure it writes a VALIDATION_ERROR
// response and returns false.
func validateRequest(rw *ResponseWriter, dst interface{}) bool {
	if verr := validation.ValidateStruct(dst); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return false
	}
	return true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, tooLarge.Limit)
		}
		return fmt.Errorf("%w: %s", ErrMalformedJSON, err.Error())
	}
	if dec.More() {
		return fmt.Errorf("%w: unexpected data after JSON object", ErrMalformedJSON)
	}
	return nil
}
