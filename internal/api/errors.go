// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package api

import "errors"

// Request decoding errors
var (
	// ErrEmptyBody indicates a POST endpoint received no body
	ErrEmptyBody = errors.New("request body is required")

	// ErrMalformedJSON indicates the body is not a single valid JSON object
	ErrMalformedJSON = errors.New("malformed JSON body")

	// ErrBodyTooLarge indicates the body exceeded maxBodyBytes
	ErrBodyTooLarge = errors.New("request body too large")
)
