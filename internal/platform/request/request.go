// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It hides the router's parameter extraction and the body decoding pattern so
every handler fails the same way on bad input.
*/
package requestutil

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/quantumbooks/internal/platform/validate"
)

// MaxBodyBytes caps the size of a decoded JSON body.
const MaxBodyBytes = 1 << 20

/*
DecodeJSON reads the request body and decodes it into target.

Returns:
  - error: validate.ErrInvalidJSON if the body is missing, too large or malformed
*/
func DecodeJSON(request *http.Request, target any) error {
	if request.Body == nil {
		return validate.ErrInvalidJSON
	}

	decoder := json.NewDecoder(io.LimitReader(request.Body, MaxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}
