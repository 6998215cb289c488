// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination turns "page" and "limit" query parameters into a window
// over an in-memory result set and describes that window in list responses.
package pagination

import (
	"math"
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the page size used when "limit" is missing or invalid.
	DefaultLimit = 20
	// MaxLimit is the largest page size a client may request.
	MaxLimit = 100
	// DefaultPage is the first page (1-indexed).
	DefaultPage = 1
	// MaxPage bounds "page" so the offset always fits in an int.
	MaxPage = math.MaxInt32
)

// Params is the requested window: Limit items starting at page Page.
type Params struct {
	Page  int
	Limit int
}

// Offset returns how many items precede the requested page. It saturates at
// [math.MaxInt] instead of overflowing and is never negative.
func (p Params) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Meta describes the returned window in list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta builds [Meta] for a window of limit items out of total.
func NewMeta(page, limit, total int) Meta {
	meta := Meta{Page: page, Limit: limit, Total: total}
	if limit > 0 {
		meta.TotalPages = (total + limit - 1) / limit
	}
	return meta
}

// FromRequest reads "page" and "limit" from the query string.
//
// A missing, malformed or non-positive page falls back to [DefaultPage] and a
// page above [MaxPage] is capped. A limit outside 1..[MaxLimit] falls back to
// [DefaultLimit].
func FromRequest(r *http.Request) Params {
	query := r.URL.Query()

	page := intParam(query.Get("page"), DefaultPage)
	switch {
	case page < 1:
		page = DefaultPage
	case page > MaxPage:
		page = MaxPage
	}

	limit := intParam(query.Get("limit"), DefaultLimit)
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return Params{Page: page, Limit: limit}
}

func intParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
