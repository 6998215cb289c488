// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/quantumbooks/internal/platform/apperr"
	"github.com/taibuivan/quantumbooks/internal/platform/respond"
	"github.com/taibuivan/quantumbooks/pkg/pagination"
)

/*
TestError verifies the status and envelope for each kind of error.
*/
func TestError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"not found", apperr.NotFound("book"), http.StatusNotFound, apperr.CodeNotFound, "book not found"},
		{"not available", apperr.NotAvailable("sold out"), http.StatusConflict, apperr.CodeNotAvailable, "sold out"},
		{"plain error", errors.New("disk on fire"), http.StatusInternalServerError, apperr.CodeInternal, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := httptest.NewRecorder()
			respond.Error(writer, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			require.Equal(t, tt.status, writer.Code)
			assert.Equal(t, "application/json; charset=utf-8", writer.Header().Get("Content-Type"))

			var envelope respond.ErrorEnvelope
			require.NoError(t, json.Unmarshal(writer.Body.Bytes(), &envelope))
			assert.Equal(t, tt.code, envelope.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, envelope.Error)
			}
			assert.NotContains(t, writer.Body.String(), "disk on fire")
		})
	}
}

/*
TestSuccessEnvelopes verifies the data and meta wrappers.
*/
func TestSuccessEnvelopes(t *testing.T) {
	writer := httptest.NewRecorder()
	respond.Created(writer, map[string]string{"isbn": "111"})
	assert.Equal(t, http.StatusCreated, writer.Code)
	assert.JSONEq(t, `{"data":{"isbn":"111"}}`, writer.Body.String())

	writer = httptest.NewRecorder()
	respond.Paginated(writer, []int{1, 2}, pagination.NewMeta(1, 2, 3))
	assert.Equal(t, http.StatusOK, writer.Code)
	assert.JSONEq(t, `{"data":[1,2],"meta":{"page":1,"limit":2,"total":3,"total_pages":2}}`, writer.Body.String())
}
