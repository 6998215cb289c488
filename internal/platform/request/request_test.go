// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	requestutil "github.com/taibuivan/quantumbooks/internal/platform/request"
	"github.com/taibuivan/quantumbooks/internal/platform/validate"
)

type order struct {
	Quantity int    `json:"quantity"`
	Email    string `json:"email"`
}

/*
TestDecodeJSON verifies decoding and each rejected body.
*/
func TestDecodeJSON(t *testing.T) {
	newRequest := func(body string) *http.Request {
		return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	}

	var got order
	require.NoError(t, requestutil.DecodeJSON(newRequest(`{"quantity":2,"email":"a@b.c"}`), &got))
	assert.Equal(t, order{Quantity: 2, Email: "a@b.c"}, got)

	for name, body := range map[string]string{
		"empty":         "",
		"malformed":     `{"quantity":`,
		"unknown field": `{"quantity":1,"coupon":"FREE"}`,
		"wrong type":    `{"quantity":"two"}`,
	} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, requestutil.DecodeJSON(newRequest(body), &order{}), validate.ErrInvalidJSON)
		})
	}

	noBody := httptest.NewRequest(http.MethodPost, "/", nil)
	noBody.Body = nil
	assert.ErrorIs(t, requestutil.DecodeJSON(noBody, &order{}), validate.ErrInvalidJSON)
}
