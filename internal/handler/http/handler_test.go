// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/veilpost/veilpost-go/internal/logger"
	"github.com/veilpost/veilpost-go/internal/mock"
	"github.com/veilpost/veilpost-go/internal/service"
	"github.com/veilpost/veilpost-go/models"
)

// handlerMocks groups the mocked service layer behind a test handler.
type handlerMocks struct {
	accounts *mock.MockAccountService
	auth     *mock.MockAuthService
	appInfo  *mock.MockAppInfoService
}

// newTestHandler builds a Handler over mocked services.
func newTestHandler(t *testing.T) (*Handler, handlerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := handlerMocks{
		accounts: mock.NewMockAccountService(ctrl),
		auth:     mock.NewMockAuthService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AccountService: m.accounts,
		AuthService:    m.auth,
		AppInfoService: m.appInfo,
	}

	return NewHandler(services, logger.Nop()), m
}

// doRequest sends a request through the full router, middleware included.
// body may be nil, a raw string, or any value to JSON-encode. header may be
// nil.
func doRequest(t *testing.T, h *Handler, method, target string, body any, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, target, &buf)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// bearerHeader builds an Authorization header for authed-route tests.
func bearerHeader(token string) http.Header {
	return http.Header{"Authorization": []string{"Bearer " + token}}
}

// decodeBody unmarshals the recorded JSON response into target.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target), "body: %s", rec.Body.String())
}

// errorDetail extracts the "detail" field from a JSON error body.
func errorDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Detail string `json:"detail"`
	}
	decodeBody(t, rec, &body)
	return body.Detail
}

// authedToken is the bearer token test requests carry; the mocked auth
// service resolves it to testAccountID.
const (
	authedToken   = "valid-session-token"
	testAccountID = "acc-1"
)

// expectAuthed arranges the auth middleware to accept authedToken.
func expectAuthed(m handlerMocks) {
	m.auth.EXPECT().
		ParseToken(gomock.Any(), authedToken).
		Return(models.Token{AccountID: testAccountID}, nil)
}
