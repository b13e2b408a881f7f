// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilpost/veilpost-go/internal/adapter"
	"github.com/veilpost/veilpost-go/internal/app"
)

// adapterErr builds an error the way the HTTP adapter does: sentinel,
// colon, raw response body.
func adapterErr(sentinel error, detail string) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(`{"detail":%q}`, detail))
}

func TestMapAdapterError_RecognizedDetails(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "conflict with registered email",
			err:  adapterErr(adapter.ErrConflict, app.MsgEmailAlreadyRegistered),
			want: ErrEmailTaken,
		},
		{
			name: "conflict with enabled otp",
			err:  adapterErr(adapter.ErrConflict, app.MsgOTPAlreadyEnabled),
			want: ErrOTPAlreadyEnabled,
		},
		{
			name: "unauthorized demanding otp",
			err:  adapterErr(adapter.ErrUnauthorized, app.MsgOTPRequired),
			want: ErrOTPRequired,
		},
		{
			name: "unauthorized with bad otp code",
			err:  adapterErr(adapter.ErrUnauthorized, app.MsgInvalidOTPCode),
			want: ErrInvalidOTPCode,
		},
		{
			name: "unauthorized with bad challenge signature",
			err:  adapterErr(adapter.ErrUnauthorized, app.MsgInvalidChallengeSignature),
			want: ErrInvalidCredentials,
		},
		{
			name: "unauthorized with dead token",
			err:  adapterErr(adapter.ErrUnauthorized, app.MsgTokenIsExpiredOrInvalid),
			want: ErrTokenExpired,
		},
		{
			name: "not found account",
			err:  adapterErr(adapter.ErrNotFound, app.MsgAccountNotFound),
			want: ErrAccountNotFound,
		},
		{
			name: "bad request demanding captcha",
			err:  adapterErr(adapter.ErrBadRequest, app.MsgCaptchaRequired),
			want: ErrCaptchaRequired,
		},
		{
			name: "forbidden demanding captcha",
			err:  adapterErr(adapter.ErrForbidden, app.MsgCaptchaRequired),
			want: ErrCaptchaRequired,
		},
		{
			name: "bad request confirming unseeded otp",
			err:  adapterErr(adapter.ErrBadRequest, app.MsgOTPNotRequested),
			want: ErrInvalidOTPCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.err)

			require.Error(t, got)
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapAdapterError_CaptchaIsPolicyRejection(t *testing.T) {
	got := mapAdapterError(adapterErr(adapter.ErrBadRequest, app.MsgCaptchaRequired))

	assert.ErrorIs(t, got, ErrPolicyRejected)
	assert.ErrorIs(t, got, ErrCaptchaRequired)
}

func TestMapAdapterError_TakenEmailIsPolicyRejection(t *testing.T) {
	got := mapAdapterError(adapterErr(adapter.ErrConflict, app.MsgEmailAlreadyRegistered))

	assert.ErrorIs(t, got, ErrPolicyRejected)
	assert.ErrorIs(t, got, ErrEmailTaken)
}

func TestMapAdapterError_UnrecognizedPassesThrough(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"bad gateway", adapterErr(adapter.ErrBadGateway, "upstream exploded")},
		{"internal error", adapterErr(adapter.ErrInternalServerError, app.MsgInternalServerError)},
		{"unknown unauthorized detail", adapterErr(adapter.ErrUnauthorized, "something new")},
		{"expired challenge", adapterErr(adapter.ErrUnauthorized, app.MsgChallengeExpired)},
		{"not an adapter error", errors.New("dial tcp: connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.err)

			// Identity preserved: the caller still sees the original
			// sentinel and the server-supplied detail.
			assert.Equal(t, tt.err.Error(), got.Error())
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestMapAdapterError_Nil(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))
}

func TestExtractDetail(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "json body",
			err:  fmt.Errorf("%w: %s", adapter.ErrConflict, `{"detail":"email is already registered"}`),
			want: "email is already registered",
		},
		{
			name: "plain text body",
			err:  fmt.Errorf("%w: %s", adapter.ErrBadGateway, "upstream exploded"),
			want: "upstream exploded",
		},
		{
			name: "no body at all",
			err:  adapter.ErrNotFound,
			want: adapter.ErrNotFound.Error(),
		},
		{
			name: "json without detail field",
			err:  fmt.Errorf("%w: %s", adapter.ErrBadRequest, `{"error":"nope"}`),
			want: `{"error":"nope"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDetail(tt.err))
		})
	}
}
