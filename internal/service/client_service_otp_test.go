// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/veilpost/veilpost-go/internal/adapter"
	"github.com/veilpost/veilpost-go/internal/app"
	"github.com/veilpost/veilpost-go/internal/logger"
	"github.com/veilpost/veilpost-go/internal/mock"
	"github.com/veilpost/veilpost-go/models"
)

func newTestOTPSvc(t *testing.T, ctrl *gomock.Controller) (*clientOTPService, *mock.MockAccountAPI) {
	t.Helper()

	api := mock.NewMockAccountAPI(ctrl)
	svc := NewClientOTPService(api, NewSessionManager(), logger.Nop()).(*clientOTPService)

	return svc, api
}

func TestClientOTPService_Setup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, api := newTestOTPSvc(t, ctrl)
	svc.sessions.Set(testSession())
	ctx := context.Background()

	want := models.OTPSetup{
		Secret:          "JBSWY3DPEHPK3PXP",
		ProvisioningURI: "otpauth://totp/Veilpost:kim@veilpost.dev?issuer=Veilpost&secret=JBSWY3DPEHPK3PXP",
	}
	api.EXPECT().SetupOTP(ctx).Return(want, nil)

	got, err := svc.Setup(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientOTPService_Setup_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestOTPSvc(t, ctrl)

	// No EXPECT: the gate must fire before the API is touched.
	_, err := svc.Setup(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestClientOTPService_Setup_AlreadyEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, api := newTestOTPSvc(t, ctrl)
	svc.sessions.Set(testSession())
	ctx := context.Background()

	api.EXPECT().SetupOTP(ctx).Return(models.OTPSetup{},
		fmt.Errorf("%w: %s", adapter.ErrConflict, fmt.Sprintf(`{"detail":%q}`, app.MsgOTPAlreadyEnabled)))

	_, err := svc.Setup(ctx)
	assert.ErrorIs(t, err, ErrOTPAlreadyEnabled)
}

func TestClientOTPService_Confirm_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, api := newTestOTPSvc(t, ctrl)
	svc.sessions.Set(testSession())
	ctx := context.Background()

	api.EXPECT().ConfirmOTP(ctx, "123456").Return(nil)

	require.NoError(t, svc.Confirm(ctx, "123456"))
}

func TestClientOTPService_Confirm_InvalidCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, api := newTestOTPSvc(t, ctrl)
	svc.sessions.Set(testSession())
	ctx := context.Background()

	api.EXPECT().ConfirmOTP(ctx, "000000").Return(
		fmt.Errorf("%w: %s", adapter.ErrUnauthorized, fmt.Sprintf(`{"detail":%q}`, app.MsgInvalidOTPCode)))

	err := svc.Confirm(ctx, "000000")
	assert.ErrorIs(t, err, ErrInvalidOTPCode)
}

func TestClientOTPService_Confirm_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestOTPSvc(t, ctrl)

	err := svc.Confirm(context.Background(), "123456")
	assert.ErrorIs(t, err, ErrNoSession)
}
