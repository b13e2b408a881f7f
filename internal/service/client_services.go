package service

import (
	"github.com/veilpost/veilpost-go/internal/adapter"
	"github.com/veilpost/veilpost-go/internal/config"
	"github.com/veilpost/veilpost-go/internal/crypto"
	"github.com/veilpost/veilpost-go/internal/logger"
	"github.com/veilpost/veilpost-go/internal/store"
)

// ClientServices bundles everything the client UI works against: the three
// flow services plus the session manager and the shared derived-key cache.
type ClientServices struct {
	Registration RegistrationService
	Login        LoginService
	OTP          OTPService

	// Sessions is the single owner of the authenticated session.
	Sessions *SessionManager

	// Keys caches the password-derived key across login attempts so an
	// OTP retry skips the derivation. Login invalidates it on success.
	Keys *DerivedKeyCache
}

// NewClientServices wires the client service graph. secrets and accounts
// may be nil to disable local persistence (used by throwaway test clients).
func NewClientServices(api adapter.AccountAPI, secrets store.SecretStore, accounts store.KnownAccountRepository, derive KeyDeriveExecutor, appCfg config.ClientApp, log *logger.Logger) *ClientServices {
	deriver := crypto.NewKeyDeriver()
	box := crypto.NewSecretBox()
	signer := crypto.NewSignatureEngine()
	sessions := NewSessionManager()
	scorer := NewPasswordScorer()

	return &ClientServices{
		Registration: NewClientRegistrationService(api, deriver, box, signer, derive, scorer, appCfg, log),
		Login:        NewClientLoginService(api, box, signer, derive, sessions, secrets, accounts, appCfg, log),
		OTP:          NewClientOTPService(api, sessions, log),
		Sessions:     sessions,
		Keys:         NewDerivedKeyCache(),
	}
}
