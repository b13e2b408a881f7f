// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package service

// RegistrationStep identifies one step of the registration flow. The flow
// reports each step through the caller's progress callback just before
// executing it, so a UI can show which stage a long derivation is stuck on.
type RegistrationStep int

const (
	RegStepCheckPasswordStrength RegistrationStep = iota
	RegStepCheckEmailAvailability
	RegStepGenerateSalt
	RegStepDeriveKey
	RegStepSeedAuthKeypair
	RegStepGenerateKeychain
	RegStepGenerateKeypairs
	RegStepBuildRecord
	RegStepSignRecord
	RegStepSubmit
	RegStepDone
)

var registrationStepNames = map[RegistrationStep]string{
	RegStepCheckPasswordStrength:  "checking password strength",
	RegStepCheckEmailAvailability: "checking email availability",
	RegStepGenerateSalt:           "generating salt",
	RegStepDeriveKey:              "deriving key",
	RegStepSeedAuthKeypair:        "seeding auth keypair",
	RegStepGenerateKeychain:       "generating keychain",
	RegStepGenerateKeypairs:       "generating keypairs",
	RegStepBuildRecord:            "building account record",
	RegStepSignRecord:             "signing account record",
	RegStepSubmit:                 "submitting",
	RegStepDone:                   "done",
}

func (s RegistrationStep) String() string {
	if name, ok := registrationStepNames[s]; ok {
		return name
	}
	return "unknown"
}

// LoginStep identifies one step of the login flow, reported the same way as
// [RegistrationStep].
type LoginStep int

const (
	LoginStepCaptchaCheck LoginStep = iota
	LoginStepFetchPublicRecord
	LoginStepDeriveKey
	LoginStepOTPGate
	LoginStepSeedAuthKeypair
	LoginStepFetchChallenge
	LoginStepSignAndSubmit
	LoginStepValidateRecord
	LoginStepDecryptKeychain
	LoginStepDecryptKeypairs
	LoginStepEstablishSession
	LoginStepDone
)

var loginStepNames = map[LoginStep]string{
	LoginStepCaptchaCheck:      "checking captcha",
	LoginStepFetchPublicRecord: "fetching account parameters",
	LoginStepDeriveKey:         "deriving key",
	LoginStepOTPGate:           "checking one-time password",
	LoginStepSeedAuthKeypair:   "seeding auth keypair",
	LoginStepFetchChallenge:    "fetching challenge",
	LoginStepSignAndSubmit:     "signing and submitting",
	LoginStepValidateRecord:    "validating account record",
	LoginStepDecryptKeychain:   "decrypting keychain",
	LoginStepDecryptKeypairs:   "decrypting keypairs",
	LoginStepEstablishSession:  "establishing session",
	LoginStepDone:              "done",
}

func (s LoginStep) String() string {
	if name, ok := loginStepNames[s]; ok {
		return name
	}
	return "unknown"
}
