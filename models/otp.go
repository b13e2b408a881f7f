package models

// OTPSetup is the server's answer to an OTP enrollment request.
type OTPSetup struct {
	// Secret is the shared TOTP secret in base32.
	Secret string `json:"secret"`

	// ProvisioningURI is the otpauth:// URI an authenticator app imports.
	ProvisioningURI string `json:"provisioning_uri"`
}

// OTPConfirm carries the code that proves the authenticator was enrolled.
type OTPConfirm struct {
	Code string `json:"code"`
}
