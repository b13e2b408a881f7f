package models

// Challenge is a single-use login challenge issued by the server.
// The client proves key possession by signing ToSign with the
// password-derived private key.
type Challenge struct {
	// ID identifies the account the challenge was issued for.
	ID string `json:"id"`

	// ToSign is the base64-encoded random payload to sign.
	ToSign string `json:"to_sign"`
}

// LoginSubmission answers a [Challenge].
type LoginSubmission struct {
	// ID echoes the challenge's account identifier.
	ID string `json:"id"`

	// Signature is the base64-encoded signature over the decoded
	// challenge payload.
	Signature string `json:"signature"`

	// OneDayLogin asks the server for a short-lived session token
	// instead of the default long-lived one.
	OneDayLogin bool `json:"one_day_login"`
}
