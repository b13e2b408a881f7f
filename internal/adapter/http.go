package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/veilpost/veilpost-go/internal/config"
	"github.com/veilpost/veilpost-go/internal/logger"
	"github.com/veilpost/veilpost-go/internal/utils"
	"github.com/veilpost/veilpost-go/models"
)

type httpAccountAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAccountAPI constructs an HTTP/REST implementation of [AccountAPI].
// It normalizes and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed
// as a valid URL.
func NewHTTPAccountAPI(adapterCfg config.ClientAdapter, log *logger.Logger) (AccountAPI, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpAccountAPI{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [AccountAPI]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpAccountAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [AccountAPI].
func (h *httpAccountAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Version implements [AccountAPI]. It GETs GET /api/version and decodes
// the build metadata.
func (h *httpAccountAPI) Version(ctx context.Context) (models.BuildInfo, error) {
	var info models.BuildInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version")
	if err != nil {
		return models.BuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BuildInfo{}, err
	}

	return info, nil
}

// CreateAccount implements [AccountAPI]. It POSTs the signed record to
// POST /api/account/register. The captcha token, when present, travels as
// a query parameter so the body stays exactly the signed document.
// Returns the stored record with server-assigned fields populated.
func (h *httpAccountAPI) CreateAccount(ctx context.Context, record models.AccountRecord, captcha string) (models.AccountRecord, error) {
	var created models.AccountRecord

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		SetResult(&created)
	if captcha != "" {
		req.SetQueryParam("captcha", captcha)
	}

	resp, err := req.Post("/api/account/register")
	if err != nil {
		return models.AccountRecord{}, fmt.Errorf("create account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccountRecord{}, err
	}

	h.logger.Debug().Str("email", record.Email).Str("account_id", created.ID).Msg("account created")

	return created, nil
}

// PublicAccount implements [AccountAPI]. It GETs the public profile from
// GET /api/account/{email}/public. No authentication is required: the
// profile is what any stranger may learn about an address.
func (h *httpAccountAPI) PublicAccount(ctx context.Context, email string) (models.PublicAccount, error) {
	var public models.PublicAccount

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&public).
		Get("/api/account/" + url.PathEscape(email) + "/public")
	if err != nil {
		return models.PublicAccount{}, fmt.Errorf("public account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicAccount{}, err
	}

	return public, nil
}

// LoginChallenge implements [AccountAPI]. It GETs a single-use challenge
// from GET /api/account/{email}/challenge.
func (h *httpAccountAPI) LoginChallenge(ctx context.Context, email string) (models.Challenge, error) {
	var challenge models.Challenge

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&challenge).
		Get("/api/account/" + url.PathEscape(email) + "/challenge")
	if err != nil {
		return models.Challenge{}, fmt.Errorf("login challenge request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Challenge{}, err
	}

	return challenge, nil
}

// SubmitLogin implements [AccountAPI]. It POSTs the signed challenge
// answer to POST /api/account/{email}/login. On success the bearer token
// is extracted from the Authorization response header and stored via
// SetToken; the body is decoded as the server's copy of the account
// record. Returns an error if the request fails, the server returns a
// non-2xx status, or the token cannot be parsed.
func (h *httpAccountAPI) SubmitLogin(ctx context.Context, email string, submission models.LoginSubmission, captcha, otp string) (models.AccountRecord, error) {
	var record models.AccountRecord

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(submission)
	if captcha != "" {
		req.SetQueryParam("captcha", captcha)
	}
	if otp != "" {
		req.SetQueryParam("otp", otp)
	}

	resp, err := req.Post("/api/account/" + url.PathEscape(email) + "/login")
	if err != nil {
		return models.AccountRecord{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccountRecord{}, err
	}

	if err = json.Unmarshal(resp.Body(), &record); err != nil {
		return models.AccountRecord{}, fmt.Errorf("decode login response: %w", err)
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.AccountRecord{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return record, nil
}

// Logout implements [AccountAPI]. It POSTs to POST /api/account/logout
// with the current bearer token. The adapter does not clear the token
// itself: the caller owns the decision, since logout is best-effort.
func (h *httpAccountAPI) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/account/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// SetupOTP implements [AccountAPI]. It POSTs to POST /api/account/otp/setup
// and decodes the enrollment material. Requires a valid bearer token.
func (h *httpAccountAPI) SetupOTP(ctx context.Context) (models.OTPSetup, error) {
	var setup models.OTPSetup

	resp, err := h.authedRequest(ctx).
		SetResult(&setup).
		Post("/api/account/otp/setup")
	if err != nil {
		return models.OTPSetup{}, fmt.Errorf("otp setup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.OTPSetup{}, err
	}

	return setup, nil
}

// ConfirmOTP implements [AccountAPI]. It POSTs the first authenticator
// code to POST /api/account/otp/confirm. Requires a valid bearer token.
func (h *httpAccountAPI) ConfirmOTP(ctx context.Context, code string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.OTPConfirm{Code: code}).
		Post("/api/account/otp/confirm")
	if err != nil {
		return fmt.Errorf("otp confirm request: %w", err)
	}

	return mapHTTPError(resp)
}

// ResendVerification implements [AccountAPI]. It POSTs to
// POST /api/account/{email}/verification/resend. No authentication is
// required so that users locked out of an unverified account can still
// ask for the mail again.
func (h *httpAccountAPI) ResendVerification(ctx context.Context, email string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/api/account/" + url.PathEscape(email) + "/verification/resend")
	if err != nil {
		return fmt.Errorf("resend verification request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAccountAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
