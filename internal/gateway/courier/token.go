package courier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"orderdesk/internal/apperr"
)

// tokenSafetyMargin is subtracted from the upstream expires_in so a token
// is never presented within five minutes of its real expiry (clock skew,
// in-flight requests).
const tokenSafetyMargin = 300 * time.Second

// Credentials are the OAuth client-credentials pair for the courier API.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// NewCredentialsResolver resolves the client-credentials pair. Environment
// values take precedence; the courier_configs row is the fallback. Missing
// both is a configuration error with no fallback.
func NewCredentialsResolver(env Credentials, cfg configSource) func(ctx context.Context) (Credentials, error) {
	return func(ctx context.Context) (Credentials, error) {
		if env.ClientID != "" && env.ClientSecret != "" {
			return env, nil
		}
		row, err := cfg.Get(ctx)
		if err != nil {
			return Credentials{}, err
		}
		if row == nil || row.ClientID == "" || row.ClientSecret == "" {
			return Credentials{}, fmt.Errorf("courier credentials: %w", apperr.ErrConfigMissing)
		}
		return Credentials{ClientID: row.ClientID, ClientSecret: row.ClientSecret}, nil
	}
}

type counter interface {
	Inc()
}

// Exchanger performs a single OAuth client-credentials exchange against the
// courier auth endpoint.
type Exchanger struct {
	httpc     *http.Client
	baseURL   string
	exchanges counter
}

// NewExchanger creates an Exchanger. A nil http client falls back to a
// client with a bounded timeout.
func NewExchanger(httpc *http.Client, baseURL string, exchanges counter) *Exchanger {
	if httpc == nil {
		httpc = &http.Client{Timeout: 15 * time.Second}
	}
	return &Exchanger{httpc: httpc, baseURL: strings.TrimRight(baseURL, "/"), exchanges: exchanges}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Exchange requests a new bearer token. A non-2xx response yields an
// AuthError carrying the upstream body.
func (e *Exchanger) Exchange(ctx context.Context, creds Credentials) (string, time.Duration, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {creds.ClientID},
		"client_secret": {creds.ClientSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		e.baseURL+"/connect/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := e.httpc.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("token exchange: %w: %w", apperr.ErrTransient, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if e.exchanges != nil {
		e.exchanges.Inc()
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", 0, fmt.Errorf("read token response: %w: %w", apperr.ErrTransient, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", 0, &AuthError{Status: resp.StatusCode, Body: string(body)}
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", 0, fmt.Errorf("decode token response: %w", err)
	}
	if tr.AccessToken == "" || tr.ExpiresIn <= 0 {
		return "", 0, &AuthError{Status: resp.StatusCode, Body: string(body)}
	}
	return tr.AccessToken, time.Duration(tr.ExpiresIn) * time.Second, nil
}

// CachedTokenSource returns the stored token while it is valid and performs
// one exchange when it is not. Concurrent callers with no valid token may
// each store a fresh token; redundant rows are harmless.
type CachedTokenSource struct {
	store    tokenStore
	exchange func(ctx context.Context, creds Credentials) (string, time.Duration, error)
	creds    func(ctx context.Context) (Credentials, error)
	now      func() time.Time
}

// NewCachedTokenSource wires the token cache over an Exchanger.
func NewCachedTokenSource(store tokenStore, ex *Exchanger, creds func(ctx context.Context) (Credentials, error)) *CachedTokenSource {
	return &CachedTokenSource{
		store:    store,
		exchange: ex.Exchange,
		creds:    creds,
		now:      time.Now,
	}
}

// Token implements TokenSource.
func (s *CachedTokenSource) Token(ctx context.Context) (string, error) {
	now := s.now()
	tok, err := s.store.Current(ctx, now)
	if err != nil {
		return "", err
	}
	if tok.ValidAt(now) {
		return tok.Token, nil
	}

	creds, err := s.creds(ctx)
	if err != nil {
		return "", err
	}
	token, expiresIn, err := s.exchange(ctx, creds)
	if err != nil {
		return "", err
	}

	expiresAt := now.Add(expiresIn - tokenSafetyMargin)
	if err := s.store.Insert(ctx, token, expiresAt); err != nil {
		return "", err
	}
	return token, nil
}

// FreshTokenSource performs an exchange on every call, bypassing the cache.
// Waybill retrieval uses it: a low-frequency, latency-tolerant path.
type FreshTokenSource struct {
	exchange func(ctx context.Context, creds Credentials) (string, time.Duration, error)
	creds    func(ctx context.Context) (Credentials, error)
}

// NewFreshTokenSource wires an uncached token source over an Exchanger.
func NewFreshTokenSource(ex *Exchanger, creds func(ctx context.Context) (Credentials, error)) *FreshTokenSource {
	return &FreshTokenSource{exchange: ex.Exchange, creds: creds}
}

// Token implements TokenSource.
func (s *FreshTokenSource) Token(ctx context.Context) (string, error) {
	creds, err := s.creds(ctx)
	if err != nil {
		return "", err
	}
	token, _, err := s.exchange(ctx, creds)
	if err != nil {
		return "", err
	}
	return token, nil
}
