package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/studyprep/internal/client/models"
)

const maxResponseBytes = 1 << 20

const (
	loginPath         = "/auth/login"
	signupPath        = "/auth/signup"
	getProfilePath    = "/profile/getUser"
	updateProfilePath = "/profile/updateUser"
	collegesPath      = "/college/names"
)

type envelope[T any] struct {
	Code    int    `json:"code"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the API rooted at baseURL. transport is
// usually an *AuthTransport; nil means http.DefaultTransport.
func NewHTTPClient(baseURL string, transport http.RoundTripper, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("parse api url: %q is not an absolute http(s) url", baseURL)
	}

	if transport == nil {
		transport = http.DefaultTransport
	}

	return &HTTPClient{
		baseURL: strings.TrimSuffix(u.String(), "/"),
		http:    &http.Client{Transport: transport, Timeout: timeout},
	}, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	req := models.LoginRequest{Email: email, Password: password}

	res, err := call[models.AuthResult](ctx, c, http.MethodPost, loginPath, req)
	if err != nil {
		return nil, err
	}
	return checkAuthResult(&res)
}

func (c *HTTPClient) Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResult, error) {
	res, err := call[models.AuthResult](ctx, c, http.MethodPost, signupPath, req)
	if err != nil {
		return nil, err
	}
	return checkAuthResult(&res)
}

func (c *HTTPClient) GetProfile(ctx context.Context) (*models.User, error) {
	user, err := call[*models.User](ctx, c, http.MethodGet, getProfilePath, nil)
	if err != nil {
		return nil, err
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadResponse, err)
	}
	return user, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error) {
	user, err := call[*models.User](ctx, c, http.MethodPut, updateProfilePath, update)
	if err != nil {
		return nil, err
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadResponse, err)
	}
	return user, nil
}

func (c *HTTPClient) ListColleges(ctx context.Context) ([]models.College, error) {
	colleges, err := call[[]models.College](ctx, c, http.MethodGet, collegesPath, nil)
	if err != nil {
		return nil, err
	}
	return colleges, nil
}

func checkAuthResult(res *models.AuthResult) (*models.AuthResult, error) {
	if res.Token == "" {
		return nil, fmt.Errorf("%w: missing token", ErrBadResponse)
	}
	if res.User != nil {
		if err := res.User.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadResponse, err)
		}
	}
	return res, nil
}

// call performs one request and unwraps the envelope into T.
func call[T any](ctx context.Context, c *HTTPClient, method, path string, body any) (T, error) {
	var zero T

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return zero, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return zero, fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}

	var env envelope[T]
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Message
		if decodeErr != nil {
			msg = ""
		}
		return zero, mapStatus(resp.StatusCode, msg)
	}

	if decodeErr != nil {
		return zero, fmt.Errorf("%w: %w", ErrBadResponse, decodeErr)
	}
	if !env.Success {
		return zero, &APIError{Status: resp.StatusCode, Code: env.Code, Message: env.Message}
	}

	return env.Data, nil
}

// IsAPIError reports whether err carries a server refusal and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
