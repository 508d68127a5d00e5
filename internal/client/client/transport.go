package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/studyprep/internal/common"
	"github.com/dmitrijs2005/studyprep/internal/logging"
	"github.com/google/uuid"
)

// AuthTransport decorates every outgoing API request with the stored bearer
// token, a JSON content type and a fresh X-Request-ID. When the server
// answers 401 or 403 it calls OnUnauthorized before handing the response back.
type AuthTransport struct {
	Base           http.RoundTripper
	Token          func(ctx context.Context) (string, error)
	OnUnauthorized func(ctx context.Context)
	Log            logging.Logger
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	req = req.Clone(ctx)

	if t.Token != nil {
		tok, err := t.Token(ctx)
		if err != nil {
			t.log().Warn(ctx, "read token for request", "error", err)
		}
		if tok != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+tok)
		}
	}

	if req.Body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	resp, err := t.base().RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		t.log().Info(ctx, "request rejected, ending session",
			"path", req.URL.Path, "status", resp.StatusCode, "request_id", requestID)
		if t.OnUnauthorized != nil {
			t.OnUnauthorized(ctx)
		}
	}

	return resp, nil
}

func (t *AuthTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *AuthTransport) log() logging.Logger {
	if t.Log != nil {
		return t.Log
	}
	return logging.NewNopLogger()
}
