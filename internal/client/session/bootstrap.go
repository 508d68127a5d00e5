package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/studyprep/internal/client/client"
	"github.com/dmitrijs2005/studyprep/internal/client/models"
	"github.com/dmitrijs2005/studyprep/internal/client/store"
	"github.com/dmitrijs2005/studyprep/internal/client/token"
	"github.com/dmitrijs2005/studyprep/internal/common"
	"github.com/dmitrijs2005/studyprep/internal/logging"
)

const DefaultRequestTimeout = 10 * time.Second

// DefaultClockSkew is how far past its exp a stored token is still sent to
// the server, so a fast local clock does not discard a valid session.
const DefaultClockSkew = 2 * time.Minute

// ProfileFetcher loads the authoritative user record for the stored token.
type ProfileFetcher interface {
	GetProfile(ctx context.Context) (*models.User, error)
}

// Bootstrapper restores the session on launch. The stored token is only a
// hint: the user is taken from the profile endpoint, never from the token.
type Bootstrapper struct {
	store   store.SecretStore
	fetcher ProfileFetcher
	session *Session
	timeout time.Duration
	now     func() time.Time
	leeway  time.Duration
	log     logging.Logger
}

func NewBootstrapper(st store.SecretStore, fetcher ProfileFetcher, s *Session, timeout time.Duration, log logging.Logger) *Bootstrapper {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &Bootstrapper{
		store:   st,
		fetcher: fetcher,
		session: s,
		timeout: timeout,
		now:     time.Now,
		leeway:  DefaultClockSkew,
		log:     log.With("component", "bootstrap"),
	}
}

// Run resolves the session and returns the resulting snapshot. The error is
// non-nil only when the outcome is not final: a transient failure (wrapping
// client.ErrUnavailable, token kept so the caller may retry) or ctx being
// cancelled while the profile was loading.
func (b *Bootstrapper) Run(ctx context.Context) (Snapshot, error) {
	raw, err := b.store.Get(ctx, common.TokenKey)
	if err != nil {
		b.log.Warn(ctx, "read stored token", "error", err)
		b.session.Clear()
		return b.session.Snapshot(), nil
	}
	if raw == "" {
		b.log.Debug(ctx, "no stored token")
		b.session.Clear()
		return b.session.Snapshot(), nil
	}

	cred, err := token.Decode(raw)
	if err != nil {
		b.log.Warn(ctx, "stored token is malformed, discarding", "error", err)
		b.discard(ctx)
		return b.session.Snapshot(), nil
	}
	if cred.Expired(b.now().Add(-b.leeway)) {
		b.log.Info(ctx, "stored token expired, discarding", "expired_at", cred.ExpiresAt)
		b.discard(ctx)
		return b.session.Snapshot(), nil
	}

	gen := b.session.begin()

	fetchCtx, cancel := context.WithTimeout(ctx, b.timeout)
	user, err := b.fetcher.GetProfile(fetchCtx)
	cancel()
	if err == nil {
		if vErr := user.Validate(); vErr != nil {
			err = fmt.Errorf("%w: %w", client.ErrBadResponse, vErr)
		}
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		b.session.abandon(gen)
		return b.session.Snapshot(), fmt.Errorf("bootstrap: %w", ctxErr)
	}

	switch {
	case err == nil:
		if !b.session.resolve(gen, user) {
			b.log.Debug(ctx, "profile arrived for a superseded session, ignoring")
		}

	case errors.Is(err, client.ErrUnauthorized):
		if b.session.abandon(gen) {
			b.log.Info(ctx, "stored token rejected by server", "error", ErrSessionInvalid)
			b.deleteToken(ctx)
		}

	default:
		if !b.session.abandon(gen) {
			break
		}
		b.log.Warn(ctx, "could not verify session", "error", err)
		if errors.Is(err, client.ErrUnavailable) {
			return b.session.Snapshot(), fmt.Errorf("bootstrap: %w", err)
		}
		return b.session.Snapshot(), fmt.Errorf("bootstrap: %w: %w", client.ErrUnavailable, err)
	}

	return b.session.Snapshot(), nil
}

func (b *Bootstrapper) discard(ctx context.Context) {
	b.deleteToken(ctx)
	b.session.Clear()
}

func (b *Bootstrapper) deleteToken(ctx context.Context) {
	if err := b.store.Delete(ctx, common.TokenKey); err != nil {
		b.log.Error(ctx, "delete stored token", "error", err)
	}
}
