package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/studyprep/internal/client/models"
	"github.com/dmitrijs2005/studyprep/internal/logging"
)

var ErrSessionInvalid = errors.New("session invalid")

type Session struct {
	mu      sync.Mutex
	user    *models.User
	pending bool
	gen     uint64

	subs    map[int]chan Snapshot
	nextSub int

	log logging.Logger
}

func New(log logging.Logger) *Session {
	return &Session{
		subs: make(map[int]chan Snapshot),
		log:  log.With("component", "session"),
	}
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe returns a channel receiving every later snapshot. A slow reader
// only ever sees the most recent one. cancel closes the channel.
func (s *Session) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan Snapshot, 1)
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// SetUser installs the user returned by login or signup. It supersedes any
// bootstrap still in flight.
func (s *Session) SetUser(user *models.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrSessionInvalid, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := *user
	s.user = &u
	s.pending = false
	s.gen++
	s.publishLocked()
	return nil
}

// MarkProfileCompleted records that onboarding finished. When user is non-nil
// it replaces the session's user; either way the completion flag is set.
func (s *Session) MarkProfileCompleted(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return ErrSessionInvalid
	}

	var u models.User
	if user != nil {
		if err := user.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrSessionInvalid, err)
		}
		u = *user
	} else {
		u = *s.user
	}
	u.ProfileInfoCompleted = models.ProfileCompleted

	s.user = &u
	s.gen++
	s.publishLocked()
	return nil
}

// Clear drops the user. Results of fetches started before Clear are ignored.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.pending = false
	s.gen++
	s.publishLocked()
}

// begin enters the pending state and returns the generation the caller must
// present to resolve or abandon it.
func (s *Session) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.pending = true
	s.gen++
	s.publishLocked()
	return s.gen
}

// resolve completes a pending fetch. It reports false if gen is stale.
func (s *Session) resolve(gen uint64, user *models.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}

	u := *user
	s.user = &u
	s.pending = false
	s.gen++
	s.publishLocked()
	return true
}

// abandon ends a pending fetch without a user. It reports false if gen is stale.
func (s *Session) abandon(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}

	s.user = nil
	s.pending = false
	s.gen++
	s.publishLocked()
	return true
}

func (s *Session) snapshotLocked() Snapshot {
	state := deriveState(s.user, s.pending)
	snap := Snapshot{State: state, Route: state.Route()}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

func (s *Session) publishLocked() {
	snap := s.snapshotLocked()
	s.log.Debug(context.Background(), "session changed", "state", snap.State, "route", snap.Route)

	for _, ch := range s.subs {
		select {
		case ch <- snap:
			continue
		default:
		}
		// replace the unread snapshot with the newer one
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}
