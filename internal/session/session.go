// Package session holds the state of one interactive attendance session:
// the identity supplied at login, the selected date, kind and time, the
// credentials loaded at start, and the in-memory history.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/nvquaan/con-bo-cham-chi/internal/attendance"
	"github.com/nvquaan/con-bo-cham-chi/internal/credential"
	"github.com/nvquaan/con-bo-cham-chi/internal/history"
	"github.com/nvquaan/con-bo-cham-chi/internal/submission"
)

// ErrInFlight is returned by Submit while another submission is outstanding.
var ErrInFlight = errors.New("a submission is already in progress")

// Submitter sends one attendance request. *submission.Service satisfies it.
type Submitter interface {
	Submit(ctx context.Context, req submission.Request) submission.Outcome
}

// CredentialStore persists credentials. *credential.Store satisfies it.
type CredentialStore interface {
	Load() (credential.Credentials, error)
	Save(c credential.Credentials) error
}

// Options configures a new Session.
type Options struct {
	UserID      string
	Username    string
	Submitter   Submitter
	Store       CredentialStore
	HistorySize int
	Source      attendance.Source
	Now         func() time.Time
}

// Session is one logged-in user's attendance workspace. It is safe for
// concurrent use; mu guards everything below it, and the network call in
// Submit runs without holding it.
type Session struct {
	userID    string
	username  string
	submitter Submitter
	store     CredentialStore
	history   *history.Log
	now       func() time.Time

	mu       sync.Mutex
	creds    credential.Credentials
	sampler  *attendance.Sampler
	date     string
	kind     attendance.EventKind
	time     string
	inFlight bool
}

// New starts a session dated today, set to check-in, with credentials
// loaded once from the store.
func New(opts Options) (*Session, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	creds, err := opts.Store.Load()
	if err != nil {
		return nil, err
	}

	today := attendance.Today(now())
	s := &Session{
		userID:    opts.UserID,
		username:  opts.Username,
		submitter: opts.Submitter,
		store:     opts.Store,
		creds:     creds,
		history:   history.New(opts.HistorySize),
		sampler:   attendance.NewSampler(opts.Source, today),
		now:       now,
		date:      today,
		kind:      attendance.CheckIn,
	}
	s.time = s.sampler.For(s.kind)
	return s, nil
}

func (s *Session) UserID() string   { return s.userID }
func (s *Session) Username() string { return s.username }

func (s *Session) Date() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.date
}

func (s *Session) Kind() attendance.EventKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kind
}

func (s *Session) Time() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.time
}

// TimeValid reports whether the current time passes validation.
func (s *Session) TimeValid() bool {
	return attendance.IsValidTime(s.Time())
}

// SetDate selects a new attendance date. A different date redraws the
// candidate times and resets the time to the new candidate.
func (s *Session) SetDate(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sampler.DateChanged(date) {
		s.date = date
		s.time = s.sampler.For(s.kind)
	}
}

// SetKind switches the event kind and resets the time to that kind's
// held candidate.
func (s *Session) SetKind(kind attendance.EventKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kind = kind
	s.time = s.sampler.For(kind)
}

// SetTime replaces the time with a user-edited value. It is not validated
// here; Submit refuses invalid values.
func (s *Session) SetTime(t string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.time = t
}

// Credentials returns the credentials in effect for this session.
func (s *Session) Credentials() credential.Credentials {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds
}

// SaveCredentials persists c and uses it for later submissions.
func (s *Session) SaveCredentials(c credential.Credentials) error {
	if err := s.store.Save(c); err != nil {
		return err
	}
	s.mu.Lock()
	s.creds = c
	s.mu.Unlock()
	return nil
}

// History returns the session's attempts, newest first.
func (s *Session) History() []history.Entry {
	return s.history.Entries()
}

// HistoryCap returns the maximum number of attempts kept.
func (s *Session) HistoryCap() int {
	return s.history.Cap()
}

// Submit sends the selection as it stands when called. Every outcome is
// recorded in the history. After an attempt that reached the server the
// candidate times are redrawn and the time reset, even if the selection was
// edited meanwhile. ErrInFlight is returned, and nothing recorded, if a
// submission is already outstanding.
func (s *Session) Submit(ctx context.Context) (submission.Outcome, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return submission.Outcome{}, ErrInFlight
	}
	s.inFlight = true
	req := submission.Request{
		UserID:      s.userID,
		Username:    s.username,
		Kind:        s.kind,
		Date:        s.date,
		Time:        s.time,
		Credentials: s.creds,
	}
	s.mu.Unlock()

	out := s.submitter.Submit(ctx, req)
	s.history.Record(history.NewEntry(out.Payload, s.now(), out.Message))

	s.mu.Lock()
	defer s.mu.Unlock()
	if out.Sent() {
		s.sampler.Submitted()
		s.time = s.sampler.For(s.kind)
	}
	s.inFlight = false
	return out, nil
}
