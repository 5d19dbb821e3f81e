package resrel

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"
)

// SessionStatus is the authentication state.
type SessionStatus int

const (
	// StatusUnknown is the initial state, before the first auth check
	// resolves.
	StatusUnknown SessionStatus = iota
	// StatusAuthenticated means a user is present.
	StatusAuthenticated
	// StatusAnonymous means no user is present.
	StatusAnonymous
)

func (s SessionStatus) String() string {
	switch s {
	case StatusAuthenticated:
		return "authenticated"
	case StatusAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// SessionState is a snapshot of the session at one point in time.
type SessionState struct {
	Status  SessionStatus
	User    *User
	Loading bool

	// Err holds the last classified failure worth displaying. It does not
	// affect Status: a failed profile fetch leaves the user anonymous with
	// an error attached.
	Err *ErrorInfo
}

// IsAuthenticated reports whether a user is present.
func (s SessionState) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated && s.User != nil
}

// Result is returned by every session operation. Session operations never
// return a raw error: callers branch on Success and read Error for the
// classified failure.
type Result struct {
	Success bool
	Error   *ErrorInfo
}

// Session is the authentication state machine. Exactly one instance is
// constructed at application start and injected wherever auth state is
// needed. It keeps the stored token and the in-memory user consistent:
// whenever the token is removed, the user becomes absent within the same
// check cycle.
//
// Writes are mutex-guarded but operations are not interlocked with each
// other: two overlapping logins resolve last-write-wins, matching the
// behavior of the web front end this replaces. CheckAuth is the exception:
// concurrent calls share a single profile fetch.
type Session struct {
	auth   *AuthAPI
	tokens TokenStore
	logger *slog.Logger

	mu        sync.Mutex
	state     SessionState
	listeners map[int]func(SessionState)
	nextID    int

	checkFlight singleflight.Group
}

// NewSession builds a Session around the auth API. The state starts as
// unknown/loading until Init or CheckAuth resolves it.
func NewSession(auth *AuthAPI, logger *slog.Logger) *Session {
	return &Session{
		auth:      auth,
		tokens:    auth.client.Tokens(),
		logger:    logger,
		state:     SessionState{Status: StatusUnknown, Loading: true},
		listeners: make(map[int]func(SessionState)),
	}
}

func (s *Session) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}

// State returns a snapshot of the current session state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsAuthenticated reports whether the current state holds a user.
func (s *Session) IsAuthenticated() bool {
	return s.State().IsAuthenticated()
}

// Subscribe registers a listener called on every state transition and
// returns its unsubscribe function. Listeners run on the goroutine that
// triggered the transition.
func (s *Session) Subscribe(fn func(SessionState)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// transition replaces the state and notifies listeners outside the lock.
func (s *Session) transition(next SessionState) {
	s.mu.Lock()
	s.state = next
	listeners := make([]func(SessionState), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
}

// Init resolves the initial unknown state: with no stored token the
// session goes straight to anonymous without a network call, otherwise it
// behaves like CheckAuth.
func (s *Session) Init(ctx context.Context) Result {
	return s.CheckAuth(ctx)
}

// CheckAuth resynchronizes the session with the stored token. Re-entrant
// and callable at any time; concurrent invocations are deduplicated so a
// burst of checks produces one profile fetch whose outcome they all share.
func (s *Session) CheckAuth(ctx context.Context) Result {
	v, _, _ := s.checkFlight.Do("check", func() (any, error) {
		return s.checkAuth(ctx), nil
	})
	res, ok := v.(Result)
	if !ok {
		return Result{}
	}
	return res
}

func (s *Session) checkAuth(ctx context.Context) Result {
	token, err := s.tokens.Token()
	if err != nil {
		s.log().Warn("read stored token", "error", err)
	}
	if token == "" {
		// No token, no profile fetch.
		s.transition(SessionState{Status: StatusAnonymous})
		return Result{Success: false}
	}

	s.markLoading()

	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		info := Classify(err)
		if info.Type == ErrTypeAuth {
			// The token is dead; the client already purged it on 401, but
			// a non-401 auth classification must purge it too.
			if clearErr := s.tokens.Clear(); clearErr != nil {
				s.log().Warn("clear stored token", "error", clearErr)
			}
			s.transition(SessionState{Status: StatusAnonymous})
			return Result{Success: false, Error: &info}
		}
		// Transient failure: anonymous from the caller's perspective, but
		// keep the error for display and leave the token in place.
		s.transition(SessionState{Status: StatusAnonymous, Err: &info})
		return Result{Success: false, Error: &info}
	}

	s.transition(SessionState{Status: StatusAuthenticated, User: user})
	return Result{Success: true}
}

func (s *Session) markLoading() {
	s.mu.Lock()
	st := s.state
	st.Loading = true
	s.state = st
	s.mu.Unlock()
}

// Login authenticates with the backend. On success the session becomes
// authenticated with the returned user; on failure the classified error is
// stored and returned, and the state stays unauthenticated.
func (s *Session) Login(ctx context.Context, creds Credentials) Result {
	user, err := s.auth.Login(ctx, creds)
	if err != nil {
		info := Classify(err)
		s.transition(SessionState{Status: StatusAnonymous, Err: &info})
		return Result{Success: false, Error: &info}
	}

	s.transition(SessionState{Status: StatusAuthenticated, User: user})
	return Result{Success: true}
}

// Register creates an account; same contract as Login.
func (s *Session) Register(ctx context.Context, reg Registration) Result {
	user, err := s.auth.Register(ctx, reg)
	if err != nil {
		info := Classify(err)
		s.transition(SessionState{Status: StatusAnonymous, Err: &info})
		return Result{Success: false, Error: &info}
	}

	s.transition(SessionState{Status: StatusAuthenticated, User: user})
	return Result{Success: true}
}

// Logout tears the session down. The local user and token are cleared in
// both branches; a remote failure only shows up in the returned Result.
func (s *Session) Logout(ctx context.Context) Result {
	err := s.auth.Logout(ctx)

	s.transition(SessionState{Status: StatusAnonymous})

	if err != nil {
		info := Classify(err)
		return Result{Success: false, Error: &info}
	}
	return Result{Success: true}
}
