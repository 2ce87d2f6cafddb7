package deepfake

import (
	"context"
	"errors"
	"sync"
)

// Session guard errors. Starting an analysis is only legal with a file
// selected, nothing in flight, and no unacknowledged error.
var (
	ErrNoFileSelected  = errors.New("deepfake: no file selected")
	ErrAnalysisRunning = errors.New("deepfake: analysis already in flight")
	ErrErrorPending    = errors.New("deepfake: previous error pending, select a new file")
)

// SessionState is the observable lifecycle state of a Session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateFileSelected
	StateAnalyzing
	StateResulted
	StateErrored
)

func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFileSelected:
		return "file-selected"
	case StateAnalyzing:
		return "analyzing"
	case StateResulted:
		return "resulted"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Session drives the select → analyze → result lifecycle for one file at a
// time. Selecting a new file always clears the prior result or error,
// releases the prior selection's display handle exactly once, and cancels
// any in-flight analysis so a stale result can never land.
//
// Safe for concurrent use.
type Session struct {
	cfg *Config

	mu      sync.Mutex
	state   SessionState
	path    string
	opts    AnalyzeOpts
	release func() // temporary display handle, invoked exactly once
	cancel  context.CancelFunc
	gen     uint64 // selection generation; stale analyses compare against it
	result  *AnalysisResult
	err     error
}

// NewSession creates an idle session. cfg may be nil for defaults.
func NewSession(cfg *Config) *Session {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Session{cfg: cfg}
}

// State returns the current lifecycle state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Select makes path the current file. release, if non-nil, is the cleanup
// for the selection's temporary display handle; the session invokes it
// exactly once — when the selection is superseded or on Close.
func (s *Session) Select(path string, opts AnalyzeOpts, release func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dropSelectionLocked()

	s.path = path
	s.opts = opts
	s.release = release
	s.state = StateFileSelected
}

// Analyze runs the analysis for the current selection and blocks until it
// completes. Rejected with ErrNoFileSelected, ErrAnalysisRunning, or
// ErrErrorPending when the state machine forbids starting. Terminates in
// exactly one of Resulted or Errored — unless the selection changed
// mid-flight, in which case the stale outcome is discarded and the session
// keeps the new selection's state.
func (s *Session) Analyze(ctx context.Context) (*AnalysisResult, error) {
	s.mu.Lock()
	switch s.state {
	case StateIdle:
		s.mu.Unlock()
		return nil, ErrNoFileSelected
	case StateAnalyzing:
		s.mu.Unlock()
		return nil, ErrAnalysisRunning
	case StateErrored:
		s.mu.Unlock()
		return nil, ErrErrorPending
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	gen := s.gen
	path, opts := s.path, s.opts
	s.state = StateAnalyzing
	s.result, s.err = nil, nil
	s.mu.Unlock()

	result, err := s.cfg.AnalyzeFile(ctx, path, opts)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != gen {
		// Superseded while running: the outcome belongs to a stale
		// selection. Discard it; the session already reflects the new one.
		return nil, context.Canceled
	}

	s.cancel = nil
	if err != nil {
		s.state = StateErrored
		s.err = err
		return nil, err
	}
	s.state = StateResulted
	s.result = result
	return result, nil
}

// Result returns the last analysis outcome: a result in Resulted, an error
// in Errored, ErrNoFileSelected otherwise.
func (s *Session) Result() (*AnalysisResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateResulted:
		return s.result, nil
	case StateErrored:
		return nil, s.err
	default:
		return nil, ErrNoFileSelected
	}
}

// Close releases the current selection's handle and returns the session to
// Idle. Safe to call multiple times.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropSelectionLocked()
	s.state = StateIdle
	s.path = ""
	return nil
}

// dropSelectionLocked cancels any in-flight analysis, releases the current
// handle exactly once, clears prior outcome, and bumps the generation so a
// stale analysis cannot publish. Caller holds s.mu.
func (s *Session) dropSelectionLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.release != nil {
		s.release()
		s.release = nil
	}
	s.result, s.err = nil, nil
	s.gen++
}
