package catalog

import "errors"

// Status is the observable state of catalog loading
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Store holds the most recently applied load result.
//
// Loads are numbered by Begin. A completion is applied only if no load with
// a higher number has been applied already, so a slow initial load never
// overwrites a faster retry. The store is owned by a single update loop and
// is not safe for concurrent use.
type Store struct {
	catalog Catalog
	err     *LoadError
	empty   bool
	status  Status

	issued  uint64
	applied uint64
	closed  bool
}

// NewStore returns an empty, idle store
func NewStore() *Store {
	return &Store{catalog: Catalog{}}
}

// Begin registers a new load and returns its sequence number
func (s *Store) Begin() uint64 {
	s.issued++
	if !s.closed {
		s.status = StatusLoading
	}
	return s.issued
}

// Complete applies the result of load seq. It reports whether the result
// was applied; stale results and results arriving after Close are dropped.
func (s *Store) Complete(seq uint64, c Catalog, err error) bool {
	if s.closed || seq <= s.applied || seq > s.issued {
		return false
	}
	s.applied = seq

	if err != nil {
		var le *LoadError
		if !errors.As(err, &le) {
			le = &LoadError{Message: FetchFailedMessage, Err: err}
		}
		s.err = le
		s.settle(StatusFailed)
		return true
	}

	if c == nil {
		c = Catalog{}
	}
	s.catalog = c
	s.err = nil
	s.empty = len(c) == 0
	s.settle(StatusReady)
	return true
}

// settle sets the final status unless a newer load is still outstanding
func (s *Store) settle(st Status) {
	if s.applied == s.issued {
		s.status = st
		return
	}
	s.status = StatusLoading
}

// Close drops any completion that arrives afterwards
func (s *Store) Close() { s.closed = true }

// Closed reports whether Close has been called
func (s *Store) Closed() bool { return s.closed }

func (s *Store) Status() Status { return s.status }
func (s *Store) Catalog() Catalog { return s.catalog }

// Err returns the error of the last applied load, or nil
func (s *Store) Err() *LoadError { return s.err }

// EmptyResult reports that the last successful load returned zero tokens
func (s *Store) EmptyResult() bool { return s.empty }

// Filtered projects the current catalog through Filter
func (s *Store) Filtered(query string) Catalog {
	return Filter(s.catalog, query)
}
