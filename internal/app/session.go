package app

import "batchrename/internal/domain"

// Session owns the mutable state of one pipeline invocation: the sequence
// counters and the records collected so far.
type Session struct {
	scope    domain.SequenceScope
	counters map[string]int
	records  []domain.RenameRecord
	skips    []domain.SkipRecord
}

func NewSession(scope domain.SequenceScope) *Session {
	if scope == "" {
		scope = domain.ScopeRun
	}
	return &Session{scope: scope, counters: map[string]int{}}
}

// Next returns the next sequence number for a file living in dir.
func (s *Session) Next(dir string) int {
	key := ""
	if s.scope == domain.ScopeDirectory {
		key = dir
	}
	s.counters[key]++
	return s.counters[key]
}

func (s *Session) Record(record domain.RenameRecord) {
	s.records = append(s.records, record)
}

func (s *Session) Skip(skip domain.SkipRecord) {
	s.skips = append(s.skips, skip)
}

func (s *Session) Records() []domain.RenameRecord {
	return append([]domain.RenameRecord(nil), s.records...)
}

func (s *Session) Skips() []domain.SkipRecord {
	return append([]domain.SkipRecord(nil), s.skips...)
}
