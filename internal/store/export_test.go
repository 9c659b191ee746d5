package store

import "time"

// SetClock overrides the timestamp source. Compiled only with the
// tests; production stores keep time.Now.
func (s *SQLiteStore) SetClock(now func() time.Time) {
	s.now = now
}
