package dataset

import "time"

// Test hooks: compiled only with the tests, so production callers keep
// getting time.Now and os.ReadFile.

func (c *Cache) SetClock(now func() time.Time) {
	c.now = now
}

func (c *Cache) SetReader(read func(string) ([]byte, error)) {
	c.read = read
}
