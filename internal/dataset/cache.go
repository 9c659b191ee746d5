package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/gomi-quiz/backend/internal/domain/dictionary"
)

// ErrSourceUnavailable reports a dictionary file that is missing at load
// time.
var ErrSourceUnavailable = errors.New("dictionary source unavailable")

// DefaultTTL is how long a loaded snapshot stays fresh.
const DefaultTTL = 10 * time.Minute

// Cache memoizes the parsed dictionary for a fixed TTL and re-reads the
// source file once the snapshot goes stale. The snapshot is replaced
// wholesale under the mutex, so no caller ever observes a dataset
// mid-construction. A failed reload leaves the previous snapshot intact
// and only surfaces the error to the triggering caller; the next call
// retries naturally.
type Cache struct {
	path string
	ttl  time.Duration

	// Injected for tests; time.Now and os.ReadFile in production.
	now  func() time.Time
	read func(string) ([]byte, error)

	mu        sync.Mutex
	snapshot  []dictionary.Record
	fetchedAt time.Time
}

// New creates a cache over the CSV file at path. A non-positive ttl
// falls back to DefaultTTL.
func New(path string, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		path: path,
		ttl:  ttl,
		now:  time.Now,
		read: os.ReadFile,
	}
}

// Get returns the current snapshot, reloading from disk when stale.
// Callers must treat the returned slice as read-only.
func (c *Cache) Get() ([]dictionary.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	// Freshness is keyed on the load time, not the snapshot contents: a
	// header-only source legitimately parses to zero records and must
	// still be memoized for the full TTL.
	if !c.fetchedAt.IsZero() && now.Sub(c.fetchedAt) < c.ttl {
		return c.snapshot, nil
	}

	raw, err := c.read(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceUnavailable, c.path)
		}
		return nil, fmt.Errorf("read dictionary: %w", err)
	}

	text, err := decodeText(raw)
	if err != nil {
		return nil, err
	}

	records, err := dictionary.Parse(text)
	if err != nil {
		return nil, err
	}

	c.snapshot = records
	c.fetchedAt = now
	return c.snapshot, nil
}

// decodeText decodes the source bytes as UTF-8, stripping a leading
// byte-order mark when present. Validity is checked on the raw bytes:
// the x/text decoder substitutes replacement runes instead of failing,
// and a silently scrubbed dictionary is worse than a hard error.
func decodeText(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: source is not valid UTF-8", dictionary.ErrFormat)
	}
	stripped, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", dictionary.ErrFormat, err)
	}
	return string(stripped), nil
}
