package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"eletrigo/models"
)

// DefaultTTL matches the auto-dismiss window of the dashboards' toasts.
const DefaultTTL = 5 * time.Second

// DefaultFeedCap bounds each user's feed; the oldest entry is dropped first.
const DefaultFeedCap = 50

// MemoryEmitter keeps per-user notification feeds in memory.
type MemoryEmitter struct {
	TTL     time.Duration
	FeedCap int
	Now     func() time.Time

	mu    sync.Mutex
	feeds map[string][]models.Notification
}

func NewMemoryEmitter(ttl time.Duration, feedCap int) *MemoryEmitter {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if feedCap <= 0 {
		feedCap = DefaultFeedCap
	}
	return &MemoryEmitter{
		TTL:     ttl,
		FeedCap: feedCap,
		feeds:   make(map[string][]models.Notification),
	}
}

func (e *MemoryEmitter) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *MemoryEmitter) Push(userID, message string) models.Notification {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	n := models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(e.TTL),
	}
	feed := append(e.feeds[userID], n)
	if len(feed) > e.FeedCap {
		feed = feed[len(feed)-e.FeedCap:]
	}
	e.feeds[userID] = feed
	return n
}

func (e *MemoryEmitter) Feed(userID string) []models.Notification {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	var out []models.Notification
	for _, n := range e.feeds[userID] {
		if n.ExpiresAt.After(now) {
			out = append(out, n)
		}
	}
	return out
}

func (e *MemoryEmitter) Dismiss(userID, id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	feed := e.feeds[userID]
	for i, n := range feed {
		if n.ID == id {
			e.feeds[userID] = append(feed[:i:i], feed[i+1:]...)
			return true
		}
	}
	return false
}

func (e *MemoryEmitter) Sweep() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	removed := 0
	for userID, feed := range e.feeds {
		kept := feed[:0]
		for _, n := range feed {
			if n.ExpiresAt.After(now) {
				kept = append(kept, n)
			} else {
				removed++
			}
		}
		if len(kept) == 0 {
			delete(e.feeds, userID)
		} else {
			e.feeds[userID] = kept
		}
	}
	return removed
}
