package discovery

import (
	"sync"
	"time"
)

// maxNotices is the number of pending notices kept per user, older ones are dropped
const maxNotices = 20

// NoticeLevel is the severity of a notice
type NoticeLevel string

// notice levels
const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is a lightweight user-facing message about background work
type Notice struct {
	Level       NoticeLevel `json:"level"`
	Message     string      `json:"message"`
	Description string      `json:"description,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// NoticeBoard keeps pending notices per user in memory. Anonymous notices go to the empty user id.
type NoticeBoard struct {
	mu      sync.Mutex
	notices map[string][]Notice
	now     func() time.Time
}

// NewNoticeBoard makes an empty notice board
func NewNoticeBoard() *NoticeBoard {
	return &NoticeBoard{notices: map[string][]Notice{}, now: time.Now}
}

// Add appends a notice for the user. Does nothing on nil board.
func (b *NoticeBoard) Add(userID string, n Notice) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = b.now()
	}
	list := append(b.notices[userID], n)
	if len(list) > maxNotices {
		list = list[len(list)-maxNotices:]
	}
	b.notices[userID] = list
}

// Drain returns and removes all pending notices for the user, oldest first
func (b *NoticeBoard) Drain(userID string) []Notice {
	if b == nil {
		return []Notice{}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	list := b.notices[userID]
	delete(b.notices, userID)
	if list == nil {
		return []Notice{}
	}
	return list
}

// Pending returns the number of notices waiting for the user
func (b *NoticeBoard) Pending(userID string) int {
	if b == nil {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.notices[userID])
}
