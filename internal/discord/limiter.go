package discord

import (
	"sync"

	"golang.org/x/time/rate"
)

// userLimiter throttles classic invocations per user so one chatter cannot
// flood the bot. Interactions are already throttled by the platform.
type userLimiter struct {
	mu    sync.Mutex
	users map[string]*rate.Limiter

	limit rate.Limit
	burst int
}

func newUserLimiter(limit rate.Limit, burst int) *userLimiter {
	return &userLimiter{
		users: make(map[string]*rate.Limiter),
		limit: limit,
		burst: burst,
	}
}

func (l *userLimiter) Allow(userID string) bool {
	l.mu.Lock()
	lim, ok := l.users[userID]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.users[userID] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}
