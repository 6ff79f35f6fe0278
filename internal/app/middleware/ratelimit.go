package middleware

import (
	"sync"

	"golang.org/x/time/rate"
	tele "gopkg.in/telebot.v4"
)

// RateLimiter ограничивает частоту обновлений от одного пользователя
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[int64]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewRateLimiter perSecond событий в секунду, burst подряд
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[int64]*rate.Limiter),
		limit:    rate.Limit(perSecond),
		burst:    burst,
	}
}

// Allow true, если пользователь не превысил лимит
func (l *RateLimiter) Allow(userID int64) bool {
	l.mu.Lock()
	lim, ok := l.limiters[userID]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[userID] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}

// Middleware отбрасывает обновления сверх лимита; onLimited вызывается для ответа пользователю
func (l *RateLimiter) Middleware(onLimited func(tele.Context) error) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if u := c.Sender(); u != nil && !l.Allow(u.ID) {
				if onLimited != nil {
					return onLimited(c)
				}
				return nil
			}
			return next(c)
		}
	}
}
