package token_bucket

import (
	"sync"
	"time"
)

// Registry хранит корзины по ключам и выбрасывает те, к которым давно
// не обращались.
type Registry struct {
	capacity float64
	rate     float64
	idleTTL  time.Duration

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
	now       func() time.Time
}

// NewRegistry: burst токенов в корзине, rate токенов в секунду.
func NewRegistry(burst int, rate float64, idleTTL time.Duration) *Registry {
	return &Registry{
		capacity: float64(burst),
		rate:     rate,
		idleTTL:  idleTTL,
		buckets:  make(map[string]*bucket),
		now:      time.Now,
	}
}

// Allow списывает токен у ключа. Если токенов нет, вторым значением
// возвращается, через сколько стоит повторить запрос.
func (r *Registry) Allow(key string) (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	b, ok := r.buckets[key]
	if !ok {
		b = &bucket{tokens: r.capacity, updated: now}
		r.buckets[key] = b
	}
	allowed, wait := b.take(now, r.capacity, r.rate)
	r.sweep(now)
	return allowed, wait
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.buckets)
}

func (r *Registry) sweep(now time.Time) {
	if r.idleTTL <= 0 || now.Sub(r.lastSweep) < r.idleTTL {
		return
	}
	for key, b := range r.buckets {
		if now.Sub(b.lastSeen) > r.idleTTL {
			delete(r.buckets, key)
		}
	}
	r.lastSweep = now
}
