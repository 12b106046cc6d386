// Package token_bucket лимитирует запросы корзиной токенов, отдельной
// на каждый ключ (пользователь или адрес клиента).
package token_bucket

import (
	"math"
	"time"
)

// bucket не потокобезопасен, все вызовы идут под мьютексом Registry.
type bucket struct {
	tokens   float64
	updated  time.Time
	lastSeen time.Time
}

// take пополняет корзину на момент now и пытается списать токен.
// При отказе возвращает время до появления следующего токена.
func (b *bucket) take(now time.Time, capacity, rate float64) (bool, time.Duration) {
	if elapsed := now.Sub(b.updated).Seconds(); elapsed > 0 {
		b.tokens = math.Min(capacity, b.tokens+elapsed*rate)
		b.updated = now
	}
	b.lastSeen = now

	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}
	if rate <= 0 {
		return false, time.Duration(math.MaxInt64)
	}
	wait := time.Duration((1 - b.tokens) / rate * float64(time.Second))
	return false, wait
}
