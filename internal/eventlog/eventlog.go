// Package eventlog работает с append-only журналами, где текущее
// состояние сущности - последнее событие её потока.
package eventlog

import (
	"slices"
	"strings"
)

// Event событие журнала. Supersedes сообщает, что событие новее other
// внутри одного потока.
type Event[E any] interface {
	StreamKey() string
	Supersedes(other E) bool
}

// Log плоский список событий разных потоков в произвольном порядке.
type Log[E Event[E]] []E

// ProjectLatest оставляет по одному, самому новому, событию на поток.
// Потоки идут в порядке первого появления ключа. Функция идемпотентна:
// ProjectLatest(ProjectLatest(h)) == ProjectLatest(h).
func ProjectLatest[E Event[E]](events []E) []E {
	index := make(map[string]int, len(events))
	out := make([]E, 0, len(events))

	for _, e := range events {
		key := e.StreamKey()
		i, ok := index[key]
		if !ok {
			index[key] = len(out)
			out = append(out, e)
			continue
		}
		if e.Supersedes(out[i]) {
			out[i] = e
		}
	}
	return out
}

func (l Log[E]) Latest() []E {
	return ProjectLatest(l)
}

// Stream события одного потока от старых к новым.
func (l Log[E]) Stream(key string) Log[E] {
	out := make(Log[E], 0)
	for _, e := range l {
		if e.StreamKey() == key {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, chronological[E])
	return out
}

// Current последнее событие потока.
func (l Log[E]) Current(key string) (E, bool) {
	var (
		current E
		found   bool
	)
	for _, e := range l {
		if e.StreamKey() != key {
			continue
		}
		if !found || e.Supersedes(current) {
			current = e
			found = true
		}
	}
	return current, found
}

func chronological[E Event[E]](a, b E) int {
	switch {
	case b.Supersedes(a):
		return -1
	case a.Supersedes(b):
		return 1
	default:
		return 0
	}
}

// Search регистронезависимый поиск подстроки по выбранным полям.
// Пустой запрос возвращает список без изменений.
func Search[T any](items []T, term string, fields func(T) []string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), term) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
