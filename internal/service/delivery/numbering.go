package delivery

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
)

const (
	numberMin      = 10_000_000
	numberMax      = 99_999_999
	numberAttempts = 5

	itemStep = 10
)

func randomNumber() string {
	return strconv.Itoa(numberMin + rand.IntN(numberMax-numberMin+1))
}

// FormatItemNumber 10 -> "010".
func FormatItemNumber(n int) string {
	return fmt.Sprintf("%03d", n)
}

// nextItemNumber номер для новой строки: последний + 10.
func nextItemNumber(items []string) string {
	if len(items) == 0 {
		return FormatItemNumber(itemStep)
	}
	last, err := strconv.Atoi(items[len(items)-1])
	if err != nil {
		return FormatItemNumber((len(items) + 1) * itemStep)
	}
	return FormatItemNumber(last + itemStep)
}

// allocateNumber подбирает свободный восьмизначный номер LO.
func (s *Service) allocateNumber(ctx context.Context) (string, error) {
	for range numberAttempts {
		number := s.newNumber()

		exists, err := s.repository.DeliveryNumberExists(ctx, number)
		if err != nil {
			return "", fmt.Errorf("check loading order number: %w", err)
		}
		if !exists {
			return number, nil
		}
	}
	return "", ErrNumberExhausted
}
