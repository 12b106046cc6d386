package dispatch

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	NumberPrefix = "ML-"
	numberDigits = 7
	lineStep     = 10
)

// NextDispatchNumber следующий последовательный номер после last.
// Пустой last означает, что документов ещё нет.
func NextDispatchNumber(last string) (string, error) {
	if last == "" {
		return formatNumber(1), nil
	}

	suffix, ok := strings.CutPrefix(strings.ToUpper(last), NumberPrefix)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidNumber, last)
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidNumber, last)
	}
	return formatNumber(n + 1), nil
}

func formatNumber(n int) string {
	return fmt.Sprintf("%s%0*d", NumberPrefix, numberDigits, n)
}

// FormatLineNumber 10 -> "010".
func FormatLineNumber(n int) string {
	return fmt.Sprintf("%03d", n)
}

// NextLineNumber номер для новой строки: последний + 10. Если последний
// номер не число, берётся позиция строки.
func NextLineNumber(lines []string) string {
	if len(lines) == 0 {
		return FormatLineNumber(lineStep)
	}
	last, err := strconv.Atoi(strings.TrimSpace(lines[len(lines)-1]))
	if err != nil {
		return FormatLineNumber((len(lines) + 1) * lineStep)
	}
	return FormatLineNumber(last + lineStep)
}
