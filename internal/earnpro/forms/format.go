package forms

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Minimum amounts accepted by the deposit and withdrawal forms.
const (
	MinDeposit    = 10.0
	MinWithdrawal = 10.0
)

// FormatCurrency renders a USD amount with grouping: 1234.5 -> "$1,234.50".
// Negative amounts render as "-$1,234.50".
func FormatCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "$" + b.String() + frac
}

// FormatDate renders a timestamp the way transaction lists show it:
// "Jan 2, 2006, 03:04 PM". Zero times render as a dash.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Local().Format("Jan 2, 2006, 03:04 PM")
}

// ParseAmount parses a user-entered currency amount. Rejects empty input
// and non-numeric text with a field-level error message.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return 0, fmt.Errorf("amount is required")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("enter a valid amount")
	}
	return v, nil
}
