package notifier

import (
	"fmt"
	"math"
	"strings"
)

// FormatINR renders an amount with Indian digit grouping: the last three
// digits form one group and the rest pair up, e.g. 1234567.5 becomes
// "12,34,567.50". Whole amounts drop the decimals.
func FormatINR(amount float64) string {
	neg := amount < 0

	// Round to paise first so a fraction like .999 carries into the whole
	// rupees instead of printing as a third decimal digit.
	paise := int64(math.Round(math.Abs(amount) * 100))
	whole := paise / 100
	frac := paise % 100

	out := groupIndian(fmt.Sprintf("%d", whole))
	if frac > 0 {
		out = fmt.Sprintf("%s.%02d", out, frac)
	}
	if neg {
		out = "-" + out
	}
	return out
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(groups, ",") + "," + tail
}
