// Package pagination derives the bounded page-number window shown next
// to paginated listings: first page, last page, the current page and its
// neighbours, with ellipsis markers compressing the gaps.
package pagination

import "strconv"

// Ellipsis is the marker entry standing in for a compressed page range.
const Ellipsis = -1

// Entry is either a page number (>= 1) or Ellipsis.
type Entry int

func (e Entry) IsEllipsis() bool { return e == Ellipsis }

func (e Entry) String() string {
	if e == Ellipsis {
		return "…"
	}
	return strconv.Itoa(int(e))
}

// Window returns the pages to display for the given position. The result
// always contains page 1, the last page and the current page, holds at
// most two ellipsis markers, and never exceeds nine entries.
func Window(current, total int) []Entry {
	if total < 1 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	if total <= 7 {
		out := make([]Entry, 0, total)
		for p := 1; p <= total; p++ {
			out = append(out, Entry(p))
		}
		return out
	}

	switch {
	case current <= 4:
		return []Entry{1, 2, 3, 4, 5, Ellipsis, Entry(total)}
	case current >= total-3:
		return []Entry{
			1, Ellipsis,
			Entry(total - 4), Entry(total - 3), Entry(total - 2), Entry(total - 1), Entry(total),
		}
	default:
		return []Entry{
			1, Ellipsis,
			Entry(current - 1), Entry(current), Entry(current + 1),
			Ellipsis, Entry(total),
		}
	}
}
