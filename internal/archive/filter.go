package archive

import (
	"fmt"
	"time"
)

// monthLayout is the YYYY-MM format accepted for filter bounds.
const monthLayout = "2006-01"

// Month is a calendar month independent of any time zone.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a YYYY-MM value.
func ParseMonth(value string) (Month, error) {
	t, err := time.Parse(monthLayout, value)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q; use YYYY-MM (e.g. 2023-03)", value)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// String returns the month as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Start returns the first instant of the month in loc.
func (m Month) Start(loc *time.Location) time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)
}

// Next returns the following calendar month.
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// FilterFrom keeps posts created on or after the first instant of start.
func FilterFrom(posts []Post, start Month) []Post {
	result := make([]Post, 0, len(posts))
	for _, post := range posts {
		cutoff := start.Start(post.CreatedAt.Location())
		if !post.CreatedAt.Before(cutoff) {
			result = append(result, post)
		}
	}
	return result
}

// FilterTo keeps posts created before the first instant of the month after end,
// so the whole end month is included.
func FilterTo(posts []Post, end Month) []Post {
	next := end.Next()
	result := make([]Post, 0, len(posts))
	for _, post := range posts {
		cutoff := next.Start(post.CreatedAt.Location())
		if post.CreatedAt.Before(cutoff) {
			result = append(result, post)
		}
	}
	return result
}

// MonthRange is an optional inclusive range of months. Nil bounds are open.
type MonthRange struct {
	From *Month
	To   *Month
}

// ParseMonthRange builds a range from optional YYYY-MM strings.
// Empty strings leave the corresponding bound open.
func ParseMonthRange(from, to string) (MonthRange, error) {
	var rng MonthRange
	if from != "" {
		m, err := ParseMonth(from)
		if err != nil {
			return MonthRange{}, fmt.Errorf("start month: %w", err)
		}
		rng.From = &m
	}
	if to != "" {
		m, err := ParseMonth(to)
		if err != nil {
			return MonthRange{}, fmt.Errorf("end month: %w", err)
		}
		rng.To = &m
	}
	return rng, nil
}

// IsOpen reports whether neither bound is set.
func (r MonthRange) IsOpen() bool {
	return r.From == nil && r.To == nil
}

// Apply filters posts by the set bounds, preserving order.
func (r MonthRange) Apply(posts []Post) []Post {
	if r.From != nil {
		posts = FilterFrom(posts, *r.From)
	}
	if r.To != nil {
		posts = FilterTo(posts, *r.To)
	}
	return posts
}
