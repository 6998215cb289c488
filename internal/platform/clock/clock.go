// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package clock supplies the current time to components that compute ages,
// so tests can pin "now" instead of reading the process clock.
package clock

import "time"

// Clock reports the current instant.
type Clock interface {
	Now() time.Time
}

// System reads the process clock.
type System struct{}

// Now implements [Clock].
func (System) Now() time.Time { return time.Now() }

// Fixed always reports the same instant.
type Fixed time.Time

// Now implements [Clock].
func (f Fixed) Now() time.Time { return time.Time(f) }

// Year returns a [Fixed] clock set to the first instant of the given year (UTC).
func Year(year int) Fixed {
	return Fixed(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
}

// CurrentYear returns the calendar year reported by c.
func CurrentYear(c Clock) int {
	return c.Now().Year()
}
