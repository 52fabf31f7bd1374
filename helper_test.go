package wallet

import "time"

// t0 is the reference time of the test histories.
var t0 = time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)

// day returns t0 shifted by n days.
func day(n int) time.Time { return t0.AddDate(0, 0, n) }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// must panics on error, for test setup.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
