package model

import "time"

// Calendar dates in the ledger are plain YYYY-MM-DD strings derived in UTC,
// matching how the persisted records have always been written.

func DateOnly(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// DateOfMillis converts an epoch-millisecond creation stamp to its UTC day.
func DateOfMillis(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(time.DateOnly)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}
