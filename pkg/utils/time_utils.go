package utils

import "time"

// Trip dates are stored as unix seconds (see db_models.BaseModel); these
// helpers keep the conversion in one place.

func NowUnixSeconds() int64 { return time.Now().Unix() }

func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).UTC()
}

// ParseDate accepts RFC3339 or a bare YYYY-MM-DD date (midnight UTC).
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
