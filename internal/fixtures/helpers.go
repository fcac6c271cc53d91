package fixtures

import (
	"strings"
	"time"
)

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func at(anchor time.Time, d time.Duration) time.Time {
	return anchor.Add(d)
}

func ptr(t time.Time) *time.Time {
	return &t
}

func date(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t, err = time.Parse("2006-01-02", value)
		if err != nil {
			panic("fixtures: bad date " + value)
		}
	}
	return t.UTC()
}

const (
	hour = time.Hour
	day  = 24 * time.Hour
)
