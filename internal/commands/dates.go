package commands

import (
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout       = time.DateOnly
	dateMinuteLayout = "2006-01-02T15:04"
)

// ParseDate resolves a date argument relative to now. Day-only values land at
// local midnight in now's location; relative forms keep that convention.
func ParseDate(value string, now time.Time) (time.Time, error) {
	raw := strings.TrimSpace(value)
	v := strings.ToLower(raw)
	if v == "" {
		return time.Time{}, invalidArg("date is empty")
	}
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	switch v {
	case "today", "hoy":
		return today, nil
	case "tomorrow", "mañana", "manana":
		return today.AddDate(0, 0, 1), nil
	}

	if strings.HasPrefix(v, "+") {
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(v, "+"), "d"))
		if err != nil || n < 0 {
			return time.Time{}, invalidArg("invalid relative date %q", value)
		}
		return today.AddDate(0, 0, n), nil
	}

	if t, err := time.ParseInLocation(dateLayout, raw, loc); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(dateMinuteLayout, raw, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.In(loc), nil
	}
	return time.Time{}, invalidArg("invalid date %q (use today, tomorrow, +N, YYYY-MM-DD or YYYY-MM-DDTHH:MM)", value)
}

// ResolveID maps an id or unique id prefix onto one of ids.
func ResolveID(prefix string, ids []string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", invalidArg("id is empty")
	}
	var match string
	for _, id := range ids {
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			if match != "" {
				return "", &CommandError{Code: ErrCodeAmbiguousID, Message: "id prefix matches more than one item: " + prefix}
			}
			match = id
		}
	}
	if match == "" {
		return "", &CommandError{Code: ErrCodeNotFound, Message: "no item with id " + prefix}
	}
	return match, nil
}
