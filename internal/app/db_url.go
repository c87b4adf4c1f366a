package app

import (
	"net/url"
	"strings"
)

const preparedBinaryParam = "disable_prepared_binary_result"

// normalizeDBURL turns on lib/pq's disable_prepared_binary_result for URL style DSNs
// unless the URL already sets it. Poolers in transaction mode need it. Key/value DSNs
// pass through untouched.
func normalizeDBURL(raw string, disablePreparedBinary bool) string {
	if !disablePreparedBinary {
		return raw
	}

	parsed, ok := parseDBURL(raw)
	if !ok {
		return raw
	}

	query := parsed.Query()
	if query.Get(preparedBinaryParam) != "" {
		return raw
	}
	query.Set(preparedBinaryParam, "yes")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// redactDBURL masks the password so the DSN can be logged.
func redactDBURL(raw string) string {
	parsed, ok := parseDBURL(raw)
	if !ok {
		return dbNameFromURL(raw)
	}
	return parsed.Redacted()
}

// dbNameFromURL reads the database name from either DSN style.
func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if parsed, ok := parseDBURL(trimmed); ok {
		return strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
	}

	for _, token := range strings.Fields(trimmed) {
		if name, found := strings.CutPrefix(token, "dbname="); found {
			return strings.Trim(strings.TrimSpace(name), `"'`)
		}
	}
	return ""
}

func parseDBURL(raw string) (*url.URL, bool) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return nil, false
	}
	return parsed, true
}
