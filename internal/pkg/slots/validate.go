package slots

import (
	"regexp"
	"trimline-service/internal/pkg/constvars"
)

var (
	dayPattern  = regexp.MustCompile(constvars.RegexDayYYYYMMDD)
	timePattern = regexp.MustCompile(constvars.RegexTimeHHMM)
)

// IsValidDay reports whether s is a well-formed YYYY-MM-DD key. The textual
// form is load-bearing: it makes lexicographic order equal chronological
// order everywhere the store sorts day keys.
func IsValidDay(s string) bool {
	return dayPattern.MatchString(s)
}

// IsValidTime reports whether s is a well-formed HH:MM key.
func IsValidTime(s string) bool {
	return timePattern.MatchString(s)
}
