package domain

import "regexp"

// emailPattern matches local@domain.tld addresses where the suffix is
// at least two letters.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether email has the full local@domain.tld shape.
// Note that User.Validate applies a weaker rule on creation; an account
// can exist whose address fails this check.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidID reports whether v is a usable record identifier: an integer
// strictly greater than zero. Values of any non-integer type are never
// valid, whatever they hold.
func ValidID(v any) bool {
	switch id := v.(type) {
	case int:
		return id > 0
	case int64:
		return id > 0
	default:
		return false
	}
}
