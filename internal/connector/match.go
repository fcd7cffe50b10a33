package connector

// MismatchMeet is the sentinel meet character never reached on a
// successful match — it only appears if a caller asks for the meet of
// two names that do not in fact match.
const MismatchMeet = '^'

// upperPrefixLen returns the length of the leading run of ASCII uppercase
// letters in s.
func upperPrefixLen(s string) int {
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	return i
}

// UpperPrefix returns the leading run of ASCII uppercase letters in s,
// the key the fast-match index buckets connectors under.
func UpperPrefix(s string) string {
	return s[:upperPrefixLen(s)]
}

// MatchNames implements connector name matching and the meet rule:
// uppercase prefixes must be equal up to the shorter prefix, and
// every remaining position must be equal or carry a '*' wildcard on one
// side, with the shorter string padded by wildcard on s's side and by a
// non-matching blank on t's side. It returns the intersection name when
// the names match.
func MatchNames(s, t string) (bool, string) {
	us, ut := upperPrefixLen(s), upperPrefixLen(t)
	m := us
	if ut < m {
		m = ut
	}
	for i := 0; i < m; i++ {
		if s[i] != t[i] {
			return false, ""
		}
	}

	maxLen := len(s)
	if len(t) > maxLen {
		maxLen = len(t)
	}

	meet := make([]byte, 0, maxLen)
	meet = append(meet, s[:m]...)

	for i := m; i < maxLen; i++ {
		sHas := i < len(s)
		tHas := i < len(t)

		var sc byte = '*'
		if sHas {
			sc = s[i]
		}
		var tc byte // zero value: non-matching blank when t has run out
		if tHas {
			tc = t[i]
		}

		switch {
		case sc == tc:
			meet = append(meet, sc)
		case sc == '*':
			meet = append(meet, tc)
		case tc == '*':
			meet = append(meet, sc)
		default:
			return false, string(MismatchMeet)
		}
	}

	return true, string(meet)
}

// Match reports whether connector names s (direction Left from its owner)
// and t (direction Right from its owner) mate, and returns the link name
// that results (the meet of their names).
func Match(s, t string) (bool, string) {
	return MatchNames(s, t)
}
