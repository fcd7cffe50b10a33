package connector

import "github.com/linkgrammar-go/lgcore/internal/strpool"

// Mate decides whether connector a, belonging to word aWord, can link to
// connector b, belonging to word bWord, and returns the link's
// intersection name on success. The two connectors must point at each
// other (a.Direction == Right, b.Direction == Left, aWord < bWord, or the
// mirror image) and their span must not exceed either connector's length
// limit.
func Mate(pool *strpool.Pool, a Connector, aWord int, b Connector, bWord int) (bool, string) {
	// leftConn belongs to the word with the smaller index and points
	// right (+); rightConn belongs to the word with the larger index and
	// points left (-). MatchNames takes the left-pointing connector's name
	// as its "s" argument and the right-pointing one as "t".
	var leftConn, rightConn Connector
	var lw, rw int

	switch {
	case a.Direction == Right && b.Direction == Left && aWord < bWord:
		leftConn, rightConn, lw, rw = a, b, aWord, bWord
	case a.Direction == Left && b.Direction == Right && bWord < aWord:
		leftConn, rightConn, lw, rw = b, a, bWord, aWord
	default:
		return false, ""
	}

	span := rw - lw
	if leftConn.LengthLimit != Unbounded && span > leftConn.LengthLimit {
		return false, ""
	}
	if rightConn.LengthLimit != Unbounded && span > rightConn.LengthLimit {
		return false, ""
	}

	return MatchNames(pool.String(rightConn.Name), pool.String(leftConn.Name))
}
