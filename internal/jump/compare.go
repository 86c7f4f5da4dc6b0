package jump

import "cmp"

// Compare orders jumps by performance: distance first, judged points on equal
// distance. It returns a negative number when a ranks below b, zero when they
// rank equally and a positive number when a ranks above b.
func Compare(a, b *Jump) int {
	if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
		return c
	}
	return cmp.Compare(a.Points, b.Points)
}

// Better reports whether a ranks strictly above b.
func Better(a, b *Jump) bool {
	return Compare(a, b) > 0
}
