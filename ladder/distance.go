package ladder

// Distance returns the number of positions in which a and b differ,
// stopping as soon as a second mismatch is found. Only "0", "1" and
// "more than 1" are meaningful: a return value of 2 means at least 2.
//
// a and b are expected to have the same length; only the common
// prefix is compared otherwise.
//
// Complexity: O(position of the 2nd mismatch).
func Distance(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	count := 0
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			count++
			if count > 1 {
				return count
			}
		}
	}
	return count
}

// Adjacent reports whether a and b differ in exactly one position.
func Adjacent(a, b string) bool {
	return len(a) == len(b) && Distance(a, b) == 1
}
