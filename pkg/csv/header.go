package csv

// ValidateHeader checks an actual header against an expected ordered
// column list. The contract is exact: same length, same strings, same
// order. No case folding, no reordering tolerance. A nil actual header
// (input had no lines) always fails.
func ValidateHeader(actual, expected []string) error {
	if actual == nil || len(actual) != len(expected) {
		return &HeaderMismatchError{Actual: actual, Expected: expected}
	}
	for i := range expected {
		if actual[i] != expected[i] {
			return &HeaderMismatchError{Actual: actual, Expected: expected}
		}
	}
	return nil
}

// ValidateFirstColumn is the raw-row contract: the header's first
// column must be one of the acceptable labels. This is deliberately a
// distinct check from ValidateHeader, not a special case of it.
func ValidateFirstColumn(actual, labels []string) error {
	if len(actual) == 0 {
		return &HeaderMismatchError{Actual: actual, Expected: labels}
	}
	for _, l := range labels {
		if actual[0] == l {
			return nil
		}
	}
	return &HeaderMismatchError{Actual: actual, Expected: labels}
}

// headerIndex maps header labels to their column positions for
// name-bound fields.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := idx[name]; !ok {
			idx[name] = i
		}
	}
	return idx
}
