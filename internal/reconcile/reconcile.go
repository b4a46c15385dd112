// Package reconcile computes the next state of a string collection (mail
// forward destinations, mailbox aliases) from add/remove deltas.
package reconcile

// Apply returns current with every element of add appended (when not
// already present, first-seen order kept). Each element of remove then takes
// out the first matching occurrence only, so a value the remote side
// duplicates loses one copy per removal. changed reports whether the result differs from current by
// membership; callers must skip the remote update when it is false.
//
// current is never modified.
func Apply(current, add, remove []string) (next []string, changed bool) {
	next = make([]string, 0, len(current)+len(add))
	next = append(next, current...)

	for _, item := range add {
		if !contains(next, item) {
			next = append(next, item)
		}
	}

	for _, item := range remove {
		if i := index(next, item); i >= 0 {
			next = append(next[:i], next[i+1:]...)
		}
	}

	return next, !sameMembers(current, next)
}

func contains(items []string, item string) bool {
	return index(items, item) >= 0
}

func index(items []string, item string) int {
	for i, v := range items {
		if v == item {
			return i
		}
	}
	return -1
}

// sameMembers compares a and b by length and then as sets.
func sameMembers(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	return subset(a, b) && subset(b, a)
}

func subset(a, b []string) bool {
	set := make(map[string]struct{}, len(b))
	for _, v := range b {
		set[v] = struct{}{}
	}
	for _, v := range a {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}
