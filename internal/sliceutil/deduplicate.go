// Package sliceutil provides generic slice manipulation helpers.
package sliceutil

// Deduplicate removes duplicates while preserving first-seen order.
// The keyFunc extracts the comparison key from each item.
//
// Example:
//
//	tags := []string{"ml", "ml", "nlp"}
//	unique := sliceutil.Deduplicate(tags, func(t string) string { return t })
//	// Result: ["ml", "nlp"]
func Deduplicate[T any, K comparable](items []T, keyFunc func(T) K) []T {
	if len(items) == 0 {
		return items
	}

	seen := make(map[K]bool, len(items))
	result := make([]T, 0, len(items))

	for _, item := range items {
		key := keyFunc(item)
		if !seen[key] {
			seen[key] = true
			result = append(result, item)
		}
	}

	return result
}
