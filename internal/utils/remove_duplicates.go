package utils

// RemoveDuplicates returns a new slice containing only the unique elements
// of the input slice. Elements keep the order of their first occurrence.
func RemoveDuplicates[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	var unique []T
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			unique = append(unique, item)
		}
	}
	return unique
}
