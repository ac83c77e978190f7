package menu

// groupFirstSeen partitions items by key. Groups come out in the order their
// key was first met and members keep their input order.
func groupFirstSeen[T any, K comparable](items []T, key func(T) K) ([]K, [][]T) {
	index := make(map[K]int)
	var keys []K
	for _, it := range items {
		k := key(it)
		if _, ok := index[k]; !ok {
			index[k] = len(keys)
			keys = append(keys, k)
		}
	}

	groups := make([][]T, len(keys))
	for _, it := range items {
		i := index[key(it)]
		groups[i] = append(groups[i], it)
	}
	return keys, groups
}
