// Package reconcile merges a persisted settings list with a freshly
// discovered set of keys while preserving user edits to surviving entries.
package reconcile

// Merge returns persisted entries whose key is still discovered, in their
// persisted order, followed by a new entry for every discovered key that no
// survivor carries, in discovered order. Each missing key is appended once
// even when discovered repeats it. When persisted repeats a key only the first
// entry survives.
//
// Merge does not modify persisted; the caller decides when to store the result.
func Merge[E any, K comparable](persisted []E, discovered []K, key func(E) K, build func(K) E) []E {
	wanted := make(map[K]struct{}, len(discovered))
	for _, k := range discovered {
		wanted[k] = struct{}{}
	}

	result := make([]E, 0, len(discovered))
	present := make(map[K]struct{}, len(persisted))
	for _, entry := range persisted {
		k := key(entry)
		if _, ok := wanted[k]; !ok {
			continue
		}
		if _, ok := present[k]; ok {
			continue
		}
		result = append(result, entry)
		present[k] = struct{}{}
	}

	for _, k := range discovered {
		if _, ok := present[k]; ok {
			continue
		}
		result = append(result, build(k))
		present[k] = struct{}{}
	}
	return result
}

// Dropped reports the keys of persisted entries that Merge would discard.
func Dropped[E any, K comparable](persisted []E, discovered []K, key func(E) K) []K {
	wanted := make(map[K]struct{}, len(discovered))
	for _, k := range discovered {
		wanted[k] = struct{}{}
	}
	var dropped []K
	for _, entry := range persisted {
		if k := key(entry); !hasKey(wanted, k) {
			dropped = append(dropped, k)
		}
	}
	return dropped
}

func hasKey[K comparable](set map[K]struct{}, k K) bool {
	_, ok := set[k]
	return ok
}
