package conf

// MergeDefaults flattens maps into a single map of defaults, prefixing
// every key with the ns namespace. Later maps win on duplicate keys.
// An empty ns leaves the keys untouched.
func MergeDefaults[M ~map[string]V, V any](ns string, maps ...M) M {
	size := 0
	for _, m := range maps {
		size += len(m)
	}

	prefix := ""
	if ns != "" {
		prefix = ns + "."
	}

	merged := make(M, size)
	for _, m := range maps {
		for key, val := range m {
			merged[prefix+key] = val
		}
	}

	return merged
}
