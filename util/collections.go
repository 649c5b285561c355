package util

// CloneStringList returns a copy of the given list.
func CloneStringList(listToClone []string) []string {
	var out []string

	return append(out, listToClone...)
}

// CloneStringMap returns a copy of the given map.
func CloneStringMap(mapToClone map[string]string) map[string]string {
	out := map[string]string{}
	for key, value := range mapToClone {
		out[key] = value
	}

	return out
}
