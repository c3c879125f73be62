package fitbit

import "sort"

// Flatten expands a tree of map[string]any into dotted-path keys.
//
// Nested map keys are joined as "parent.child". Sequences and scalars are
// leaves and are kept as values. Empty maps contribute no keys, and a root
// that is not a map flattens to an empty result.
func Flatten(value any) map[string]any {
	out := make(map[string]any)
	m, ok := value.(map[string]any)
	if !ok {
		return out
	}
	for k, v := range m {
		flattenInto(out, k, v)
	}
	return out
}

func flattenInto(out map[string]any, key string, value any) {
	m, ok := value.(map[string]any)
	if !ok {
		out[key] = value
		return
	}
	for k, v := range m {
		flattenInto(out, key+"."+k, v)
	}
}

// FlattenKeys returns the keys of a flattened map in sorted order.
func FlattenKeys(flat map[string]any) []string {
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
