package taggedmap

// Entry is a single key-value association produced and consumed by the
// list conversions. ToList yields entries with tagged keys
// (Entry[tagged.Value[Tag, K], V]); the untagged conversions use the bare
// key type (Entry[K, V]).
type Entry[K any, V any] struct {
	Key   K
	Value V
}
