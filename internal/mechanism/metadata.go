package mechanism

// Metadata maps property names to values. Keys are unique; the last write wins.
type Metadata map[string]string

// Get returns the value stored under name.
func (md Metadata) Get(name string) (string, bool) {
	v, ok := md[name]
	return v, ok
}

func (md Metadata) clone() Metadata {
	out := make(Metadata, len(md))
	for k, v := range md {
		out[k] = v
	}
	return out
}
