package parser

// Record is one decoded block of "Key = Value" lines. Keys keep the order in
// which they were first seen; a repeated key overwrites the earlier value.
type Record struct {
	keys   []string
	fields map[string]string

	// Raw holds the source lines that produced the fields, in order.
	Raw []string
}

func newRecord() *Record {
	return &Record{fields: make(map[string]string)}
}

// NewRecord builds a record from alternating key/value pairs. It is mostly
// useful for feeding the decoders without going through a listing.
func NewRecord(pairs ...string) *Record {
	r := newRecord()
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Set(pairs[i], pairs[i+1])
	}
	return r
}

// Set stores value under key.
func (r *Record) Set(key, value string) {
	if r.fields == nil {
		r.fields = make(map[string]string)
	}
	if _, exists := r.fields[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.fields[key] = value
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (string, bool) {
	v, ok := r.fields[key]
	return v, ok
}

// Keys returns the field names in first-seen order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len is the number of distinct fields.
func (r *Record) Len() int {
	return len(r.keys)
}

// Each calls fn for every field in first-seen order.
func (r *Record) Each(fn func(key, value string)) {
	for _, k := range r.keys {
		fn(k, r.fields[k])
	}
}
