package argv

// snapshot is a point-in-time view of the argument vector, from which
// iterators are constructed.
type snapshot interface {
	count() int
	// view returns the bytes of argument i without copying. Callers
	// must not mutate the returned slice.
	view(i int) []byte
}

// listSnapshot is an eagerly materialized vector, used by backends that
// own their argument data.
type listSnapshot [][]byte

func (s listSnapshot) count() int        { return len(s) }
func (s listSnapshot) view(i int) []byte { return s[i] }
