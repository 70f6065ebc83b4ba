package argv

// CVector is a C-convention argument vector built from Go strings:
// NUL-terminated arguments, a NULL pointer after the last entry. It
// backs [Init] for embedders whose runtime receives the arguments as Go
// strings rather than raw loader memory. The vector memory is valid as
// long as the CVector itself is kept reachable.
type CVector struct {
	ptrs []*byte
	buf  []byte
}

func NewCVector(args []string) *CVector {
	n := 0
	for _, a := range args {
		n += len(a) + 1
	}
	v := &CVector{
		ptrs: make([]*byte, 0, len(args)+1),
		buf:  make([]byte, 0, n),
	}
	for _, a := range args {
		off := len(v.buf)
		v.buf = append(v.buf, a...)
		v.buf = append(v.buf, 0)
		v.ptrs = append(v.ptrs, &v.buf[off])
	}
	v.ptrs = append(v.ptrs, nil)
	return v
}

// Argc returns the argument count.
func (v *CVector) Argc() int { return len(v.ptrs) - 1 }

// Argv returns the base pointer of the vector.
func (v *CVector) Argv() **byte { return &v.ptrs[0] }
