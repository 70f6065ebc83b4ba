//go:build !linux && !freebsd && !netbsd && !openbsd && !dragonfly && !solaris && !darwin

package argv

import "os"

func newBackend() backend { return stub{} }

// stub serves the vector the Go runtime already materialized, on
// platforms with neither a captured vector nor a system query.
type stub struct{}

func (stub) init(argc int, argv **byte) {}

func (stub) cleanup() {}

func (stub) args() snapshot {
	s := make(listSnapshot, len(os.Args))
	for i, a := range os.Args {
		s[i] = []byte(a)
	}
	return s
}
