//go:build darwin && !ios

package argv

import (
	"os"

	"golang.org/x/sys/unix"
)

func newBackend() backend { return query{} }

// query asks the kernel for the calling process's saved argument area
// on each call. No state is captured at startup, so init and cleanup
// have nothing to do.
type query struct{}

func (query) init(argc int, argv **byte) {}

func (query) cleanup() {}

func (query) args() snapshot {
	raw, err := unix.SysctlRaw("kern.procargs2", os.Getpid())
	if err != nil {
		// The kernel always answers this query for the calling
		// process; a failure means the contract with the platform is
		// broken and there is nothing sensible to return.
		panic("argv: kern.procargs2 query failed: " + err.Error())
	}
	return parseProcArgs2(raw)
}
