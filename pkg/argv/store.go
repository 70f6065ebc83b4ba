package argv

import (
	"sync"
	"sync/atomic"
	"unsafe"
)

// store holds the argument count and vector base pointer recorded by
// Init on backends that capture them at startup. The count and pointer
// update as one unit under the mutex, so no reader can observe a torn
// pair. The zero value is ready to use: the mutex must be lockable at
// program start, independent of any other global initialization, and is
// not reentrant.
type store struct {
	mu    sync.Mutex
	argc  int
	argv  **byte
	epoch atomic.Uint64
}

func (s *store) set(argc int, argv **byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.argc = argc
	s.argv = argv
	s.epoch.Add(1)
}

func (s *store) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.argc = 0
	s.argv = nil
	s.epoch.Add(1)
}

// snapshot copies the current pair out under the lock. It does not read
// any argument memory itself.
func (s *store) snapshot() *rawSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &rawSnapshot{
		argc:  s.argc,
		argv:  s.argv,
		src:   s,
		epoch: s.epoch.Load(),
	}
}

// rawSnapshot is a non-owning view into the loader-provided argument
// memory, valid only while the store still holds the pair it was taken
// from. The epoch check turns use after Cleanup into a panic instead of
// a read of memory this package no longer vouches for.
type rawSnapshot struct {
	argc  int
	argv  **byte
	src   *store
	epoch uint64
}

func (s *rawSnapshot) count() int { return s.argc }

func (s *rawSnapshot) view(i int) []byte {
	if s.src.epoch.Load() != s.epoch {
		panic("argv: argument view used after cleanup")
	}
	p := *(**byte)(unsafe.Add(unsafe.Pointer(s.argv), uintptr(i)*unsafe.Sizeof(s.argv)))
	return cstring(p)
}

// cstring returns the bytes of a NUL-terminated string, excluding the
// terminator, without copying.
func cstring(p *byte) []byte {
	if p == nil {
		return nil
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return unsafe.Slice(p, n)
}
