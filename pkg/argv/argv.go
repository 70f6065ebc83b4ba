// Package argv provides access to the process's command-line arguments
// as an ordered, double-ended sequence of raw byte strings, independent
// of how the operating system makes them available.
//
// On some platforms the vector is recorded during runtime startup via
// [Init]; on others it is queried from the system when [Args] is
// called. Arguments are raw bytes and are not guaranteed to be valid
// UTF-8 on every platform.
package argv

// Init records the argument count and vector base pointer for later
// retrieval, on platforms that capture them at startup; elsewhere it is
// a no-op. It must be called at most once, by the process startup path,
// before any concurrent use of this package. That is a documented
// precondition, not a checked one.
func Init(argc int, argv **byte) {
	active.init(argc, argv)
}

// Cleanup clears the captured vector during process shutdown. It is
// called at most once. Borrowed views obtained before Cleanup must not
// be used afterwards.
func Cleanup() {
	active.cleanup()
}

// Args returns a fresh iterator over a snapshot of the current argument
// vector, including the program name at index 0. Args is safe to call
// from any goroutine; the returned iterator is not.
func Args() *Iter {
	return newIter(active.args())
}
