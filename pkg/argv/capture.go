package argv

import "log/slog"

// captured records argc/argv from the startup caller into a guarded
// process-wide store and serves snapshots out of it. Used on platforms
// where the loader hands the vector to the runtime entry point and
// provides no way to query it again later.
type captured struct {
	store store
}

func (b *captured) init(argc int, argv **byte) {
	b.store.set(argc, argv)
	slog.Debug("captured argument vector", "argc", argc)
}

func (b *captured) cleanup() {
	b.store.clear()
}

func (b *captured) args() snapshot {
	return b.store.snapshot()
}
