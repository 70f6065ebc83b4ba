package argv

// backend produces point-in-time snapshots of the current argument
// vector. One implementation per platform family is selected at build
// time by newBackend.
type backend interface {
	init(argc int, argv **byte)
	cleanup()
	args() snapshot
}

var active backend = newBackend()
