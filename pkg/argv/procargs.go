package argv

import (
	"bytes"
	"encoding/binary"
)

// parseProcArgs2 decodes a KERN_PROCARGS2 buffer: a native-endian int32
// argument count, the saved exec path, NUL padding, then the argument
// strings, each NUL-terminated. Anything after the last argument
// (environment strings) is ignored. The returned snapshot aliases raw,
// which the caller hands over.
func parseProcArgs2(raw []byte) snapshot {
	if len(raw) < 4 {
		panic("argv: short kern.procargs2 buffer")
	}
	argc := int(binary.NativeEndian.Uint32(raw))
	buf := raw[4:]
	pathEnd := bytes.IndexByte(buf, 0)
	if pathEnd < 0 {
		panic("argv: malformed kern.procargs2 buffer")
	}
	buf = buf[pathEnd:]
	for len(buf) > 0 && buf[0] == 0 {
		buf = buf[1:]
	}
	args := make(listSnapshot, 0, argc)
	for len(args) < argc && len(buf) > 0 {
		end := bytes.IndexByte(buf, 0)
		if end < 0 {
			end = len(buf)
		}
		args = append(args, buf[:end])
		if end == len(buf) {
			break
		}
		buf = buf[end+1:]
	}
	return args
}
