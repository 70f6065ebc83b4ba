package argv

import (
	"encoding/binary"
	"testing"

	"gotest.tools/v3/assert"
)

func procArgs2Buffer(argc uint32, execPath string, rest ...string) []byte {
	buf := binary.NativeEndian.AppendUint32(nil, argc)
	buf = append(buf, execPath...)
	// The kernel pads the exec path with a variable number of NULs.
	buf = append(buf, 0, 0, 0)
	for _, s := range rest {
		buf = append(buf, s...)
		buf = append(buf, 0)
	}
	return buf
}

func TestParseProcArgs2(t *testing.T) {
	buf := procArgs2Buffer(3, "/usr/bin/prog",
		"prog", "--flag", "value", // arguments
		"HOME=/home/u", "TERM=xterm") // environment, ignored
	snap := parseProcArgs2(buf)
	assert.Equal(t, 3, snap.count())
	assert.DeepEqual(t, []string{"prog", "--flag", "value"}, drain(newIter(snap)))
}

func TestParseProcArgs2NoEnvironment(t *testing.T) {
	buf := procArgs2Buffer(1, "/usr/bin/prog", "prog")
	snap := parseProcArgs2(buf)
	assert.DeepEqual(t, []string{"prog"}, drain(newIter(snap)))
}

func TestParseProcArgs2ZeroArgc(t *testing.T) {
	buf := procArgs2Buffer(0, "/usr/bin/prog")
	assert.Equal(t, 0, parseProcArgs2(buf).count())
}

func TestParseProcArgs2UnterminatedTail(t *testing.T) {
	buf := procArgs2Buffer(2, "/usr/bin/prog", "prog")
	buf = append(buf, "--flag"...) // final argument missing its NUL
	snap := parseProcArgs2(buf)
	assert.DeepEqual(t, []string{"prog", "--flag"}, drain(newIter(snap)))
}

func TestParseProcArgs2ShortBuffer(t *testing.T) {
	defer func() {
		assert.Assert(t, recover() != nil)
	}()
	parseProcArgs2([]byte{0, 0})
}
