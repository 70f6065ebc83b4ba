//go:build ios

package argv

import (
	"unicode/utf8"

	"github.com/osargv/osargv/pkg/objcrt"
)

func newBackend() backend { return objModel{} }

// objModel obtains the vector from the platform object model,
// equivalent to [[NSProcessInfo processInfo] arguments], materialized
// eagerly into an owned snapshot. The platform guarantees these strings
// are valid UTF-8.
type objModel struct{}

func (objModel) init(argc int, argv **byte) {}

func (objModel) cleanup() {}

func (objModel) args() snapshot {
	selProcessInfo := objcrt.RegisterName("processInfo")
	selArguments := objcrt.RegisterName("arguments")
	selCount := objcrt.RegisterName("count")
	selObjectAtIndex := objcrt.RegisterName("objectAtIndex:")
	selUTF8String := objcrt.RegisterName("UTF8String")

	info := objcrt.Send(objcrt.GetClass("NSProcessInfo"), selProcessInfo)
	list := objcrt.Send(info, selArguments)
	n := uint(objcrt.Send(list, selCount))

	args := make(listSnapshot, 0, n)
	for i := uint(0); i < n; i++ {
		s := objcrt.SendUint(list, selObjectAtIndex, i)
		b := objcrt.GoBytes(objcrt.Send(s, selUTF8String))
		if !utf8.Valid(b) {
			// The platform guarantees text here; never truncate or
			// substitute argument data.
			panic("argv: NSProcessInfo argument is not valid UTF-8")
		}
		args = append(args, b)
	}
	return args
}
