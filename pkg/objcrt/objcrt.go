//go:build darwin

// Package objcrt is a minimal bridge to the Objective-C runtime: class
// and selector lookup plus two message forms, one taking no arguments
// and one taking a single unsigned integer. The calling-convention
// differences between processor architectures (variadic objc_msgSend on
// x86-64, fixed-signature on arm64) are normalized by purego underneath
// this contract.
package objcrt

import (
	"bytes"
	"unsafe"

	"github.com/ebitengine/purego"
)

// ID is an Objective-C object reference.
type ID uintptr

// SEL is a registered selector.
type SEL uintptr

var (
	selRegisterName func(string) uintptr
	objcGetClass    func(string) uintptr
	msgSend         uintptr
)

func init() {
	// Foundation must be resident for NSProcessInfo and friends to be
	// registered with the runtime.
	if _, err := purego.Dlopen("/System/Library/Frameworks/Foundation.framework/Foundation", purego.RTLD_LAZY|purego.RTLD_GLOBAL); err != nil {
		panic("objcrt: " + err.Error())
	}
	objc, err := purego.Dlopen("/usr/lib/libobjc.A.dylib", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		panic("objcrt: " + err.Error())
	}
	purego.RegisterLibFunc(&selRegisterName, objc, "sel_registerName")
	purego.RegisterLibFunc(&objcGetClass, objc, "objc_getClass")
	msgSend, err = purego.Dlsym(objc, "objc_msgSend")
	if err != nil {
		panic("objcrt: " + err.Error())
	}
}

// RegisterName registers and returns the selector with the given name.
func RegisterName(name string) SEL {
	return SEL(selRegisterName(name))
}

// GetClass returns the class object for the named class, or 0 if no
// such class is registered.
func GetClass(name string) ID {
	return ID(objcGetClass(name))
}

// Send sends a message that takes no arguments.
func Send(obj ID, sel SEL) ID {
	r, _, _ := purego.SyscallN(msgSend, uintptr(obj), uintptr(sel))
	return ID(r)
}

// SendUint sends a message that takes a single unsigned integer, such
// as objectAtIndex:.
func SendUint(obj ID, sel SEL, n uint) ID {
	r, _, _ := purego.SyscallN(msgSend, uintptr(obj), uintptr(sel), uintptr(n))
	return ID(r)
}

// GoBytes copies the NUL-terminated C string addressed by id, which
// must be a char pointer such as the result of a UTF8String message.
func GoBytes(id ID) []byte {
	if id == 0 {
		return nil
	}
	p := (*byte)(unsafe.Pointer(uintptr(id)))
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return bytes.Clone(unsafe.Slice(p, n))
}
