// Command liblogger builds the logger as a C shared library:
//
//	go build -buildmode=c-shared -o libargologger.so ./cmd/liblogger
//
// The generated header declares a LoggerHandle as uintptr_t. Strings returned
// by the *_cstr getters and logger_version are allocated with malloc and must
// be released with cstr_free.
package main

/*
#include <stdint.h>
#include <stdlib.h>

typedef struct UUID4_t {
	uint8_t value[16];
} UUID4_t;
*/
import "C"

import (
	"unsafe"

	"github.com/rxtech-lab/argo-logger/pkg/ffi"
)

//export logger_new
func logger_new(traderIDPtr *C.char, machineIDPtr *C.char, instanceIDPtr *C.char, levelStdout C.uint8_t, isBypassed C.uint8_t) C.uintptr_t {
	h := ffi.LoggerNew(
		C.GoString(traderIDPtr),
		C.GoString(machineIDPtr),
		C.GoString(instanceIDPtr),
		uint8(levelStdout),
		uint8(isBypassed),
	)

	return C.uintptr_t(h)
}

//export logger_free
func logger_free(logger C.uintptr_t) {
	ffi.LoggerFree(ffi.Handle(logger))
}

//export flush
func flush(logger C.uintptr_t) {
	ffi.Flush(ffi.Handle(logger))
}

//export logger_get_trader_id_cstr
func logger_get_trader_id_cstr(logger C.uintptr_t) *C.char {
	return C.CString(ffi.LoggerGetTraderID(ffi.Handle(logger)))
}

//export logger_get_machine_id_cstr
func logger_get_machine_id_cstr(logger C.uintptr_t) *C.char {
	return C.CString(ffi.LoggerGetMachineID(ffi.Handle(logger)))
}

//export logger_get_instance_id
func logger_get_instance_id(logger C.uintptr_t) C.UUID4_t {
	var out C.UUID4_t
	for i, b := range ffi.LoggerGetInstanceID(ffi.Handle(logger)) {
		out.value[i] = C.uint8_t(b)
	}

	return out
}

//export logger_is_bypassed
func logger_is_bypassed(logger C.uintptr_t) C.uint8_t {
	return C.uint8_t(ffi.LoggerIsBypassed(ffi.Handle(logger)))
}

//export logger_log
func logger_log(logger C.uintptr_t, timestampNs C.uint64_t, level C.uint8_t, color C.uint8_t, componentPtr *C.char, msgPtr *C.char) {
	ffi.LoggerLog(
		ffi.Handle(logger),
		uint64(timestampNs),
		uint8(level),
		uint8(color),
		C.GoString(componentPtr),
		C.GoString(msgPtr),
	)
}

//export logger_version
func logger_version() *C.char {
	return C.CString(ffi.Version())
}

//export logger_abi_compatible
func logger_abi_compatible(hostVersionPtr *C.char) C.uint8_t {
	return C.uint8_t(ffi.ABICompatible(C.GoString(hostVersionPtr)))
}

//export cstr_free
func cstr_free(ptr *C.char) {
	C.free(unsafe.Pointer(ptr))
}

func main() {}
