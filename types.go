package cudrv

import (
	"fmt"
)

type (
	// Device is an ordinal driver device handle (CUdevice).
	Device int32
	// DevicePtr is a device memory address (CUdeviceptr), always 64 bit on the wire.
	DevicePtr uint64
	// Context is an opaque driver context handle (CUcontext).
	Context uintptr
	// Module is an opaque loaded module handle (CUmodule).
	Module uintptr
	// Function is an opaque kernel handle (CUfunction).
	Function uintptr
	// Stream is an opaque stream handle (CUstream).
	Stream uintptr
	// Result is a driver status code (CUresult).
	Result uint32
	// Version is a driver version encoded as major*1000 + minor*10.
	Version int
	// DeviceAttribute selects a device property for DeviceGetAttribute.
	DeviceAttribute int32
	// FunctionAttribute selects a kernel property for FuncGetAttribute and FuncSetAttribute.
	FunctionAttribute int32
	// JitOption tunes ModuleLoadDataEx (CUjit_option).
	JitOption uint32
)

const (
	CUDA11 Version = 11000
	CUDA12 Version = 12000
)

const (
	Success             Result = 0
	ErrorInvalidValue   Result = 1
	ErrorOutOfMemory    Result = 2
	ErrorNotInitialized Result = 3
	ErrorDeinitialized  Result = 4
	ErrorNoDevice       Result = 100
	ErrorInvalidDevice  Result = 101
	ErrorInvalidContext Result = 201
	ErrorNotFound       Result = 500
	ErrorNotSupported   Result = 801
	ErrorUnknown        Result = 999
)

const (
	AttrMultiprocessorCount    DeviceAttribute = 16
	AttrComputeCapabilityMajor DeviceAttribute = 75
	AttrComputeCapabilityMinor DeviceAttribute = 76
)

const (
	// JitErrorLogBuffer takes a caller buffer that receives the jit error log.
	JitErrorLogBuffer JitOption = 5
	// JitErrorLogBufferSizeBytes passes the byte size of JitErrorLogBuffer in its value slot.
	JitErrorLogBufferSizeBytes JitOption = 6
)

// String resolves the short error name through the driver when cuGetErrorName
// is present, otherwise renders the numeric code.
func (r Result) String() string {
	if Available(symGetErrorName, CUDA11) {
		var p uintptr
		if GetErrorName(r, &p) == Success && p != 0 {
			return cstring(p)
		}
	}
	return fmt.Sprintf("CUDA_ERROR(%d)", uint32(r))
}

// Err converts a driver status into an error, nil for Success.
func (r Result) Err() error {
	if r == Success {
		return nil
	}
	return fmt.Errorf("cuda: %s", r)
}

// String renders the version as the usual major.minor form, as 12.4 for 12040.
func (v Version) String() string {
	return VersionString(int(v))
}
