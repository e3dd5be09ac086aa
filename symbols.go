package cudrv

import (
	"unsafe"
)

// Names the diagnostics reach for themselves.
const (
	symInit             = "cuInit"
	symDriverGetVersion = "cuDriverGetVersion"
	symGetErrorName     = "cuGetErrorName"
)

// The closed entry point set. Versions are the lowest driver generation that
// ships the symbol, kept low so older installations still resolve.
var (
	pDeviceGetAttribute = register[func(value *int32, attrib DeviceAttribute, dev Device) Result]("cuDeviceGetAttribute", CUDA11)
	pDeviceGetName      = register[func(name []byte, length int32, dev Device) Result]("cuDeviceGetName", CUDA11)
	pDriverGetVersion   = register[func(version *int32) Result](symDriverGetVersion, CUDA11)
	pFuncGetAttribute   = register[func(value *int32, attrib FunctionAttribute, f Function) Result]("cuFuncGetAttribute", CUDA11)
	pFuncSetAttribute   = register[func(f Function, attrib FunctionAttribute, value int32) Result]("cuFuncSetAttribute", CUDA11)
	pGetErrorName       = register[func(result Result, pstr *uintptr) Result](symGetErrorName, CUDA11)
	pGetErrorString     = register[func(result Result, pstr *uintptr) Result]("cuGetErrorString", CUDA11)
	pInit               = register[func(flags uint32) Result](symInit, CUDA11)
	pLaunchCooperativeKernel = register[func(f Function,
		gridX, gridY, gridZ, blockX, blockY, blockZ uint32,
		sharedMem uint32, stream Stream, params []unsafe.Pointer) Result]("cuLaunchCooperativeKernel", CUDA11)
	pLaunchKernel = register[func(f Function,
		gridX, gridY, gridZ, blockX, blockY, blockZ uint32,
		sharedMem uint32, stream Stream, params, extra []unsafe.Pointer) Result]("cuLaunchKernel", CUDA11)
	pModuleGetFunction  = register[func(f *Function, m Module, name string) Result]("cuModuleGetFunction", CUDA11)
	pModuleLoadDataEx   = register[func(m *Module, image []byte, numOptions uint32, options []JitOption, values []unsafe.Pointer) Result]("cuModuleLoadDataEx", CUDA11)
	pModuleUnload       = register[func(m Module) Result]("cuModuleUnload", CUDA11)
	pMemGetAddressRange = register[func(base *DevicePtr, size *uintptr, ptr DevicePtr) Result]("cuMemGetAddressRange", CUDA11)
	pMemAlloc           = register[func(ptr *DevicePtr, size uintptr) Result]("cuMemAlloc", CUDA11)
	pMemFree            = register[func(ptr DevicePtr) Result]("cuMemFree", CUDA11)
	pMemcpyDtoH         = register[func(dst unsafe.Pointer, src DevicePtr, n uintptr) Result]("cuMemcpyDtoH", CUDA11)
	pMemcpyHtoD         = register[func(dst DevicePtr, src unsafe.Pointer, n uintptr) Result]("cuMemcpyHtoD", CUDA11)
	pMemcpyDtoD         = register[func(dst, src DevicePtr, n uintptr) Result]("cuMemcpyDtoD", CUDA11)
	pOccupancy          = register[func(blocks *int32, f Function, blockSize int32, dynamicSMem uintptr) Result]("cuOccupancyMaxActiveBlocksPerMultiprocessor", CUDA11)
	pStreamCreate       = register[func(stream *Stream, flags uint32) Result]("cuStreamCreate", CUDA11)
	pStreamDestroy      = register[func(stream Stream) Result]("cuStreamDestroy", CUDA11)
	pStreamSynchronize  = register[func(stream Stream) Result]("cuStreamSynchronize", CUDA11)
	pCtxGetCurrent      = register[func(ctx *Context) Result]("cuCtxGetCurrent", CUDA11)
	pCtxSetCurrent      = register[func(ctx Context) Result]("cuCtxSetCurrent", CUDA11)
	pStreamWaitValue32  = register[func(stream Stream, addr DevicePtr, value, flags uint32) Result]("cuStreamWaitValue32", CUDA11)
	pStreamWriteValue32 = register[func(stream Stream, addr DevicePtr, value, flags uint32) Result]("cuStreamWriteValue32", CUDA11)
	pTensorMapEncodeTiled = register[func(tensorMap unsafe.Pointer, dataType uint32, rank uint32, globalAddress unsafe.Pointer,
		globalDim, globalStrides []uint64, boxDim, elementStrides []uint32,
		interleave, swizzle, l2Promotion, oobFill uint32) Result]("cuTensorMapEncodeTiled", CUDA12)
	pTensorMapReplaceAddress = register[func(tensorMap, globalAddress unsafe.Pointer) Result]("cuTensorMapReplaceAddress", CUDA12)
)

func DeviceGetAttribute(value *int32, attrib DeviceAttribute, dev Device) Result {
	return pDeviceGetAttribute.invoke()(value, attrib, dev)
}

// DeviceGetName fills name with the NUL terminated device name, truncated to
// the buffer. Decode with GoString.
func DeviceGetName(name []byte, dev Device) Result {
	return pDeviceGetName.invoke()(name, int32(len(name)), dev)
}

func DriverGetVersion(version *int32) Result {
	return pDriverGetVersion.invoke()(version)
}

func FuncGetAttribute(value *int32, attrib FunctionAttribute, f Function) Result {
	return pFuncGetAttribute.invoke()(value, attrib, f)
}

func FuncSetAttribute(f Function, attrib FunctionAttribute, value int32) Result {
	return pFuncSetAttribute.invoke()(f, attrib, value)
}

// GetErrorName writes the address of the driver owned error name into pstr.
// Prefer Result.String which decodes it.
func GetErrorName(result Result, pstr *uintptr) Result {
	return pGetErrorName.invoke()(result, pstr)
}

// GetErrorString writes the address of the driver owned error description
// into pstr, decode with the package cstring conventions as Result.String.
func GetErrorString(result Result, pstr *uintptr) Result {
	return pGetErrorString.invoke()(result, pstr)
}

func Init(flags uint32) Result {
	return pInit.invoke()(flags)
}

func LaunchCooperativeKernel(f Function, gridX, gridY, gridZ, blockX, blockY, blockZ uint32, sharedMem uint32, stream Stream, params []unsafe.Pointer) Result {
	return pLaunchCooperativeKernel.invoke()(f, gridX, gridY, gridZ, blockX, blockY, blockZ, sharedMem, stream, params)
}

// LaunchKernel launches f on stream. params holds one pointer per kernel
// argument, extra is the packed parameter buffer alternative, usually nil.
func LaunchKernel(f Function, gridX, gridY, gridZ, blockX, blockY, blockZ uint32, sharedMem uint32, stream Stream, params, extra []unsafe.Pointer) Result {
	return pLaunchKernel.invoke()(f, gridX, gridY, gridZ, blockX, blockY, blockZ, sharedMem, stream, params, extra)
}

func ModuleGetFunction(f *Function, m Module, name string) Result {
	return pModuleGetFunction.invoke()(f, m, name)
}

// ModuleLoadDataEx loads a module image, cubin, fatbin or NUL terminated PTX
// text. options and values ride in parallel, values carry either pointers or
// integers widened into the pointer slot, as the driver jit api defines.
func ModuleLoadDataEx(m *Module, image []byte, options []JitOption, values []unsafe.Pointer) Result {
	return pModuleLoadDataEx.invoke()(m, image, uint32(len(options)), options, values)
}

func ModuleUnload(m Module) Result {
	return pModuleUnload.invoke()(m)
}

func MemGetAddressRange(base *DevicePtr, size *uintptr, ptr DevicePtr) Result {
	return pMemGetAddressRange.invoke()(base, size, ptr)
}

func MemAlloc(ptr *DevicePtr, size uintptr) Result {
	return pMemAlloc.invoke()(ptr, size)
}

func MemFree(ptr DevicePtr) Result {
	return pMemFree.invoke()(ptr)
}

func MemcpyDtoH(dst unsafe.Pointer, src DevicePtr, n uintptr) Result {
	return pMemcpyDtoH.invoke()(dst, src, n)
}

func MemcpyHtoD(dst DevicePtr, src unsafe.Pointer, n uintptr) Result {
	return pMemcpyHtoD.invoke()(dst, src, n)
}

func MemcpyDtoD(dst, src DevicePtr, n uintptr) Result {
	return pMemcpyDtoD.invoke()(dst, src, n)
}

func OccupancyMaxActiveBlocksPerMultiprocessor(blocks *int32, f Function, blockSize int32, dynamicSMem uintptr) Result {
	return pOccupancy.invoke()(blocks, f, blockSize, dynamicSMem)
}

func StreamCreate(stream *Stream, flags uint32) Result {
	return pStreamCreate.invoke()(stream, flags)
}

func StreamDestroy(stream Stream) Result {
	return pStreamDestroy.invoke()(stream)
}

func StreamSynchronize(stream Stream) Result {
	return pStreamSynchronize.invoke()(stream)
}

func CtxGetCurrent(ctx *Context) Result {
	return pCtxGetCurrent.invoke()(ctx)
}

func CtxSetCurrent(ctx Context) Result {
	return pCtxSetCurrent.invoke()(ctx)
}

func StreamWaitValue32(stream Stream, addr DevicePtr, value, flags uint32) Result {
	return pStreamWaitValue32.invoke()(stream, addr, value, flags)
}

func StreamWriteValue32(stream Stream, addr DevicePtr, value, flags uint32) Result {
	return pStreamWriteValue32.invoke()(stream, addr, value, flags)
}

// TensorMapEncodeTiled needs a 12.0+ driver, probe with Available before use.
func TensorMapEncodeTiled(tensorMap unsafe.Pointer, dataType uint32, rank uint32, globalAddress unsafe.Pointer, globalDim, globalStrides []uint64, boxDim, elementStrides []uint32, interleave, swizzle, l2Promotion, oobFill uint32) Result {
	return pTensorMapEncodeTiled.invoke()(tensorMap, dataType, rank, globalAddress, globalDim, globalStrides, boxDim, elementStrides, interleave, swizzle, l2Promotion, oobFill)
}

// TensorMapReplaceAddress needs a 12.0+ driver, probe with Available before use.
func TensorMapReplaceAddress(tensorMap, globalAddress unsafe.Pointer) Result {
	return pTensorMapReplaceAddress.invoke()(tensorMap, globalAddress)
}
