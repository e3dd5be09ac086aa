/*
Package cudrv is a lazy binding toolkit for the NVIDIA CUDA driver library based on [purego].

# License

Source codes are under Apache License Version 2.0.

# Underwater

 1. The driver library (libcuda / nvcuda) is opened on first use, never at process start, so importing this package costs nothing on machines without the driver.
 2. Every entry point resolves through cuGetProcAddress when the driver ships it, which honours the minimum driver version of each symbol, otherwise falls back to a plain dlsym.
 3. Resolved addresses (also the missing ones) are cached for the process lifetime, one lookup per symbol no matter how many callers.

# Notes

 1. This project current only target on go 1.21+.
 2. A failed resolution is soft: it logs a warning through the configured logger and records the symbol as missing. Invoke such a symbol and it panics, probe it with Available first when unsure.
 3. Symbols recorded as missing stay missing for the whole process, a driver upgrade needs a restart.
 4. The wrapped callables keep the raw driver signatures. Context and memory lifecycles are owned by the caller, this package never creates a context by itself.

# Probe tool

This is a small cli tool to inspect the installed driver from the command line,
report its version, check which entry points resolve and show device properties.
The probe tool can be installed by:

	go install github.com/ZenLiuCN/cudrv/probe@latest

For more details see the cli help:

	probe -h

# Samples

See testdata and tests.

[purego]: https://github.com/ebitengine/purego
*/
package cudrv
