//go:build linux && (amd64 || arm64)

// Package sysexit terminates the process with a raw Linux exit system call.
//
// Exit bypasses os.Exit, deferred functions, atexit handlers and stdio
// flushing: it loads the syscall number and the status into the registers
// the kernel ABI names and executes the architecture's syscall instruction.
// Nothing about the Go runtime is assumed to be initialized when it runs,
// which is the point: binaries built around it are fixtures for linkers and
// loaders that must handle programs with no conventional startup at all.
//
// Only linux/amd64 and linux/arm64 are supported. On any other target the
// package does not build; there is deliberately no generic fallback, since
// a fixture with approximated encodings would test nothing.
package sysexit

// Exit terminates the calling process with the given status and never
// returns. The status is passed to the kernel as-is; the OS keeps only the
// low 8 bits, so Exit(256) is observed as 0 and Exit(-1) as 255. All process
// resources are reclaimed by the kernel, no cleanup of any kind runs first.
//
// Implemented in per-architecture assembly. A trap instruction follows the
// syscall so that a hypothetical return faults instead of silently falling
// through.
func Exit(code int)
