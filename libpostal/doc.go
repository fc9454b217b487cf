// Package libpostal is the cgo bridge to the libpostal address-processing
// library. It owns the process-wide lifecycle of the native state
// (dictionaries and trained models), marshals requests and responses across
// the C boundary, and guarantees that every native allocation is released
// exactly once.
//
// Callers acquire native subsystems through a lifecycle token:
//
//	token, err := libpostal.Setup(libpostal.All)
//	if err != nil {
//		// *libpostal.SetupError: data files missing or library not linked
//	}
//	defer token.Close()
//
// Once a token is held, parse and expand calls are safe to run concurrently;
// setup and teardown are serialized against them internally.
//
// The higher-level typed APIs live in the sibling packages address and
// expand. The real native implementation is selected with the "libpostal"
// build tag and links against a system libpostal via pkg-config; without the
// tag a stub is compiled in whose setup always fails.
//
// A native assertion failure inside libpostal aborts the process; that is an
// inherited limitation of the wrapped library and is not recoverable here.
package libpostal
