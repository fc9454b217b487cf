package libpostal

import "sync/atomic"

// Counters is a snapshot of the bridge's native-call accounting. The
// allocated/released pairs track the ownership invariant: every native
// response or expansion array obtained from the library must be destroyed
// exactly once, so in a quiescent process the pairs are equal.
type Counters struct {
	ParseCalls  uint64
	ExpandCalls uint64

	ResponsesAllocated uint64
	ResponsesReleased  uint64

	ExpansionsAllocated uint64
	ExpansionsReleased  uint64
}

var counters struct {
	parseCalls  atomic.Uint64
	expandCalls atomic.Uint64
	respAlloc   atomic.Uint64
	respFree    atomic.Uint64
	expAlloc    atomic.Uint64
	expFree     atomic.Uint64
}

// Profile returns the counters accumulated since process start or the last
// ResetProfile.
func Profile() Counters {
	return Counters{
		ParseCalls:          counters.parseCalls.Load(),
		ExpandCalls:         counters.expandCalls.Load(),
		ResponsesAllocated:  counters.respAlloc.Load(),
		ResponsesReleased:   counters.respFree.Load(),
		ExpansionsAllocated: counters.expAlloc.Load(),
		ExpansionsReleased:  counters.expFree.Load(),
	}
}

// ResetProfile zeros all counters.
func ResetProfile() {
	counters.parseCalls.Store(0)
	counters.expandCalls.Store(0)
	counters.respAlloc.Store(0)
	counters.respFree.Store(0)
	counters.expAlloc.Store(0)
	counters.expFree.Store(0)
}
