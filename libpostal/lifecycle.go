package libpostal

import (
	"sync"
)

// Module selects which native subsystems a lifecycle token covers.
type Module int

const (
	// Parser covers the address parser (models used by address.Parse).
	Parser Module = 1 << iota
	// Expander covers the language classifier (models used by expand.Expand).
	Expander
	// All covers both subsystems.
	All = Parser | Expander
)

// subsystem state machine values.
type status int

const (
	statusUninitialized status = iota
	statusReady
	statusFailed
)

// The native library holds process-wide mutable state (dictionaries and
// trained models). Setup and teardown mutate it and are not safe to run
// concurrently with anything else, so they take the write lock; every
// parse/expand call holds the read lock for the duration of the native call.
var (
	mu sync.RWMutex

	baseState       status
	parserState     status
	classifierState status

	baseRefs       int
	parserRefs     int
	classifierRefs int
)

// Token represents successfully initialized native subsystems. Closing it
// releases them; native teardown runs when the last token covering a
// subsystem is closed, with the base state torn down last. A Token must not
// outlive the process's use of the library.
type Token struct {
	modules Module
	once    sync.Once
}

// Setup initializes the native library for the given modules and returns a
// token whose Close releases them. Setup is reference counted: acquiring a
// module that is already Ready only bumps its count, so overlapping tokens
// are safe and teardown order cannot race.
//
// A native initialization failure is returned as a *SetupError; anything
// that was brought up during the failed attempt is torn down before
// returning.
func Setup(m Module) (*Token, error) {
	if m&All == 0 {
		return nil, &SetupError{Stage: "base", Reason: "no module selected"}
	}

	mu.Lock()
	defer mu.Unlock()

	if err := acquireBase(); err != nil {
		return nil, err
	}
	if m&Parser != 0 {
		if err := acquireParser(); err != nil {
			releaseBase()
			return nil, err
		}
	}
	if m&Expander != 0 {
		if err := acquireClassifier(); err != nil {
			if m&Parser != 0 {
				releaseParser()
			}
			releaseBase()
			return nil, err
		}
	}
	return &Token{modules: m}, nil
}

// Close releases the token's modules. It is idempotent; only the first call
// has any effect. Base teardown runs last, mirroring the setup order the
// native library requires.
func (t *Token) Close() {
	t.once.Do(func() {
		mu.Lock()
		defer mu.Unlock()

		if t.modules&Parser != 0 {
			releaseParser()
		}
		if t.modules&Expander != 0 {
			releaseClassifier()
		}
		releaseBase()
	})
}

func acquireBase() error {
	if baseRefs == 0 {
		if !active.SetupBase() {
			baseState = statusFailed
			return &SetupError{Stage: "base", Reason: "native setup failed"}
		}
		baseState = statusReady
	}
	baseRefs++
	return nil
}

func releaseBase() {
	if baseRefs == 0 {
		return
	}
	baseRefs--
	if baseRefs == 0 {
		active.TeardownBase()
		baseState = statusUninitialized
	}
}

func acquireParser() error {
	if parserRefs == 0 {
		if !active.SetupParser() {
			parserState = statusFailed
			return &SetupError{Stage: "parser", Reason: "native setup failed"}
		}
		parserState = statusReady
	}
	parserRefs++
	return nil
}

func releaseParser() {
	if parserRefs == 0 {
		return
	}
	parserRefs--
	if parserRefs == 0 {
		active.TeardownParser()
		parserState = statusUninitialized
	}
}

func acquireClassifier() error {
	if classifierRefs == 0 {
		if !active.SetupClassifier() {
			classifierState = statusFailed
			return &SetupError{Stage: "classifier", Reason: "native setup failed"}
		}
		classifierState = statusReady
	}
	classifierRefs++
	return nil
}

func releaseClassifier() {
	if classifierRefs == 0 {
		return
	}
	classifierRefs--
	if classifierRefs == 0 {
		active.TeardownClassifier()
		classifierState = statusUninitialized
	}
}

// withParser runs fn under the read lock after checking the parser subsystem
// is Ready. The read lock stays held for the whole native call so teardown
// can never overlap it.
func withParser(fn func(Native) error) error {
	mu.RLock()
	defer mu.RUnlock()

	if parserState != statusReady {
		return &SetupError{Stage: "parser", Reason: "not initialized"}
	}
	return fn(active)
}

// withClassifier is the expansion-side counterpart of withParser.
func withClassifier(fn func(Native) error) error {
	mu.RLock()
	defer mu.RUnlock()

	if classifierState != statusReady {
		return &SetupError{Stage: "classifier", Reason: "not initialized"}
	}
	return fn(active)
}

// resetLifecycleLocked zeroes the state machine. Caller holds the write lock.
func resetLifecycleLocked() {
	baseState, parserState, classifierState = statusUninitialized, statusUninitialized, statusUninitialized
	baseRefs, parserRefs, classifierRefs = 0, 0, 0
}
