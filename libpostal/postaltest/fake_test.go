package postaltest

import (
	"sync"
	"testing"

	"github.com/kodemartin/postal/libpostal"
)

// Defaults reads must hold the fake's lock so a test mutating scripted
// defaults while calls are in flight does not race.
func TestDefaultsReadsAreLocked(t *testing.T) {
	f := New()

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			f.mu.Lock()
			f.DefaultLanguage = "en"
			f.DefaultCountry = "us"
			f.Defaults = libpostal.NormalizeOptions{Lowercase: i%2 == 0}
			f.mu.Unlock()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			f.ParserDefaults()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			f.ExpandDefaults()
		}
	}()
	wg.Wait()

	if got := f.NativeCallCount(); got != 200 {
		t.Fatalf("expected 200 recorded calls, got %d", got)
	}
}
