package leaktest

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoroutineChecker_NoLeak(t *testing.T) {
	CheckNoGoroutineLeak(t, 0, func() {
		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				time.Sleep(time.Millisecond)
			}()
		}
		wg.Wait()
	})
}

func TestGoroutineChecker_WaitsForStragglers(t *testing.T) {
	CheckNoGoroutineLeak(t, 0, func() {
		// exits shortly after fn returns
		go time.Sleep(50 * time.Millisecond)
	})
}

func TestGoroutineChecker_WithinTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	defer close(done)
	go func() { <-done }()

	checker.Check(1)
}

func TestWaitForCount_TimesOut(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	go func() { <-done }()

	start := time.Now()
	n := waitForCount(0, 30*time.Millisecond)
	assert.Greater(t, n, 0)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}
