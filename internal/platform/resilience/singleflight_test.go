package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGroupCollapsesConcurrentCalls(t *testing.T) {
	var g Group[string]
	var executions atomic.Int32

	const callers = 16
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err, _ := g.Do("player:12345", func() (string, error) {
				executions.Add(1)
				time.Sleep(20 * time.Millisecond)
				return "profile", nil
			})
			if err != nil || v != "profile" {
				t.Errorf("unexpected result %q %v", v, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := executions.Load(); got != 1 {
		t.Fatalf("expected one execution, got %d", got)
	}
}
