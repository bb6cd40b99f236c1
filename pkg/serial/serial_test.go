package serial

import (
	"sync"
	"testing"
	"time"
)

func TestGoKeepsOrderPerKey(t *testing.T) {
	var (
		q   Queue
		mu  sync.Mutex
		got = map[string][]int{}
	)
	for i := 0; i < 50; i++ {
		for _, key := range []string{"a", "b"} {
			q.Go(key, func() {
				if i%7 == 0 {
					time.Sleep(time.Millisecond)
				}
				mu.Lock()
				got[key] = append(got[key], i)
				mu.Unlock()
			})
		}
	}
	q.Wait()

	for _, key := range []string{"a", "b"} {
		if len(got[key]) != 50 {
			t.Fatalf("%s: ran %d, want 50", key, len(got[key]))
		}
		for i, v := range got[key] {
			if v != i {
				t.Fatalf("%s: position %d ran %d", key, i, v)
			}
		}
	}
}

func TestGoNeverOverlapsSameKey(t *testing.T) {
	var (
		q       Queue
		mu      sync.Mutex
		running int
		peak    int
	)
	for i := 0; i < 20; i++ {
		q.Go("chat", func() {
			mu.Lock()
			running++
			if running > peak {
				peak = running
			}
			mu.Unlock()
			time.Sleep(100 * time.Microsecond)
			mu.Lock()
			running--
			mu.Unlock()
		})
	}
	q.Wait()
	if peak != 1 {
		t.Errorf("peak concurrency = %d, want 1", peak)
	}
}

func TestGoRunsKeysConcurrently(t *testing.T) {
	var q Queue
	release := make(chan struct{})
	done := make(chan struct{})

	q.Go("slow", func() { <-release })
	q.Go("fast", func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("fast key blocked behind slow key")
	}
	close(release)
	q.Wait()
}

func TestGoAfterDrain(t *testing.T) {
	var q Queue
	n := 0
	q.Go("k", func() { n++ })
	q.Wait()
	q.Go("k", func() { n++ })
	q.Wait()
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}
}
