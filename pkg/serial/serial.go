// Package serial runs functions in the background, one at a time per key.
package serial

import "sync"

// Queue runs submitted functions in submission order for each key. Different
// keys run concurrently. The zero value is ready to use.
type Queue struct {
	mu      sync.Mutex
	pending map[string][]func()
	wg      sync.WaitGroup
}

// Go schedules fn after every function already queued under key.
func (q *Queue) Go(key string, fn func()) {
	q.wg.Add(1)

	q.mu.Lock()
	if q.pending == nil {
		q.pending = make(map[string][]func())
	}
	p, busy := q.pending[key]
	q.pending[key] = append(p, fn)
	q.mu.Unlock()

	if !busy {
		go q.drain(key)
	}
}

// Wait blocks until every scheduled function has returned.
func (q *Queue) Wait() {
	q.wg.Wait()
}

// drain owns key until its backlog is empty. A key present in pending, even
// with an empty slice, has a running drainer.
func (q *Queue) drain(key string) {
	for {
		q.mu.Lock()
		p := q.pending[key]
		if len(p) == 0 {
			delete(q.pending, key)
			q.mu.Unlock()
			return
		}
		fn := p[0]
		p[0] = nil
		q.pending[key] = p[1:]
		q.mu.Unlock()

		q.run(fn)
	}
}

func (q *Queue) run(fn func()) {
	defer q.wg.Done()
	fn()
}
