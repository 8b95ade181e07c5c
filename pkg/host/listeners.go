// Package host provides the environments a viewport.Classifier can observe:
// an in-memory surface, the process's terminal, and a bubbletea program.
package host

import "sync"

// listeners is a registry of resize callbacks shared by the hosts.
type listeners struct {
	mu     sync.Mutex
	nextID int
	fns    map[int]func()
}

// add registers fn and returns a function that removes it. onEmpty, if set,
// runs when that removal leaves the registry empty. Removing twice is a no-op.
func (l *listeners) add(fn func(), onEmpty func()) func() {
	l.mu.Lock()
	if l.fns == nil {
		l.fns = make(map[int]func())
	}
	id := l.nextID
	l.nextID++
	l.fns[id] = fn
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.fns, id)
			empty := len(l.fns) == 0
			l.mu.Unlock()
			if empty && onEmpty != nil {
				onEmpty()
			}
		})
	}
}

func (l *listeners) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.fns)
}

// notify calls every registered callback outside the lock.
func (l *listeners) notify() {
	l.mu.Lock()
	fns := make([]func(), 0, len(l.fns))
	for _, fn := range l.fns {
		fns = append(fns, fn)
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
