package main

import (
	"sync"

	"github.com/eiannone/keyboard"
)

// inputState mirrors the teacher's InputState (win_input.go), trimmed
// to what the demo's orbitCamera actually reads.
type inputState struct {
	forward, backward, left, right bool
	rotLeft, rotRight              bool
	quit                           bool
}

// keyReader is grounded on the teacher's SilentInputManager: a
// background goroutine drains the keyboard package's event stream into
// a map guarded by a mutex, so the render loop never blocks waiting on
// a keypress.
type keyReader struct {
	mu      sync.RWMutex
	keys    map[rune]bool
	stop    chan struct{}
	started bool
}

func newKeyReader() *keyReader {
	return &keyReader{keys: make(map[rune]bool), stop: make(chan struct{})}
}

func (r *keyReader) start() error {
	if r.started {
		return nil
	}
	if err := keyboard.Open(); err != nil {
		return err
	}
	r.started = true
	go func() {
		for {
			select {
			case <-r.stop:
				return
			default:
				char, key, err := keyboard.GetKey()
				if err != nil {
					continue
				}
				r.mu.Lock()
				if char != 0 {
					r.keys[char] = true
				}
				if key == keyboard.KeyEsc {
					r.keys['x'] = true
				}
				r.mu.Unlock()
			}
		}
	}()
	return nil
}

func (r *keyReader) stopReading() {
	if !r.started {
		return
	}
	r.started = false
	close(r.stop)
	keyboard.Close()
}

func (r *keyReader) state() inputState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return inputState{
		forward:  r.keys['w'] || r.keys['W'],
		backward: r.keys['s'] || r.keys['S'],
		left:     r.keys['a'] || r.keys['A'],
		right:    r.keys['d'] || r.keys['D'],
		rotLeft:  r.keys['j'] || r.keys['J'],
		rotRight: r.keys['l'] || r.keys['L'],
		quit:     r.keys['x'] || r.keys['X'],
	}
}

func (r *keyReader) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = make(map[rune]bool)
}
