package core

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressTracker_Monotonic(t *testing.T) {
	var got []int
	p := newProgressTracker(func(percent int, _ string) {
		got = append(got, percent)
	})

	p.report(5, "a")
	p.report(3, "b")
	p.report(50, "c")
	p.report(40, "d")
	p.report(150, "e")

	assert.Equal(t, []int{5, 5, 50, 50, 100}, got)
}

func TestProgressTracker_Hashing(t *testing.T) {
	var got []int
	p := newProgressTracker(func(percent int, _ string) {
		got = append(got, percent)
	})

	p.hashing(0, 4)
	p.hashing(1, 4)
	p.hashing(2, 4)
	p.hashing(4, 4)
	p.hashing(1, 0) // ignored

	assert.Equal(t, []int{10, 30, 50, 90}, got)
}

func TestProgressTracker_NilCallback(t *testing.T) {
	var p *progressTracker
	assert.NotPanics(t, func() { p.report(10, "nil tracker") })

	p = newProgressTracker(nil)
	assert.NotPanics(t, func() { p.report(10, "nil callback") })
}

func TestProgressTracker_Concurrent(t *testing.T) {
	var got []int
	p := newProgressTracker(func(percent int, _ string) {
		got = append(got, percent)
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p.report(i*2, "worker")
		}(i)
	}
	wg.Wait()

	assert.Len(t, got, 50)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i], got[i-1])
	}
}
