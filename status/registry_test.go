package status

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestMetricMapGetReturnsSamePointer(t *testing.T) {
	reg := NewRegistry()

	a := reg.Ints.Get(KeyTicks)
	b := reg.Ints.Get(KeyTicks)
	if a != b {
		t.Fatal("Expected cached pointer on second Get")
	}

	a.Add(3)
	if got := reg.Int(KeyTicks); got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}
}

func TestRegistryIntUnregistered(t *testing.T) {
	reg := NewRegistry()

	if got := reg.Int("missing"); got != 0 {
		t.Errorf("Expected 0 for unregistered key, got %d", got)
	}
	if reg.Ints.Has("missing") {
		t.Error("Int must not register missing keys")
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	reg := NewRegistry()
	reg.Ints.Get(KeySnakeLength)
	reg.Ints.Get(KeyFrames)
	reg.Ints.Get(KeyPrizeEaten)
	reg.Bools.Get(KeyAudioEnabled)

	var keys []string
	reg.Ints.Range(func(key string, _ *atomic.Int64) {
		keys = append(keys, key)
	})

	expected := []string{KeyFrames, KeyPrizeEaten, KeySnakeLength}
	if len(keys) != len(expected) {
		t.Fatalf("Expected %d keys, got %d", len(expected), len(keys))
	}
	for i := range expected {
		if keys[i] != expected[i] {
			t.Errorf("Key %d: expected %s, got %s", i, expected[i], keys[i])
		}
	}

	if reg.TotalCount() != 4 {
		t.Errorf("Expected total count 4, got %d", reg.TotalCount())
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	reg := NewRegistry()

	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			reg.Ints.Get(KeyTicks).Add(1)
		}()
	}
	wg.Wait()

	if got := reg.Int(KeyTicks); got != goroutines {
		t.Errorf("Expected %d, got %d", goroutines, got)
	}
}
