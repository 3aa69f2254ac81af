package cache

import (
	"errors"
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	c := New[string](DefaultConfig())

	c.Set("key", "value")

	got, ok := c.Get("key")
	if !ok {
		t.Fatal("Get() should find the stored value")
	}
	if got != "value" {
		t.Errorf("Get() = %q, want value", got)
	}
}

func TestCache_Miss(t *testing.T) {
	c := New[int](DefaultConfig())

	_, ok := c.Get("absent")
	if ok {
		t.Error("Get() should miss for an absent key")
	}
}

func TestCache_Expiration(t *testing.T) {
	c := New[string](DefaultConfig())

	c.SetWithTTL("key", "value", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("key"); ok {
		t.Error("Get() should miss after expiry")
	}
}

func TestCache_Delete(t *testing.T) {
	c := New[string](DefaultConfig())

	c.Set("key", "value")
	c.Delete("key")

	if _, ok := c.Get("key"); ok {
		t.Error("Get() should miss after Delete()")
	}
}

func TestCache_Clear(t *testing.T) {
	c := New[string](DefaultConfig())

	c.Set("a", "1")
	c.Set("b", "2")
	c.Clear()

	if c.Size() != 0 {
		t.Errorf("Size() = %d after Clear(), want 0", c.Size())
	}
}

func TestCache_EvictsAtCapacity(t *testing.T) {
	c := New[int](Config{MaxItems: 2, TTL: time.Minute})

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	if c.Size() != 2 {
		t.Errorf("Size() = %d, want 2", c.Size())
	}
}

func TestCache_GetOrSet(t *testing.T) {
	c := New[int](DefaultConfig())

	calls := 0
	compute := func() (int, error) {
		calls++
		return 42, nil
	}

	for i := 0; i < 3; i++ {
		val, err := c.GetOrSet("answer", compute)
		if err != nil {
			t.Fatalf("GetOrSet() error = %v", err)
		}
		if val != 42 {
			t.Errorf("GetOrSet() = %d, want 42", val)
		}
	}

	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}
}

func TestCache_GetOrSet_ErrorNotCached(t *testing.T) {
	c := New[int](DefaultConfig())

	wantErr := errors.New("boom")
	_, err := c.GetOrSet("key", func() (int, error) {
		return 0, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("GetOrSet() error = %v, want %v", err, wantErr)
	}

	if c.Size() != 0 {
		t.Errorf("failed computation should not be cached, Size() = %d", c.Size())
	}
}

func TestCache_Stats(t *testing.T) {
	c := New[string](DefaultConfig())

	c.Set("key", "value")
	c.Get("key")
	c.Get("absent")

	hits, misses, hitRate := c.Stats()
	if hits != 1 {
		t.Errorf("hits = %d, want 1", hits)
	}
	if misses != 1 {
		t.Errorf("misses = %d, want 1", misses)
	}
	if hitRate != 50 {
		t.Errorf("hitRate = %v, want 50", hitRate)
	}
}
