package chromawave

import "testing"

func TestLRUCacheGetMiss(t *testing.T) {
	c := newLRUCache(2)
	if _, ok := c.get(1); ok {
		t.Fatal("expected miss on empty cache")
	}
}

func TestLRUCachePutThenGet(t *testing.T) {
	c := newLRUCache(2)
	c.put(1, "black")
	if v, ok := c.get(1); !ok || v != "black" {
		t.Fatalf("get(1) = (%q, %v), want (black, true)", v, ok)
	}
}

func TestLRUCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := newLRUCache(2)
	c.put(1, "a")
	c.put(2, "b")
	c.get(1) // touch 1, making 2 the least recently used
	c.put(3, "c")

	if _, ok := c.get(2); ok {
		t.Fatal("expected 2 to be evicted as least recently used")
	}
	if _, ok := c.get(1); !ok {
		t.Fatal("expected 1 to survive eviction")
	}
	if _, ok := c.get(3); !ok {
		t.Fatal("expected 3 to be present")
	}
}

func TestLRUCacheOverwriteUpdatesValue(t *testing.T) {
	c := newLRUCache(2)
	c.put(1, "a")
	c.put(1, "b")
	if v, _ := c.get(1); v != "b" {
		t.Fatalf("get(1) = %q, want b", v)
	}
}

func TestLRUCacheMinimumCapacityIsOne(t *testing.T) {
	c := newLRUCache(0)
	c.put(1, "a")
	c.put(2, "b")
	if _, ok := c.get(1); ok {
		t.Fatal("expected capacity to be clamped to 1, evicting the first entry")
	}
}
