package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if _, hit, _ := c.Get(ctx, "missing"); hit {
		t.Error("Get(missing) should miss")
	}

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit || string(data) != "v" {
		t.Errorf("Get(k) = %q, %v, %v; want \"v\", true, nil", data, hit, err)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("Get after Delete should miss")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete(missing) error = %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expired entry should be removed")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	path := c.path("k")
	os.MkdirAll(filepath.Dir(path), 0755)
	os.WriteFile(path, []byte("not json"), 0644)

	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry: hit=%v err=%v, want miss", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	for _, k := range []string{"a", "b", "c"} {
		c.Set(ctx, k, []byte(k), 0)
	}
	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear() = %d, want 3", n)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("Get after Clear should miss")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length = %d, want 64", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	if got := k.RecordsKey("abc"); got != "records:abc" {
		t.Errorf("RecordsKey = %s, want records:abc", got)
	}

	ck1 := k.ChartKey("h", ChartKeyOpts{VizType: "tree", Viewport: 1280})
	ck2 := k.ChartKey("h", ChartKeyOpts{VizType: "tree", Viewport: 375})
	if ck1 == ck2 {
		t.Error("Different ChartKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(ck1, PrefixChart+":") {
		t.Errorf("ChartKey = %s, want %s prefix", ck1, PrefixChart)
	}

	ak1 := k.ArtifactKey("h", ArtifactKeyOpts{Format: "svg"})
	ak2 := k.ArtifactKey("h", ArtifactKeyOpts{Format: "json"})
	if ak1 == ak2 {
		t.Error("Different ArtifactKeyOpts should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "flock:1:")
	if got := scoped.RecordsKey("abc"); got != "flock:1:records:abc" {
		t.Errorf("RecordsKey = %s", got)
	}
	if got := scoped.ChartKey("h", ChartKeyOpts{}); !strings.HasPrefix(got, "flock:1:chart:") {
		t.Errorf("ChartKey should be prefixed: %s", got)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	scoped := NewScopedKeyer(nil, "p:")
	if got := scoped.RecordsKey("x"); got != "p:records:x" {
		t.Errorf("RecordsKey with nil inner = %s", got)
	}
}

// ttlRecorder records the ttl of the last Set.
type ttlRecorder struct {
	NullCache
	last time.Duration
}

func (r *ttlRecorder) Set(_ context.Context, _ string, _ []byte, ttl time.Duration) error {
	r.last = ttl
	return nil
}

func TestWithTTL(t *testing.T) {
	rec := &ttlRecorder{}
	if got := WithTTL(rec, 0); got != Cache(rec) {
		t.Error("WithTTL(c, 0) should return c unchanged")
	}

	c := WithTTL(rec, time.Hour)
	if err := c.Set(context.Background(), "k", []byte("v"), TTLChart); err != nil {
		t.Fatal(err)
	}
	if rec.last != time.Hour {
		t.Errorf("ttl = %v, want 1h", rec.last)
	}
}
