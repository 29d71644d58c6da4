package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var (
	errFlaky = errors.New("connection reset")
	errFinal = errors.New("bad request")
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Error("NullCache.Get should always miss")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "plan:a"); err != nil || hit {
		t.Fatalf("Get on empty cache = hit %v, err %v", hit, err)
	}
	if err := c.Set(ctx, "plan:a", []byte(`{"mode":"left"}`), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "plan:a")
	if err != nil || !hit {
		t.Fatalf("Get after Set = hit %v, err %v", hit, err)
	}
	if string(data) != `{"mode":"left"}` {
		t.Errorf("data = %s", data)
	}

	if err := c.Delete(ctx, "plan:a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "plan:a"); hit {
		t.Error("entry survived Delete")
	}
	if err := c.Delete(ctx, "plan:a"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(2 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry returned")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := c.path("k")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry = hit %v, err %v; want miss", hit, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry was not removed")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	_ = c.Set(ctx, "a", []byte("1"), 0)
	_ = c.Set(ctx, "b", []byte("2"), 0)
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	for _, k := range []string{"a", "b"} {
		if _, hit, _ := c.Get(ctx, k); hit {
			t.Errorf("%s survived Clear", k)
		}
	}
	if _, err := os.Stat(c.Dir()); err != nil {
		t.Errorf("cache dir missing after Clear: %v", err)
	}
}

func TestDefaultDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	dir, err := DefaultDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/tmp/xdg", "viewalign") {
		t.Errorf("DefaultDir = %s", dir)
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
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	p1 := k.PlanKey("scene1", PlanKeyOpts{Mode: "left"})
	p2 := k.PlanKey("scene1", PlanKeyOpts{Mode: "right"})
	p3 := k.PlanKey("scene1", PlanKeyOpts{Mode: "distribute-h", MinGap: 5})
	p4 := k.PlanKey("scene1", PlanKeyOpts{Mode: "distribute-h", MinGap: 10})
	if p1 == p2 || p3 == p4 {
		t.Error("Different PlanKeyOpts should produce different keys")
	}
	if p1 != k.PlanKey("scene1", PlanKeyOpts{Mode: "left"}) {
		t.Error("PlanKey should be deterministic")
	}
	if !strings.HasPrefix(p1, "plan:") {
		t.Errorf("PlanKey = %s, want plan: prefix", p1)
	}
	if k.PlanKey("scene2", PlanKeyOpts{Mode: "left"}) == p1 {
		t.Error("Different scenes should produce different keys")
	}

	o1 := k.OrientKey("scene1", OrientKeyOpts{BaseID: "a"})
	o2 := k.OrientKey("scene1", OrientKeyOpts{BaseID: "a", TargetIDs: []string{"b"}})
	if o1 == o2 {
		t.Error("Different OrientKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(o1, "orient:") {
		t.Errorf("OrientKey = %s, want orient: prefix", o1)
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "project:tower-b:")

	want := "project:tower-b:" + inner.PlanKey("h", PlanKeyOpts{Mode: "top"})
	if got := scoped.PlanKey("h", PlanKeyOpts{Mode: "top"}); got != want {
		t.Errorf("PlanKey = %s, want %s", got, want)
	}
	if got := scoped.OrientKey("h", OrientKeyOpts{BaseID: "a"}); !strings.HasPrefix(got, "project:tower-b:orient:") {
		t.Errorf("OrientKey should be prefixed: %s", got)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.PlanKey("h", PlanKeyOpts{})
	if !strings.HasPrefix(key, "prefix:plan:") {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	err := Retryable(errFlaky)
	if err == nil {
		t.Fatal("Retryable should return wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}
	if err.Error() != errFlaky.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}
	if IsRetryable(errFinal) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestBackoff(t *testing.T) {
	ctx := context.Background()
	b := backoff{attempts: 3, delay: time.Millisecond}

	tests := []struct {
		name      string
		failures  int
		retryable bool
		wantCalls int
		wantErr   error
	}{
		{"success", 0, true, 1, nil},
		{"final error", 5, false, 1, errFinal},
		{"recovers", 1, true, 2, nil},
		{"exhausted", 5, true, 3, ErrUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := b.run(ctx, func() error {
				calls++
				if calls > tt.failures {
					return nil
				}
				if tt.retryable {
					return Retryable(errFlaky)
				}
				return errFinal
			})
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
			if tt.wantErr == nil && err != nil {
				t.Errorf("err = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBackoffExhaustedKeepsCause(t *testing.T) {
	b := backoff{attempts: 2, delay: time.Millisecond}
	err := b.run(context.Background(), func() error { return Retryable(errFlaky) })
	if !errors.Is(err, errFlaky) {
		t.Errorf("err = %v, want cause %v", err, errFlaky)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(errFlaky)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}

func TestTransient(t *testing.T) {
	if transient(nil) != nil {
		t.Error("transient(nil) should be nil")
	}
	if IsRetryable(transient(context.Canceled)) {
		t.Error("cancelled context should not be retried")
	}
	if !IsRetryable(transient(errFlaky)) {
		t.Error("connection errors should be retried")
	}
}

func TestRedisCache(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	ctx := context.Background()
	c, err := NewRedisCache(ctx, url, "viewalign-test:")
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit || string(data) != "v" {
		t.Errorf("Get = %q, %v, %v", data, hit, err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("entry survived Delete")
	}
}
