package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnLoadStart(ctx, "flock.ged")
	p.OnLoadComplete(ctx, "flock.ged", 3, 1, time.Second, nil)
	p.OnLayoutStart(ctx, "tree", 3)
	p.OnLayoutComplete(ctx, "tree", time.Second, nil)
	p.OnRenderStart(ctx, []string{"svg"})
	p.OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "records")
	c.OnCacheMiss(ctx, "chart")
	c.OnCacheSet(ctx, "artifact", 1024)

	NoopSourceHooks{}.OnReload(ctx, "flock.ged", 3, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Source().(NoopSourceHooks); !ok {
		t.Error("Source() should return NoopSourceHooks by default")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customSource := &testSourceHooks{}
	SetSourceHooks(customSource)
	if Source() != customSource {
		t.Error("SetSourceHooks should set custom hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	h := NewLogHooks(logger)
	ctx := context.Background()

	h.OnCacheHit(ctx, "chart")
	h.OnReload(ctx, "flock.ged", 0, 0, errors.New("line 4: missing tag"))

	out := buf.String()
	if !strings.Contains(out, "cache hit") {
		t.Errorf("log output missing cache hit: %s", out)
	}
	if !strings.Contains(out, "keeping previous dataset") {
		t.Errorf("log output missing reload failure: %s", out)
	}
}

type testPipelineHooks struct{ NoopPipelineHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testSourceHooks struct{ NoopSourceHooks }
