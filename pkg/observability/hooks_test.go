package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Pipeline hooks
	p := NoopPipelineHooks{}
	p.OnValidate(ctx, "strict", 3, 2, 1)
	p.OnRender(ctx, "markdown", 2, 512, time.Millisecond, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "registry")
	c.OnCacheMiss(ctx, "registry")
	c.OnCacheSet(ctx, "registry", 1024)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "raw.githubusercontent.com", "/glyphs.yml")
	h.OnResponse(ctx, "GET", "raw.githubusercontent.com", "/glyphs.yml", 200, time.Second)
	h.OnError(ctx, "GET", "raw.githubusercontent.com", "/glyphs.yml", nil)
}

func TestWithDefaults(t *testing.T) {
	h := Hooks{}.WithDefaults()

	if _, ok := h.Pipeline.(NoopPipelineHooks); !ok {
		t.Error("Pipeline should default to NoopPipelineHooks")
	}
	if _, ok := h.Cache.(NoopCacheHooks); !ok {
		t.Error("Cache should default to NoopCacheHooks")
	}
	if _, ok := h.HTTP.(NoopHTTPHooks); !ok {
		t.Error("HTTP should default to NoopHTTPHooks")
	}
}

func TestWithDefaultsKeepsCustomHooks(t *testing.T) {
	custom := &testPipelineHooks{}
	h := Hooks{Pipeline: custom}.WithDefaults()

	if h.Pipeline != custom {
		t.Error("WithDefaults should keep custom pipeline hooks")
	}

	h.Pipeline.OnValidate(context.Background(), "lenient", 4, 3, 1)
	if custom.validated != 1 || custom.lastInvalid != 1 {
		t.Errorf("custom hooks not called: %+v", custom)
	}
}

type testPipelineHooks struct {
	NoopPipelineHooks
	validated   int
	lastInvalid int
}

func (h *testPipelineHooks) OnValidate(_ context.Context, _ string, _, _, invalid int) {
	h.validated++
	h.lastInvalid = invalid
}
