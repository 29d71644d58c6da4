package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level.
// It implements EngineHooks, CacheHooks and HTTPHooks.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log through logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnLayoutStart(_ context.Context, mode string, objects int) {
	h.logger.Debug("layout start", "mode", mode, "objects", objects)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, mode string, moves int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("layout failed", "mode", mode, "duration", d, "err", err)
		return
	}
	h.logger.Debug("layout done", "mode", mode, "moves", moves, "duration", d)
}

func (h *LogHooks) OnOrientStart(_ context.Context, baseID string, targets int) {
	h.logger.Debug("orient start", "base", baseID, "targets", targets)
}

func (h *LogHooks) OnOrientComplete(_ context.Context, baseID string, rotations, skipped int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("orient failed", "base", baseID, "duration", d, "err", err)
		return
	}
	h.logger.Debug("orient done", "base", baseID, "rotations", rotations, "skipped", skipped, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "path", path, "status", status, "duration", d)
}

var (
	_ EngineHooks = (*LogHooks)(nil)
	_ CacheHooks  = (*LogHooks)(nil)
	_ HTTPHooks   = (*LogHooks)(nil)
)
