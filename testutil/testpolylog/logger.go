package testpolylog

import (
	"bytes"
	"context"
	"sync"

	"github.com/pokt-network/sendtokens/pkg/polylog"
	"github.com/pokt-network/sendtokens/pkg/polylog/polyzero"
)

// NewBufferedLoggerWithCtx returns a debug level JSON logger which writes into
// the returned buffer, and a copy of ctx with the logger attached.
func NewBufferedLoggerWithCtx(ctx context.Context) (polylog.Logger, context.Context, *SyncBuffer) {
	buf := new(SyncBuffer)
	logger := polyzero.NewLogger(
		polyzero.WithOutput(buf),
		polyzero.WithLevel(polyzero.DebugLevel),
	)
	return logger, logger.WithContext(ctx), buf
}

// SyncBuffer is a bytes.Buffer safe for concurrent writes, as loggers may be
// used from the tx inclusion goroutine.
type SyncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *SyncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *SyncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
