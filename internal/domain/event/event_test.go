package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubPublisher struct {
	err  error
	sent []Event
}

func (p *stubPublisher) Publish(_ context.Context, evt Event) error {
	p.sent = append(p.sent, evt)
	return p.err
}

func observeGlobal(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(restore)
	return logs
}

func TestNew(t *testing.T) {
	a := New(BookCreated, BookPayload{BookID: 1})
	b := New(BookCreated, BookPayload{BookID: 1})

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, BookCreated, a.Type)
	assert.False(t, a.OccurredAt.IsZero())
}

func TestEmit(t *testing.T) {
	ctx := context.Background()

	t.Run("发布成功不记日志", func(t *testing.T) {
		logs := observeGlobal(t)
		p := &stubPublisher{}

		Emit(ctx, p, New(ReviewCreated, ReviewPayload{ReviewID: 1}))

		require.Len(t, p.sent, 1)
		assert.Equal(t, 0, logs.Len())
	})

	t.Run("发布失败记日志且不向上返回", func(t *testing.T) {
		logs := observeGlobal(t)
		p := &stubPublisher{err: errors.New("broker down")}
		evt := New(WishlistMoved, ShelfPayload{UserID: 1, BookID: 2})

		Emit(ctx, p, evt)

		require.Len(t, p.sent, 1)
		entries := logs.FilterMessage("event not delivered").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, evt.ID, fields["event_id"])
		assert.Equal(t, WishlistMoved, fields["event_type"])
		assert.Equal(t, "broker down", fields["error"])
	})
}
