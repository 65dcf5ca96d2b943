package trigger

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// flakyProber reports unreachable until flipped online.
type flakyProber struct {
	online atomic.Bool
}

func (p *flakyProber) Health(ctx context.Context) error {
	if p.online.Load() {
		return nil
	}
	return errors.New("connection refused")
}

func recvTrigger(t *testing.T, ch <-chan Event, timeout time.Duration) Event {
	t.Helper()
	select {
	case event := <-ch:
		return event
	case <-time.After(timeout):
		t.Fatal("timed out waiting for trigger event")
		return Event{}
	}
}

func TestFire_Manual(t *testing.T) {
	source := NewSource(testLogger(), nil, 0)
	source.Register(TagSyncSales)

	source.Fire(TagSyncSales, OriginManual)

	event := recvTrigger(t, source.Events(), time.Second)
	assert.Equal(t, TagSyncSales, event.Tag)
	assert.Equal(t, OriginManual, event.Origin)
}

func TestRegister_Idempotent(t *testing.T) {
	source := NewSource(testLogger(), nil, 0)

	// Registration racing controller installation calls Register twice;
	// startup must still fire exactly one event for the tag.
	source.Register(TagSyncSales)
	source.Register(TagSyncSales)

	ctx, cancel := context.WithCancel(context.Background())
	go source.Run(ctx)
	defer cancel()

	event := recvTrigger(t, source.Events(), time.Second)
	assert.Equal(t, OriginStartup, event.Origin)

	select {
	case extra := <-source.Events():
		t.Fatalf("duplicate startup trigger: %+v", extra)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRun_ConnectivityRestoredFiresOnce(t *testing.T) {
	prober := &flakyProber{}
	source := NewSource(testLogger(), prober, 10*time.Millisecond)
	source.Register(TagSyncSales)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go source.Run(ctx)

	// Drain the startup event.
	event := recvTrigger(t, source.Events(), time.Second)
	require.Equal(t, OriginStartup, event.Origin)

	// Stay offline long enough for the watcher to observe it, then recover.
	time.Sleep(50 * time.Millisecond)
	prober.online.Store(true)

	event = recvTrigger(t, source.Events(), time.Second)
	assert.Equal(t, OriginConnectivity, event.Origin)
	assert.Equal(t, TagSyncSales, event.Tag)

	// Staying online fires no further events.
	select {
	case extra := <-source.Events():
		t.Fatalf("unexpected trigger while staying online: %+v", extra)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRun_NoProberDegradesGracefully(t *testing.T) {
	source := NewSource(testLogger(), nil, 0)
	source.Register(TagSyncSales)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		source.Run(ctx)
		close(done)
	}()

	// Startup trigger still works without the connectivity capability.
	event := recvTrigger(t, source.Events(), time.Second)
	assert.Equal(t, OriginStartup, event.Origin)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on context cancellation")
	}
}
