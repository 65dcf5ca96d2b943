// Package trigger decides when a sync attempt should be scheduled. Three
// origins feed the same event stream: an explicit user action, application
// start, and a connectivity watcher that fires once the backoffice becomes
// reachable again. The worker consuming the stream decides what to do.
package trigger

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// TagSyncSales is the trigger tag for the sales queue drain.
const TagSyncSales = "SYNC_SALES"

// DefaultProbeInterval spaces connectivity probes.
const DefaultProbeInterval = 15 * time.Second

// Origin names which source scheduled the trigger.
type Origin string

const (
	OriginManual       Origin = "manual"
	OriginStartup      Origin = "startup"
	OriginConnectivity Origin = "connectivity"
)

// Event is one trigger occurrence. It carries no payload beyond the tag.
type Event struct {
	At     time.Time
	Tag    string
	Origin Origin
}

// HealthProber checks backoffice reachability. Satisfied by the API client.
type HealthProber interface {
	Health(ctx context.Context) error
}

// Source produces trigger events for the sync worker. When no prober is
// configured the connectivity origin is unavailable and the source degrades
// to manual and startup triggers only.
type Source struct {
	logger        *slog.Logger
	prober        HealthProber
	events        chan Event
	tags          map[string]bool
	probeInterval time.Duration
	mu            sync.Mutex
}

// NewSource creates a trigger source. prober may be nil, which disables the
// connectivity watcher.
func NewSource(logger *slog.Logger, prober HealthProber, probeInterval time.Duration) *Source {
	if probeInterval <= 0 {
		probeInterval = DefaultProbeInterval
	}
	return &Source{
		logger:        logger,
		prober:        prober,
		probeInterval: probeInterval,
		tags:          make(map[string]bool),
		events:        make(chan Event, 16),
	}
}

// Register records interest in deferred triggers under the tag. Idempotent:
// re-registering an already registered tag is a no-op and never causes
// duplicate sync runs.
func (s *Source) Register(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tags[tag] {
		return
	}
	s.tags[tag] = true
	s.logger.Info("registered sync trigger", "tag", tag)
}

// Events returns the stream of trigger occurrences.
func (s *Source) Events() <-chan Event {
	return s.events
}

// Fire emits a manual trigger for the tag.
func (s *Source) Fire(tag string, origin Origin) {
	s.emit(Event{At: time.Now().UTC(), Tag: tag, Origin: origin})
}

// Run emits one startup event per registered tag, then watches connectivity
// until the context is cancelled. Safe to call once per process.
func (s *Source) Run(ctx context.Context) {
	for _, tag := range s.registeredTags() {
		s.emit(Event{At: time.Now().UTC(), Tag: tag, Origin: OriginStartup})
	}

	if s.prober == nil {
		s.logger.Info("connectivity watcher unavailable, manual and startup triggers only")
		<-ctx.Done()
		return
	}

	s.watchConnectivity(ctx)
}

// watchConnectivity probes the backoffice and fires the registered tags on
// each offline-to-online transition. The initial state is assumed online so
// a healthy boot does not double-fire next to the startup trigger.
func (s *Source) watchConnectivity(ctx context.Context) {
	ticker := time.NewTicker(s.probeInterval)
	defer ticker.Stop()

	online := true
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, s.probeInterval)
			err := s.prober.Health(probeCtx)
			cancel()

			nowOnline := err == nil
			if nowOnline && !online {
				s.logger.Info("connectivity restored, firing deferred triggers")
				for _, tag := range s.registeredTags() {
					s.emit(Event{At: time.Now().UTC(), Tag: tag, Origin: OriginConnectivity})
				}
			}
			online = nowOnline
		}
	}
}

func (s *Source) registeredTags() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	tags := make([]string, 0, len(s.tags))
	for tag := range s.tags {
		tags = append(tags, tag)
	}
	return tags
}

// emit never blocks; a full buffer means triggers are already outstanding
// and coalescing in the worker makes the dropped one redundant.
func (s *Source) emit(event Event) {
	select {
	case s.events <- event:
	default:
		s.logger.Warn("dropping trigger event, buffer full",
			"tag", event.Tag,
			"origin", event.Origin)
	}
}
