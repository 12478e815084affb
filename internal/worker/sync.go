// Package worker hosts the snapshot sync publisher. It mirrors the ledger's
// persisted collections onto a message broker so an off-site copy can follow
// the front desk without touching its store.
package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/clinicflow/ledger-api/internal/store"
	"github.com/clinicflow/ledger-api/pkg/logger"
	"github.com/clinicflow/ledger-api/pkg/messaging"
	"github.com/clinicflow/ledger-api/pkg/metrics"
)

type SyncConfig struct {
	PollInterval  time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
}

// Snapshot is the published envelope: the collection key, the publish time
// and the collection exactly as persisted.
type Snapshot struct {
	Key         string          `json:"key"`
	PublishedAt int64           `json:"publishedAt"`
	Data        json.RawMessage `json:"data"`
}

type SyncPublisher struct {
	kv      store.KV
	broker  messaging.Broker
	config  SyncConfig
	logger  *logger.Logger
	metrics *metrics.Metrics
}

var syncedKeys = map[string]string{
	store.KeyBookings: "cfp.bookings",
	store.KeyPatients: "cfp.patients",
	store.KeySettings: "cfp.settings",
}

func NewSyncPublisher(kv store.KV, broker messaging.Broker, config SyncConfig, logger *logger.Logger, metrics *metrics.Metrics) *SyncPublisher {
	if config.PollInterval <= 0 {
		config.PollInterval = 30 * time.Second
	}
	if config.RetryAttempts <= 0 {
		config.RetryAttempts = 3
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = 2 * time.Second
	}
	return &SyncPublisher{
		kv:      kv,
		broker:  broker,
		config:  config,
		logger:  logger,
		metrics: metrics,
	}
}

func (p *SyncPublisher) Start(ctx context.Context) {
	ticker := time.NewTicker(p.config.PollInterval)
	defer ticker.Stop()

	p.logger.Info("starting snapshot sync publisher")

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("shutting down snapshot sync publisher")
			return
		case <-ticker.C:
			p.publishAll(ctx)
		}
	}
}

func (p *SyncPublisher) publishAll(ctx context.Context) {
	timer := prometheus.NewTimer(p.metrics.SnapshotLatency)
	defer timer.ObserveDuration()

	for key, channel := range syncedKeys {
		if err := p.publishKey(ctx, key, channel); err != nil {
			p.metrics.SnapshotsFailed.Inc()
			p.logger.Error(err, "failed to publish snapshot", "key", key)
			continue
		}
		p.metrics.SnapshotsPublished.Inc()
	}
}

func (p *SyncPublisher) publishKey(ctx context.Context, key, channel string) error {
	var raw json.RawMessage
	if err := p.kv.Load(ctx, key, &raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		return nil
	}

	snapshot := Snapshot{
		Key:         key,
		PublishedAt: time.Now().UnixMilli(),
		Data:        raw,
	}
	return retry(p.config.RetryAttempts, p.config.RetryDelay, func() error {
		return p.broker.Publish(ctx, channel, snapshot)
	})
}

func retry(attempts int, delay time.Duration, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i < attempts-1 {
			time.Sleep(delay)
		}
	}
	return err
}
