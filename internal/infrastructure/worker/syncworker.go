package worker

import (
	"context"
	"time"

	"github.com/renzofernandezr/StockPortafolioApp/internal/application"
	"github.com/renzofernandezr/StockPortafolioApp/internal/domain"
	infraconfig "github.com/renzofernandezr/StockPortafolioApp/internal/infrastructure/config"

	"go.uber.org/zap"
)

// Syncer runs one reconciliation pass.
type Syncer interface {
	Reconcile(ctx context.Context) (domain.SyncSummary, error)
}

// SyncWorker invokes the reconciler on a fixed interval until the context is
// canceled. One run executes immediately at startup so a fresh deploy does
// not wait a full interval for its first sync.
type SyncWorker struct {
	Syncer Syncer
	Guard  application.RunGuard
	Every  time.Duration
	Log    *zap.Logger
}

func (w *SyncWorker) Start(ctx context.Context) {
	log := w.Log
	if log == nil {
		log = zap.NewNop()
	}
	if w.Every <= 0 {
		w.Every = infraconfig.DefaultSyncEvery
	}
	if w.Guard == nil {
		w.Guard = application.NoopGuard{}
	}

	log.Info("sync_worker_started", zap.Duration("every", w.Every))
	w.tick(ctx, log)

	t := time.NewTicker(w.Every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info("sync_worker_stopped")
			return
		case <-t.C:
			w.tick(ctx, log)
		}
	}
}

func (w *SyncWorker) tick(ctx context.Context, log *zap.Logger) {
	// One reservation per interval slot across replicas. A guard failure is
	// logged and the run proceeds: a duplicate pass is preferable to none.
	slot := time.Now().UTC().Truncate(w.Every).Format(time.RFC3339)
	ok, err := w.Guard.TryReserve(ctx, slot)
	if err != nil {
		log.Warn("guard_unavailable", zap.Error(err))
	} else if !ok {
		log.Info("sync_skipped", zap.String("slot", slot))
		return
	}

	summary, err := w.Syncer.Reconcile(ctx)
	if err != nil {
		log.Error("sync_failed", zap.Error(err))
		return
	}
	for _, res := range summary.Results {
		if res.Status == domain.SyncStatusError {
			log.Warn("symbol_sync_failed",
				zap.String("nemonico", res.Nemonico),
				zap.String("error", res.Err),
			)
		}
	}
	log.Info("sync_done",
		zap.String("today", summary.Today),
		zap.Int("processed", summary.Processed),
	)
}
