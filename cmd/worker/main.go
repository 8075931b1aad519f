package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campaign-studio/backend/internal/config"
	"github.com/campaign-studio/backend/internal/db"
	"github.com/campaign-studio/backend/internal/events"
	"github.com/campaign-studio/backend/internal/models"
	"github.com/campaign-studio/backend/internal/repositories"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	sessionRepo := repositories.NewSessionRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)
	subscriber := events.NewRedisSubscriber(rdb, log)

	_ = subscriber.Subscribe(ctx, events.StreamWorkflow, func(event events.Event) {
		log.Info("workflow event",
			zap.String("type", event.Type),
			zap.String("session_id", event.SessionID()),
		)
	})

	log.Info("worker started", zap.Duration("session_ttl", cfg.SessionTTL))

	expireTicker := time.NewTicker(10 * time.Minute)
	defer expireTicker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-expireTicker.C:
			runSessionExpiry(ctx, sessionRepo, auditRepo, cfg, log)
		case <-sigCh:
			log.Info("shutting down worker")
			cancel()
			return
		case <-ctx.Done():
			return
		}
	}
}

// runSessionExpiry marks stale sessions expired. Remote resources created
// by those sessions stay behind, paused; this job never deletes anything
// on the platform.
func runSessionExpiry(ctx context.Context, sessionRepo *repositories.SessionRepo, auditRepo *repositories.AuditRepo, cfg *config.Config, log *zap.Logger) {
	ids, err := sessionRepo.ExpireStale(ctx, cfg.SessionTTL)
	if err != nil {
		log.Error("session expiry sweep failed", zap.Error(err))
		return
	}
	for _, id := range ids {
		log.Info("session expired", zap.String("session_id", id.String()))
		sid := id
		_ = auditRepo.Log(ctx, models.AuditLog{
			SessionID:  &sid,
			Action:     "workflow_session_expired",
			EntityType: "session",
		})
	}
}
