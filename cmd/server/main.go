package main

import (
	"context"
	"log"
	"time"

	"animochi/internal/adapter/entropy"
	httpadapter "animochi/internal/adapter/http"
	metricsinmem "animochi/internal/adapter/metrics/inmemory"
	"animochi/internal/adapter/notify/lognotify"
	gormrepo "animochi/internal/adapter/repo/gorm"
	"animochi/internal/app/action"
	"animochi/internal/app/lifecycle"
	"animochi/internal/app/monster"
	questapp "animochi/internal/app/quest"
	"animochi/internal/app/wallet"
	"animochi/internal/config"
	"animochi/internal/domain/pet"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.DBDSN == "" {
		log.Fatal("ANIMOCHI_DB_DSN is required")
	}

	db, err := gormrepo.OpenPostgres(cfg.DBDSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, cfg.MigrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	monsterRepo := gormrepo.NewMonsterRepo(db)
	walletRepo := gormrepo.NewWalletRepo(db)
	eventRepo := gormrepo.NewActionEventRepo(db)
	questRepo := gormrepo.NewQuestRepo(db)
	txManager := gormrepo.NewTxManager(db)

	tuning := pet.DefaultTuning()
	randSource := entropy.Source{}
	notifier := lognotify.Notifier{}
	kpiRecorder := metricsinmem.NewRecorder()

	questUC := questapp.UseCase{
		TxManager: txManager,
		Quests:    questRepo,
		Wallets:   walletRepo,
		Notifier:  notifier,
		NewID:     uuid.NewString,
		Validity:  cfg.QuestValidity,
	}
	lifecycleUC := lifecycle.UseCase{
		TxManager: txManager,
		Monsters:  monsterRepo,
		Wallets:   walletRepo,
		Events:    eventRepo,
		Notifier:  notifier,
		Metrics:   kpiRecorder,
		Tuning:    tuning,
		Rand:      randSource,
	}

	h := httpadapter.Handler{
		MonsterUC: monster.UseCase{
			Monsters: monsterRepo,
			Quests:   questUC,
			Notifier: notifier,
			Rand:     randSource,
			NewID:    uuid.NewString,
		},
		ActionUC: action.UseCase{
			TxManager: txManager,
			Monsters:  monsterRepo,
			Wallets:   walletRepo,
			Events:    eventRepo,
			Quests:    questUC,
			Notifier:  notifier,
			Metrics:   kpiRecorder,
			Tuning:    tuning,
		},
		LifecycleUC: lifecycleUC,
		QuestUC:     questUC,
		WalletUC:    wallet.UseCase{Wallets: walletRepo},
		KPI:         kpiRecorder,
	}

	if cfg.TickInterval > 0 {
		go runTicker(lifecycleUC, questUC, cfg.TickInterval)
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	hlog.Infof("animochi server listening on %s", cfg.Addr)
	s.Spin()
}

// runTicker stands in for the external cron in local runs. The HTTP tick
// endpoint stays the authoritative trigger; both paths are idempotent so
// running them together is safe.
func runTicker(lifecycleUC lifecycle.UseCase, questUC questapp.UseCase, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for now := range ticker.C {
		report, err := lifecycleUC.Tick(context.Background(), now)
		if err != nil {
			hlog.Errorf("tick: %v", err)
			continue
		}
		if report.Due > 0 {
			hlog.Infof("tick: due=%d processed=%d skipped=%d", report.Due, report.Processed, report.Skipped)
		}
		if err := questUC.ExpireDue(context.Background(), now); err != nil {
			hlog.Errorf("quest expiry sweep: %v", err)
		}
	}
}
