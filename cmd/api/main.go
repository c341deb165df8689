package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rht-21/intervue/internal/auth"
	"github.com/rht-21/intervue/internal/cache"
	"github.com/rht-21/intervue/internal/config"
	"github.com/rht-21/intervue/internal/database"
	"github.com/rht-21/intervue/internal/feedback"
	"github.com/rht-21/intervue/internal/gemini"
	"github.com/rht-21/intervue/internal/handler"
	"github.com/rht-21/intervue/internal/interview"
	"github.com/rht-21/intervue/internal/logger"
	"github.com/rht-21/intervue/internal/mailer"
	"github.com/rht-21/intervue/internal/repository"
	"github.com/rht-21/intervue/internal/reset"
	"github.com/rht-21/intervue/internal/session"
	"go.uber.org/zap"
)

type application struct {
	DB      *pgxpool.Pool
	Logger  *zap.Logger
	Config  *config.Config
	Handler *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	pool, err := database.Connect(ctx, cfg.DB.DSN, cfg.DB.MaxOpenConns, cfg.DB.MaxConnLife)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	rdb := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cache.Ping(ctx, rdb); err != nil {
		sugar.Fatal(err)
	}
	defer rdb.Close()

	repo := repository.NewRepository(pool)

	provider := auth.NewProvider(
		repo.Credential,
		cache.NewCodeLedger(rdb),
		cfg.JWT.Secret,
		cfg.PublicURL,
		cfg.JWT.ProofTTL,
		cfg.JWT.SessionTTL,
		cfg.JWT.ResetCodeTTL,
		log,
	)

	mail := mailer.New(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.MailFrom(), cfg.SMTP.ContactTo)
	generator := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.BaseURL, cfg.Gemini.Timeout)

	handlerApp := &handler.Handler{
		Logger:        log,
		Sessions:      session.NewService(repo.User, provider, log),
		Credentials:   provider,
		Reset:         reset.NewService(repo.User, provider, mail, cfg.PublicURL+"/sign-in", log),
		Directory:     interview.NewDirectory(repo.Interview, log),
		Feedback:      feedback.NewEngine(repo.Feedback, generator, log),
		Mail:          mail,
		SecureCookies: cfg.IsProduction(),
	}

	app := &application{
		DB:      pool,
		Logger:  log,
		Config:  cfg,
		Handler: handlerApp,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
