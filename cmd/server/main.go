package main

import (
    "context"
    "errors"
    "flag"
    "fmt"
    "log"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/go-chi/chi/v5"
    "github.com/jonboulle/clockwork"

    httpadapter "threathunter/internal/adapters/http"
    "threathunter/internal/adapters/memory"
    pg "threathunter/internal/adapters/postgres"
    rds "threathunter/internal/adapters/redis"
    "threathunter/internal/config"
    "threathunter/internal/logging"
    "threathunter/internal/ports"
    catalogsvc "threathunter/internal/services/catalog"
    sessionsvc "threathunter/internal/services/sessions"
    synthsvc "threathunter/internal/services/synth"
    "threathunter/internal/workers/delayrunner"
)

func main() {
    configPath := flag.String("config", "", "path to a YAML config file (overrides CONFIG_FILE)")
    flag.Parse()

    if err := run(*configPath); err != nil {
        log.Fatal(err)
    }
}

func run(configPath string) error {
    cfg, err := config.Load(configPath)
    if err != nil {
        return fmt.Errorf("config: %w", err)
    }
    policy, err := synthsvc.ParseSeverityPolicy(cfg.SeverityPolicy)
    if err != nil {
        return fmt.Errorf("config: %w", err)
    }

    ctx, cancel := context.WithCancel(context.Background())
    defer cancel()

    store, closeStore, err := openStore(ctx, cfg)
    if err != nil {
        return fmt.Errorf("session store: %w", err)
    }
    defer closeStore()
    logging.Infof("session store: %s", cfg.StoreKind())

    clock := clockwork.NewRealClock()
    sessions := sessionsvc.New(sessionsvc.Config{
        Synth:            synthsvc.New(synthsvc.WithClock(clock), synthsvc.WithSeverityPolicy(policy)),
        Scheduler:        delayrunner.New(clock, cfg.ProgressSteps),
        Store:            store,
        Clock:            clock,
        SearchDelay:      cfg.SearchDelay,
        InfographicDelay: cfg.InfographicDelay,
        TTL:              cfg.SessionTTL,
    })
    defer sessions.Close()
    go sessions.Run(ctx, cfg.SweepInterval)

    srv := httpadapter.New(sessions, catalogsvc.New(), cfg.SessionCookie)
    r := chi.NewRouter()
    r.Mount("/", srv.Routes())

    hs := &http.Server{Addr: cfg.ListenAddr, Handler: r, ReadHeaderTimeout: 10 * time.Second}
    errCh := make(chan error, 1)
    go func() { errCh <- hs.ListenAndServe() }()
    logging.Infof("listening on %s (%s)", cfg.ListenAddr, cfg.Env)

    sigCh := make(chan os.Signal, 1)
    signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
    select {
    case sig := <-sigCh:
        logging.Infof("shutting down on %s", sig)
        cancel()
        sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer scancel()
        if err := hs.Shutdown(sctx); err != nil {
            logging.Errorf("shutdown: %v", err)
        }
    case err := <-errCh:
        if !errors.Is(err, http.ErrServerClosed) {
            return fmt.Errorf("server error: %w", err)
        }
    }
    return nil
}

// openStore picks the session store from the configuration. The returned
// close func is never nil.
func openStore(ctx context.Context, cfg config.Config) (ports.SessionStore, func(), error) {
    switch cfg.StoreKind() {
    case "postgres":
        db, err := pg.Connect(ctx, cfg.DatabaseURL)
        if err != nil {
            return nil, nil, fmt.Errorf("db connect: %w", err)
        }
        if err := db.Migrate(ctx); err != nil {
            db.Close()
            return nil, nil, err
        }
        return db, db.Close, nil
    case "redis":
        s, err := rds.Connect(ctx, cfg.RedisURL, cfg.SessionTTL)
        if err != nil {
            return nil, nil, fmt.Errorf("redis connect: %w", err)
        }
        return s, func() { _ = s.Close() }, nil
    default:
        return memory.NewStore(), func() {}, nil
    }
}
