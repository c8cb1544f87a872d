package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/rio1412/acoount251013kakei/internal/auth"
	"github.com/rio1412/acoount251013kakei/internal/config"
	"github.com/rio1412/acoount251013kakei/internal/handlers"
	"github.com/rio1412/acoount251013kakei/internal/middleware"
	"github.com/rio1412/acoount251013kakei/internal/models"
	"github.com/rio1412/acoount251013kakei/internal/storage"
	"github.com/rio1412/acoount251013kakei/internal/storage/sqlite"
	"github.com/rio1412/acoount251013kakei/pkg/logging"
)

func main() {
	logging.Setup()

	cfg := config.FromEnv()
	if cfg.SecretKey == "change_this" && cfg.Env != "dev" {
		slog.Error("SECRET_KEY must be set outside dev")
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	hasher := auth.NewBcryptHasher()
	tokens := auth.NewTokenService(cfg.SecretKey, cfg.TokenValidity)

	if err := seedInitialUsers(context.Background(), store, hasher); err != nil {
		slog.Error("Failed to seed initial users", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	handlers.New(store, tokens, hasher, cfg.SecureCookies(), slog.Default()).Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Middleware chain: metrics innermost so it sees the final status,
	// logging outermost so every request is logged
	handler := middleware.Logging(
		middleware.CORS(cfg.FrontendOrigin,
			middleware.Metrics(mux)))

	// HTTP/2 cleartext so local clients can multiplex without TLS
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	slog.Info("Server starting", "address", cfg.Addr, "env", cfg.Env)
	if err := http.ListenAndServe(cfg.Addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// seedInitialUsers creates the default alice (admin) and bob (user)
// accounts when the database is empty, so a fresh install is immediately
// usable.
func seedInitialUsers(ctx context.Context, store storage.Store, hasher auth.Hasher) error {
	count, err := store.CountUsers(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seeds := []struct {
		username string
		password string
		role     models.Role
	}{
		{"alice", "alice_pass", models.RoleAdmin},
		{"bob", "bob_pass", models.RoleUser},
	}
	for _, seed := range seeds {
		digest, err := hasher.Hash(seed.password)
		if err != nil {
			return err
		}
		user := &models.User{
			Username:     seed.username,
			PasswordHash: digest,
			Role:         seed.role,
		}
		if err := store.CreateUser(ctx, user); err != nil {
			return err
		}
		slog.Info("Seeded initial user", "username", seed.username, "role", seed.role)
	}
	return nil
}
