// Package app wires configuration, storage, collaborators, services, and
// the HTTP server into a runnable unit.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/oauth2"

	"github.com/utafrali/ReviewDeskGo/internal/config"
	"github.com/utafrali/ReviewDeskGo/internal/event"
	"github.com/utafrali/ReviewDeskGo/internal/gmb"
	handler "github.com/utafrali/ReviewDeskGo/internal/handler/http"
	"github.com/utafrali/ReviewDeskGo/internal/repository"
	"github.com/utafrali/ReviewDeskGo/internal/repository/memory"
	"github.com/utafrali/ReviewDeskGo/internal/repository/postgres"
	"github.com/utafrali/ReviewDeskGo/internal/repository/rediscache"
	"github.com/utafrali/ReviewDeskGo/internal/service"
	"github.com/utafrali/ReviewDeskGo/pkg/database"
	"github.com/utafrali/ReviewDeskGo/pkg/health"
	"github.com/utafrali/ReviewDeskGo/pkg/httpclient"
	"github.com/utafrali/ReviewDeskGo/pkg/kafka"
)

const serviceName = "reviewdesk"

// App owns the server and every resource that needs closing on shutdown.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	server *http.Server

	pool     *pgxpool.Pool
	redis    *redis.Client
	producer *kafka.Producer
}

type repositories struct {
	reviews     repository.ReviewRepository
	responses   repository.ResponseRepository
	templates   repository.TemplateRepository
	users       repository.UserRepository
	credentials repository.CredentialRepository
}

// New assembles the application from configuration.
func New(ctx context.Context, cfg *config.Config, l *slog.Logger) (*App, error) {
	app := &App{cfg: cfg, logger: l}

	repos, err := app.buildRepositories(ctx)
	if err != nil {
		return nil, err
	}

	drafts := app.buildDraftStore(ctx)
	publisher := app.buildPublisher()

	userSvc := service.NewUserService(repos.users)
	admin, err := userSvc.EnsureDefaultUser(ctx, cfg.DefaultAdminUser, cfg.DefaultAdminPassword)
	if err != nil {
		return nil, fmt.Errorf("seed default user: %w", err)
	}
	adminID := int64(1)
	if admin != nil {
		adminID = admin.ID
	}

	credentialSvc := service.NewCredentialService(repos.credentials)
	gmbClient := app.buildGMBClient(credentialSvc, adminID)

	reviewSvc := service.NewReviewService(repos.reviews, repos.responses, drafts, publisher, l)
	responseSvc := service.NewResponseService(repos.responses, repos.reviews)
	templateSvc := service.NewTemplateService(repos.templates)
	dashboardSvc := service.NewDashboardService(repos.reviews)
	suggestionSvc := service.NewSuggestionService(repos.reviews, openai.NewClient(cfg.OpenAIAPIKey), cfg.OpenAIModel, l)
	syncSvc := service.NewSyncService(gmbClient, repos.reviews, repos.responses, publisher, l)
	exportSvc := service.NewExportService(repos.reviews)
	draftSvc := service.NewDraftService(drafts, repos.reviews)

	handlers := handler.Handlers{
		Reviews:     handler.NewReviewHandler(reviewSvc, l),
		Responses:   handler.NewResponseHandler(responseSvc, l),
		Templates:   handler.NewTemplateHandler(templateSvc, l),
		Dashboard:   handler.NewDashboardHandler(dashboardSvc, l),
		Suggestions: handler.NewSuggestionHandler(suggestionSvc, l),
		GMB:         handler.NewGMBHandler(syncSvc, credentialSvc, gmb.OAuthConfig(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL), adminID, l),
		Export:      handler.NewExportHandler(exportSvc, l),
		Drafts:      handler.NewDraftHandler(draftSvc, l),
		Auth:        handler.NewAuthHandler(userSvc, l),
		Health:      health.NewHandler(serviceName, app.healthCheckers()...),
	}

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler.NewRouter(handlers, l, cfg.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return app, nil
}

// Run serves HTTP until the listener fails or Shutdown is called.
func (a *App) Run() error {
	a.logger.Info("server starting",
		slog.String("addr", a.server.Addr),
		slog.String("storage", a.cfg.StorageBackend),
		slog.String("environment", a.cfg.Environment),
	)
	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and closes held resources.
func (a *App) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.ShutdownTimeout)
	defer cancel()

	err := a.server.Shutdown(ctx)

	if a.producer != nil {
		if cerr := a.producer.Close(); cerr != nil {
			a.logger.Warn("kafka producer close failed", slog.String("error", cerr.Error()))
		}
	}
	if a.redis != nil {
		if cerr := a.redis.Close(); cerr != nil {
			a.logger.Warn("redis close failed", slog.String("error", cerr.Error()))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
	return err
}

func (a *App) buildRepositories(ctx context.Context) (*repositories, error) {
	switch a.cfg.StorageBackend {
	case "postgres":
		pool, err := database.NewPostgresPool(ctx, a.cfg.Postgres)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		a.pool = pool
		return &repositories{
			reviews:     postgres.NewReviewRepository(pool),
			responses:   postgres.NewResponseRepository(pool),
			templates:   postgres.NewTemplateRepository(pool),
			users:       postgres.NewUserRepository(pool),
			credentials: postgres.NewCredentialRepository(pool),
		}, nil

	case "memory":
		store := memory.NewStore()
		if a.cfg.SeedDemoData {
			store.SeedDemoData()
			a.logger.Info("demo data seeded")
		}
		return &repositories{
			reviews:     store.Reviews(),
			responses:   store.Responses(),
			templates:   store.Templates(),
			users:       store.Users(),
			credentials: store.Credentials(),
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", a.cfg.StorageBackend)
	}
}

func (a *App) buildDraftStore(ctx context.Context) repository.DraftStore {
	if a.cfg.RedisEnabled {
		client, err := database.NewRedisClient(ctx, a.cfg.Redis)
		if err != nil {
			a.logger.Warn("redis unavailable, drafts held in memory", slog.String("error", err.Error()))
			return memory.NewDraftStore(a.cfg.DraftTTL)
		}
		a.redis = client
		return rediscache.NewDraftStore(client, a.cfg.DraftTTL)
	}
	return memory.NewDraftStore(a.cfg.DraftTTL)
}

func (a *App) buildPublisher() event.Publisher {
	if !a.cfg.KafkaEnabled {
		return event.NoopPublisher{}
	}
	a.producer = kafka.NewProducer(a.cfg.KafkaBrokers, event.Topic, serviceName, a.logger)
	return event.NewKafkaPublisher(a.producer)
}

func (a *App) buildGMBClient(creds *service.CredentialService, userID int64) gmb.Client {
	if a.cfg.GMBUseStub {
		return gmb.NewStubClient()
	}

	tokenSource := &storedTokenSource{
		oauth:    gmb.OAuthConfig(a.cfg.GoogleClientID, a.cfg.GoogleClientSecret, a.cfg.GoogleRedirectURL),
		creds:    creds,
		userID:   userID,
		fallback: a.cfg.GoogleRefreshToken,
	}

	outbound := httpclient.New("gmb", httpclient.Config{
		Timeout:    15 * time.Second,
		MaxRetries: 2,
	}, a.logger)
	return gmb.NewAPIClient(outbound, tokenSource, a.logger)
}

// storedTokenSource mints access tokens from the refresh token saved by
// the OAuth callback, falling back to the statically configured one, so a
// user who connected once does not have to re-authorize after a restart.
type storedTokenSource struct {
	oauth    *oauth2.Config
	creds    *service.CredentialService
	userID   int64
	fallback string
}

func (s *storedTokenSource) Token() (*oauth2.Token, error) {
	ctx := context.Background()

	refresh := s.fallback
	if tokens, err := s.creds.Tokens(ctx, s.userID); err == nil && tokens.RefreshToken != "" {
		refresh = tokens.RefreshToken
	}
	if refresh == "" {
		return nil, fmt.Errorf("no google refresh token available: authorize via the oauth callback first")
	}

	return s.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refresh}).Token()
}

func (a *App) healthCheckers() []health.Checker {
	var checkers []health.Checker
	if a.pool != nil {
		pool := a.pool
		checkers = append(checkers, health.CheckerFunc{
			CheckName: "postgres",
			Fn:        func(ctx context.Context) error { return pool.Ping(ctx) },
		})
	}
	if a.redis != nil {
		client := a.redis
		checkers = append(checkers, health.CheckerFunc{
			CheckName: "redis",
			Fn:        func(ctx context.Context) error { return client.Ping(ctx).Err() },
		})
	}
	return checkers
}
