package app

import (
	"context"
	authAPI "royal_casino/internal/api/auth"
	conciergeAPI "royal_casino/internal/api/concierge"
	gameAPI "royal_casino/internal/api/game"
	"royal_casino/internal/api/middleware"
	sessionAPI "royal_casino/internal/api/session"
	"royal_casino/internal/clock"
	"royal_casino/internal/config"
	"royal_casino/internal/config/env"
	"royal_casino/internal/repository"
	"royal_casino/internal/repository/balance_repo"
	"royal_casino/internal/repository/ledger_repo"
	"royal_casino/internal/repository/schema"
	"royal_casino/internal/repository/stats_repo"
	"royal_casino/internal/repository/vault_repo"
	"royal_casino/internal/service"
	"royal_casino/internal/service/auth"
	"royal_casino/internal/service/concierge"
	"royal_casino/internal/service/dividend"
	"royal_casino/internal/service/jackpot"
	"royal_casino/internal/service/leaderboard"
	"royal_casino/internal/service/notify"
	"royal_casino/internal/service/session"
	"royal_casino/internal/service/settlement"
	"royal_casino/internal/service/vault"
	"royal_casino/pkg/rng"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const (
	gamesConfigPath = "config.yaml"
	statsWindow     = 1000
)

type ServiceProvider struct {
	// TXManager
	txManager settlement.TxManager

	// Configs
	storageCfg   config.StorageConfig
	pgConfig     config.PGConfig
	redisConfig  config.RedisConfig
	jwtConfig    config.JWTConfig
	timersCfg    config.TimersConfig
	telegramCfg  config.TelegramConfig
	conciergeCfg config.ConciergeConfig
	logCfg       config.LogConfig
	gamesCfg     config.GamesConfig

	// Clients
	dbClient    *pgxpool.Pool
	redisClient *redis.Client

	// Repositories
	balanceRepo repository.BalanceRepository
	ledgerRepo  repository.LedgerRepository
	vaultRepo   repository.VaultRepository
	statsRepo   repository.StatsRepository

	// Services
	src             rng.Source
	settlement      service.SettlementService
	jackpotServ     service.JackpotService
	vaultServ       service.VaultService
	notifier        service.NotificationService
	sessionServ     service.SessionService
	dividendServ    service.DividendService
	leaderboardServ service.LeaderboardService
	authServ        service.AuthService
	conciergeServ   service.ConciergeService

	// Handlers
	authHand      *authAPI.Handler
	gameHand      *gameAPI.Handler
	sessionHand   *sessionAPI.Handler
	conciergeHand *conciergeAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) StorageCfg() config.StorageConfig {
	if sp.storageCfg == nil {
		cfg, err := env.NewStorageConfig()
		if err != nil {
			panic("failed to get storage config: " + err.Error())
		}
		sp.storageCfg = cfg
	}
	return sp.storageCfg
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) RedisConfig() config.RedisConfig {
	if sp.redisConfig == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisConfig = cfg
	}
	return sp.redisConfig
}

func (sp *ServiceProvider) JWTConfig() config.JWTConfig {
	if sp.jwtConfig == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtConfig = cfg
	}
	return sp.jwtConfig
}

func (sp *ServiceProvider) TimersCfg() config.TimersConfig {
	if sp.timersCfg == nil {
		cfg, err := env.NewTimersConfig()
		if err != nil {
			panic("failed to get timers config: " + err.Error())
		}
		sp.timersCfg = cfg
	}
	return sp.timersCfg
}

func (sp *ServiceProvider) TelegramCfg() config.TelegramConfig {
	if sp.telegramCfg == nil {
		cfg, err := env.NewTelegramConfig()
		if err != nil {
			panic("failed to get telegram config: " + err.Error())
		}
		sp.telegramCfg = cfg
	}
	return sp.telegramCfg
}

func (sp *ServiceProvider) ConciergeCfg() config.ConciergeConfig {
	if sp.conciergeCfg == nil {
		cfg, err := env.NewConciergeConfig()
		if err != nil {
			panic("failed to get concierge config: " + err.Error())
		}
		sp.conciergeCfg = cfg
	}
	return sp.conciergeCfg
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) GamesCfg() config.GamesConfig {
	if sp.gamesCfg == nil {
		cfg, err := env.NewGamesConfigFromYAML(gamesConfigPath)
		if err != nil {
			panic("failed to get games config: " + err.Error())
		}
		sp.gamesCfg = cfg
	}
	return sp.gamesCfg
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		err = schema.Migrate(ctx, dbc)
		if err != nil {
			panic("failed to apply schema: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) RedisClient(ctx context.Context) *redis.Client {
	if sp.redisClient == nil {
		cfg := sp.RedisConfig()
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Addr(),
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})
		if err := client.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = client
	}
	return sp.redisClient
}

func (sp *ServiceProvider) usePostgres() bool {
	return sp.StorageCfg().Backend() == env.BackendPostgres
}

func (sp *ServiceProvider) TXManager(ctx context.Context) settlement.TxManager {
	if sp.txManager == nil {
		if !sp.usePostgres() {
			sp.txManager = settlement.NewPassThroughTx()
			return sp.txManager
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) BalanceRepository(ctx context.Context) repository.BalanceRepository {
	if sp.balanceRepo == nil {
		switch sp.StorageCfg().Backend() {
		case env.BackendPostgres:
			sp.balanceRepo = balance_repo.NewPostgresRepository(sp.DBClient(ctx))
		case env.BackendRedis:
			sp.balanceRepo = balance_repo.NewRedisRepository(sp.RedisClient(ctx))
		default:
			sp.balanceRepo = balance_repo.NewMemoryRepository()
		}
	}
	return sp.balanceRepo
}

// LedgerRepository is durable only on postgres; the redis backend keeps
// balances alone.
func (sp *ServiceProvider) LedgerRepository(ctx context.Context) repository.LedgerRepository {
	if sp.ledgerRepo == nil {
		if sp.usePostgres() {
			sp.ledgerRepo = ledger_repo.NewPostgresRepository(sp.DBClient(ctx), 0)
		} else {
			sp.ledgerRepo = ledger_repo.NewMemoryRepository(0)
		}
	}
	return sp.ledgerRepo
}

func (sp *ServiceProvider) VaultRepository(ctx context.Context) repository.VaultRepository {
	if sp.vaultRepo == nil {
		if sp.usePostgres() {
			sp.vaultRepo = vault_repo.NewPostgresRepository(sp.DBClient(ctx))
		} else {
			sp.vaultRepo = vault_repo.NewMemoryRepository()
		}
	}
	return sp.vaultRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(statsWindow)
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) Source() rng.Source {
	if sp.src == nil {
		sp.src = rng.New(0)
	}
	return sp.src
}

func (sp *ServiceProvider) SettlementService(ctx context.Context) service.SettlementService {
	if sp.settlement == nil {
		sp.settlement = settlement.NewSettlementService(
			sp.BalanceRepository(ctx),
			sp.LedgerRepository(ctx),
			sp.TXManager(ctx),
			clock.RealClock{},
			sp.StorageCfg().InitialBalance(),
		)
	}
	return sp.settlement
}

func (sp *ServiceProvider) JackpotService() service.JackpotService {
	if sp.jackpotServ == nil {
		sp.jackpotServ = jackpot.NewJackpotService(sp.Source(), sp.GamesCfg().Jackpot(), sp.TimersCfg().JackpotInterval())
	}
	return sp.jackpotServ
}

func (sp *ServiceProvider) VaultService(ctx context.Context) service.VaultService {
	if sp.vaultServ == nil {
		sp.vaultServ = vault.NewVaultService(sp.SettlementService(ctx), sp.VaultRepository(ctx))
	}
	return sp.vaultServ
}

func (sp *ServiceProvider) Notifier() service.NotificationService {
	if sp.notifier == nil {
		sinks := []service.NotificationService{notify.NewLogSink()}
		if cfg := sp.TelegramCfg(); cfg.Enabled() {
			bot, err := notify.NewTelegramBot(cfg.Token())
			if err != nil {
				log.WithError(err).Warn("telegram notifications disabled")
			} else {
				sinks = append(sinks, notify.NewTelegramSink(bot, cfg.ChatID(), 0))
			}
		}
		sp.notifier = notify.NewNotificationService(sinks...)
	}
	return sp.notifier
}

func (sp *ServiceProvider) SessionService(ctx context.Context) service.SessionService {
	if sp.sessionServ == nil {
		sp.sessionServ = session.NewSessionService(
			sp.SettlementService(ctx),
			sp.VaultService(ctx),
			sp.JackpotService(),
			sp.Notifier(),
			sp.StatsRepository(),
			sp.EngineFactories(),
			sp.TimersCfg().TickInterval(),
		)
	}
	return sp.sessionServ
}

func (sp *ServiceProvider) DividendService(ctx context.Context) service.DividendService {
	if sp.dividendServ == nil {
		sp.dividendServ = dividend.NewDividendService(
			sp.SettlementService(ctx),
			sp.SessionService(ctx),
			sp.TimersCfg().DividendInterval(),
		)
	}
	return sp.dividendServ
}

func (sp *ServiceProvider) LeaderboardService(ctx context.Context) service.LeaderboardService {
	if sp.leaderboardServ == nil {
		sp.leaderboardServ = leaderboard.NewLeaderboardService(sp.SettlementService(ctx), sp.SessionService(ctx), nil)
	}
	return sp.leaderboardServ
}

func (sp *ServiceProvider) AuthService() service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(sp.JWTConfig(), clock.RealClock{})
	}
	return sp.authServ
}

func (sp *ServiceProvider) ConciergeService() service.ConciergeService {
	if sp.conciergeServ == nil {
		sp.conciergeServ = concierge.NewConciergeService(sp.ConciergeCfg(), nil)
	}
	return sp.conciergeServ
}

func (sp *ServiceProvider) AuthHandler() *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService()})
	}
	return sp.authHand
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Sessions:   sp.SessionService(ctx),
			Settlement: sp.SettlementService(ctx),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) SessionHandler(ctx context.Context) *sessionAPI.Handler {
	if sp.sessionHand == nil {
		sp.sessionHand = sessionAPI.NewHandler(sessionAPI.HandlerDeps{
			Sessions:    sp.SessionService(ctx),
			Settlement:  sp.SettlementService(ctx),
			Vault:       sp.VaultService(ctx),
			Leaderboard: sp.LeaderboardService(ctx),
			Stats:       sp.StatsRepository(),
		})
	}
	return sp.sessionHand
}

func (sp *ServiceProvider) ConciergeHandler() *conciergeAPI.Handler {
	if sp.conciergeHand == nil {
		sp.conciergeHand = conciergeAPI.NewHandler(conciergeAPI.HandlerDeps{Serv: sp.ConciergeService()})
	}
	return sp.conciergeHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.Recoverer)
		r.Use(middleware.AccessLog)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Public endpoints
		r.Post("/auth/guest", sp.AuthHandler().Guest)
		r.Get("/stats", sp.SessionHandler(ctx).Stats)

		// Player endpoints
		r.Group(func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.AuthService()))

			sessionHandler := sp.SessionHandler(ctx)
			rr.Get("/session", sessionHandler.Overview)
			rr.Get("/ledger", sessionHandler.Ledger)
			rr.Get("/leaderboard", sessionHandler.Leaderboard)
			rr.Post("/vault/{item}", sessionHandler.Purchase)

			gameHandler := sp.GameHandler(ctx)
			rr.Route("/games/{game}", func(gr chi.Router) {
				gr.Get("/", gameHandler.Snapshot)
				gr.Post("/bet", gameHandler.Bet)
				gr.Post("/actions/{action}", gameHandler.Act)
			})

			rr.Post("/concierge", sp.ConciergeHandler().Ask)
		})

		sp.router = r
	}
	return sp.router
}

// Close releases clients opened by the provider.
func (sp *ServiceProvider) Close() {
	if sp.notifier != nil {
		sp.notifier.Close()
	}
	if sp.redisClient != nil {
		if err := sp.redisClient.Close(); err != nil {
			log.WithError(err).Warn("close redis client")
		}
	}
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}
