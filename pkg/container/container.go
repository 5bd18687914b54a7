package container

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"kahramana-backend/internal/config"
	cartHandler "kahramana-backend/internal/domains/cart/handler"
	cartRepo "kahramana-backend/internal/domains/cart/repository"
	cartService "kahramana-backend/internal/domains/cart/service"
	menuHandler "kahramana-backend/internal/domains/menu/handler"
	menuModel "kahramana-backend/internal/domains/menu/model"
	menuRepo "kahramana-backend/internal/domains/menu/repository"
	menuService "kahramana-backend/internal/domains/menu/service"
	orderHandler "kahramana-backend/internal/domains/order/handler"
	orderModel "kahramana-backend/internal/domains/order/model"
	orderService "kahramana-backend/internal/domains/order/service"
	infraCache "kahramana-backend/internal/infrastructure/cache"
	"kahramana-backend/internal/infrastructure/database"
	"kahramana-backend/internal/infrastructure/storage"
	"kahramana-backend/pkg/cache"
	"kahramana-backend/pkg/logger"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph shared by cmd/api and
// cmd/worker.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config      *config.Config
	DB          *database.PostgresDB  // nil unless CART_STORAGE=postgres
	Cache       cache.Cache           // redis, or in-process for CART_STORAGE=memory
	Storage     *storage.MinIOStorage // nil unless MENU_SOURCE=minio
	AsynqClient *asynq.Client

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	MenuRepo    menuRepo.Repository
	CartStorage cartRepo.Storage

	// ========================================
	// SERVICE LAYER
	// ========================================
	MenuService     *menuService.MenuService
	CartService     *cartService.CartService
	Composer        *orderService.Composer
	CheckoutService *orderService.CheckoutService

	// ========================================
	// HANDLER LAYER
	// ========================================
	MenuHandler  *menuHandler.Handler
	CartHandler  *cartHandler.Handler
	OrderHandler *orderHandler.Handler

	stopJanitor context.CancelFunc
}

const memorySweepInterval = time.Minute

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the graph in dependency order:
// config, infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	// STEP 1: configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Init(cfg.App.Environment)
	logger.Info("Config loaded", map[string]interface{}{
		"environment":  cfg.App.Environment,
		"cart_storage": cfg.Cart.Storage,
		"menu_source":  cfg.Menu.Source,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// STEP 2: infrastructure
	if err := c.initInfrastructure(ctx); err != nil {
		c.Cleanup()
		return nil, err
	}

	// STEP 3: repositories
	if err := c.initRepositories(); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to init repositories: %w", err)
	}

	// STEP 4: services
	if err := c.initServices(ctx); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to init services: %w", err)
	}

	// STEP 5: handlers
	c.initHandlers()

	logger.Info("DI container initialized", map[string]interface{}{})
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initInfrastructure(ctx context.Context) error {
	cfg := c.Config

	// Redis backs both the cart cache and the asynq broker
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	c.AsynqClient = asynq.NewClient(redisOpt)

	switch cfg.Cart.Storage {
	case "redis":
		rc := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
		if err := rc.Connect(ctx); err != nil {
			// carts degrade to empty on read failures, so keep going
			logger.Warn("Redis connection failed (non-critical)", map[string]interface{}{
				"error": err.Error(),
			})
		}
		c.Cache = rc
	default:
		mc := infraCache.NewMemoryCache()
		janitorCtx, stop := context.WithCancel(context.Background())
		mc.StartJanitor(janitorCtx, memorySweepInterval)
		c.stopJanitor = stop
		c.Cache = mc
	}

	if cfg.Cart.Storage == "postgres" {
		dbConfig, err := cfg.LoadDatabaseConfig()
		if err != nil {
			return fmt.Errorf("failed to load database config: %w", err)
		}

		db := database.NewPostgresDB(dbConfig)
		if err := db.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.DB = db

		if err := db.EnsureSchema(ctx, cartRepo.Schema...); err != nil {
			return fmt.Errorf("failed to apply cart schema: %w", err)
		}
	}

	if cfg.Menu.Source == "minio" {
		store, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
		if err != nil {
			return fmt.Errorf("failed to init minio: %w", err)
		}
		c.Storage = store
	}

	return nil
}

func (c *Container) initRepositories() error {
	cfg := c.Config

	switch cfg.Menu.Source {
	case "minio":
		c.MenuRepo = menuRepo.NewMinIORepository(c.Storage, cfg.Menu.ObjectKey)
	case "file":
		c.MenuRepo = menuRepo.NewFileRepository(cfg.Menu.Path)
	default:
		return fmt.Errorf("%w: %q", menuModel.ErrUnknownSource, cfg.Menu.Source)
	}

	if c.DB != nil {
		c.CartStorage = cartRepo.NewPostgresStorage(c.DB.Pool, cfg.Cart.TTL)
	} else {
		c.CartStorage = cartRepo.NewCacheStorage(c.Cache, cfg.Cart.TTL)
	}

	return nil
}

func (c *Container) initServices(ctx context.Context) error {
	cfg := c.Config

	c.MenuService = menuService.NewMenuService(c.MenuRepo, cfg.Menu.DefaultCurrency)
	if _, err := c.MenuService.Reload(ctx); err != nil {
		// the API still serves carts; menu endpoints answer 503 until a reload succeeds
		logger.Warn("Initial menu load failed", map[string]interface{}{
			"source": c.MenuRepo.Source(),
			"error":  err.Error(),
		})
	}

	c.CartService = cartService.NewCartService(c.CartStorage, c.MenuService, cartService.Config{
		MaxQuantity:     cfg.Cart.MaxQuantity,
		LegacyKeyFormat: cfg.Cart.LegacyKey,
	})

	c.Composer = orderService.NewComposer(orderService.NewOrderNumberFunc(cfg.Order.NumberPrefix, time.Now))

	c.CheckoutService = orderService.NewCheckoutService(
		c.CartService,
		c.MenuService,
		c.Composer,
		branchesFromConfig(cfg.Branches),
		c.AsynqClient,
		orderService.CheckoutConfig{
			Currency:   cfg.Order.Currency,
			Decimals:   cfg.Order.Decimals,
			ClearAfter: cfg.Cart.ClearAfterCheckout,
		},
	)

	return nil
}

func (c *Container) initHandlers() {
	decimals := c.Config.Order.Decimals

	c.MenuHandler = menuHandler.NewHandler(c.MenuService, decimals)
	c.CartHandler = cartHandler.NewHandler(c.CartService, c.MenuService, decimals)
	c.OrderHandler = orderHandler.NewHandler(c.CheckoutService, c.MenuService)
}

func branchesFromConfig(in []config.BranchConfig) []orderModel.Branch {
	out := make([]orderModel.Branch, 0, len(in))
	for _, b := range in {
		out = append(out, orderModel.Branch{
			ID:       b.ID,
			NameAR:   b.NameAR,
			NameEN:   b.NameEN,
			Phone:    b.Phone,
			WhatsApp: b.WhatsApp,
		})
	}
	return out
}

// Cleanup releases connections. Safe on a partially built container.
func (c *Container) Cleanup() {
	if c.stopJanitor != nil {
		c.stopJanitor()
	}

	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			logger.Error("Failed to close asynq client", err)
		}
	}

	if c.DB != nil {
		_ = c.DB.Close()
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Error("Failed to close Redis", err)
		}
	}

	logger.Info("Container cleanup completed", map[string]interface{}{})
}
