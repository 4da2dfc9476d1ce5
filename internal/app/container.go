package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kiranraikar/parking-chat-backend/internal/api"
	"github.com/kiranraikar/parking-chat-backend/internal/auth"
	"github.com/kiranraikar/parking-chat-backend/internal/booking"
	"github.com/kiranraikar/parking-chat-backend/internal/chat"
	"github.com/kiranraikar/parking-chat-backend/internal/chat/history"
	"github.com/kiranraikar/parking-chat-backend/internal/file"
	"github.com/kiranraikar/parking-chat-backend/internal/mall"
	"github.com/kiranraikar/parking-chat-backend/internal/pkg/storage"
	"github.com/kiranraikar/parking-chat-backend/internal/slot"
	"github.com/kiranraikar/parking-chat-backend/internal/user"
	"github.com/kiranraikar/parking-chat-backend/internal/vehicle"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	LLMTimeout    time.Duration

	RedisAddr  string
	SessionTTL time.Duration

	UploadDir string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager

	store       chat.ContextStore
	redisClient *redis.Client
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Mall Module
	mallRepo := mall.NewPgxRepository(cfg.DBPool)
	mallService := mall.NewService(mallRepo)

	// Slot Module
	slotRepo := slot.NewPgxRepository(cfg.DBPool)
	slotService := slot.NewService(slotRepo, mallService)

	// Vehicle Module
	vehicleRepo := vehicle.NewPgxRepository(cfg.DBPool)
	vehicleService := vehicle.NewService(vehicleRepo)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, slotService, vehicleService)

	// Chat History Module
	historyRepo := history.NewPgxRepository(cfg.DBPool)
	historyService := history.NewService(historyRepo)

	// File Module
	localStore, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("init upload storage failed: %w", err)
	}
	fileRepo := file.NewPgxRepository(cfg.DBPool)
	fileService := file.NewService(fileRepo, localStore)

	// Chat Module. The session store is Redis-backed when an address is
	// configured, in-process otherwise.
	var (
		store       chat.ContextStore
		redisClient *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		store = chat.NewRedisStore(redisClient, cfg.SessionTTL)
	} else {
		store = chat.NewMemoryStore(cfg.SessionTTL)
	}

	var completer chat.Completer
	if cfg.OpenAIAPIKey != "" {
		completer = chat.NewOpenAICompleter(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.LLMTimeout)
	}

	agent := chat.NewAgent(store, mallService, slotService, bookingService, historyService, completer)

	// API Router Config
	routerParams := api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		UserService:    userService,
		MallService:    mallService,
		SlotService:    slotService,
		BookingService: bookingService,
		HistoryService: historyService,
		FileService:    fileService,
		Agent:          agent,
		JWTManager:     jwtManager,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:      router,
		JWTManager:  jwtManager,
		store:       store,
		redisClient: redisClient,
	}, nil
}

// Close releases resources owned by the container. The database pool is
// owned by the caller and is not touched here.
func (c *Container) Close() error {
	if ms, ok := c.store.(*chat.MemoryStore); ok {
		ms.Close()
	}
	if c.redisClient != nil {
		return c.redisClient.Close()
	}
	return nil
}
