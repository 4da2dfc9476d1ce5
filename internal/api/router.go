package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kiranraikar/parking-chat-backend/internal/auth"
	"github.com/kiranraikar/parking-chat-backend/internal/booking"
	bookingHttp "github.com/kiranraikar/parking-chat-backend/internal/booking/http"
	"github.com/kiranraikar/parking-chat-backend/internal/chat"
	"github.com/kiranraikar/parking-chat-backend/internal/chat/history"
	historyHttp "github.com/kiranraikar/parking-chat-backend/internal/chat/history/http"
	chatHttp "github.com/kiranraikar/parking-chat-backend/internal/chat/http"
	"github.com/kiranraikar/parking-chat-backend/internal/file"
	fileHttp "github.com/kiranraikar/parking-chat-backend/internal/file/http"
	"github.com/kiranraikar/parking-chat-backend/internal/mall"
	mallHttp "github.com/kiranraikar/parking-chat-backend/internal/mall/http"
	"github.com/kiranraikar/parking-chat-backend/internal/slot"
	slotHttp "github.com/kiranraikar/parking-chat-backend/internal/slot/http"
	"github.com/kiranraikar/parking-chat-backend/internal/user"
	userHttp "github.com/kiranraikar/parking-chat-backend/internal/user/http"
)

// Config carries everything the router needs to assemble middleware and
// module routes.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService    user.Service
	MallService    mall.Service
	SlotService    slot.Service
	BookingService booking.Service
	HistoryService history.Service
	FileService    file.Service
	Agent          *chat.Agent
	JWTManager     *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and
// registering routes for the modules.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(corsConfig(cfg)))

	r.GET("/health-check", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// authMiddleware: Validates if the request carries a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// adminMiddleware: Further checks the authenticated user's admin claim.
	adminMiddleware := auth.AdminRequired()

	userHandler := userHttp.NewUserHandler(cfg.UserService, cfg.JWTManager)
	mallHandler := mallHttp.NewHandler(cfg.MallService)
	slotHandler := slotHttp.NewHandler(cfg.SlotService, cfg.BookingService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	historyHandler := historyHttp.NewHandler(cfg.HistoryService)
	fileHandler := fileHttp.NewHandler(cfg.FileService)
	chatHandler := chatHttp.NewHandler(cfg.Agent)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware)
		mallHttp.RegisterRoutes(v1, mallHandler, authMiddleware, adminMiddleware)
		slotHttp.RegisterRoutes(v1, slotHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		historyHttp.RegisterRoutes(v1, historyHandler, authMiddleware)
		fileHttp.RegisterRoutes(v1, fileHandler, authMiddleware)
		chatHttp.RegisterRoutes(v1, chatHandler, authMiddleware)
	}

	return r
}

func corsConfig(cfg Config) cors.Config {
	config := cors.DefaultConfig()

	if cfg.IsProduction && cfg.ProdOrigins != "" {
		config.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		config.AllowOrigins = []string{
			"http://localhost:3000", // Frontend
			"http://localhost:8081", // Swagger
		}
	}

	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}

	return config
}
