// Package mockapi is a local stand-in for the production food-ordering
// backend. It implements the endpoints the client core consumes so the
// handshake and the dashboards can be exercised without the real service.
// Business logic is deliberately shallow; auth and wire shapes are faithful.
package mockapi

import (
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"foodbot-miniapp/internal/common/middleware"
	"foodbot-miniapp/internal/features/api"
	"foodbot-miniapp/internal/features/roles"
)

// Config carries the few knobs the stub needs.
type Config struct {
	// BotToken validates inbound init-data. Required: refusing to start
	// beats silently accepting unsigned payloads.
	BotToken string
	// Origin is the allowed CORS origin; the real consumers are browsers.
	Origin string
	// Debug stretches init-data expiry so stale captured payloads still
	// work during development.
	Debug bool
}

type session struct {
	UserID   int64
	Name     string
	Role     roles.Role
	Username string
}

type profile struct {
	ID        int64
	FirstName string
	LastName  string
	Username  string
	Phone     string
}

type staffAccount struct {
	Password string
	Role     roles.Role
}

// Server holds the in-memory world: sessions, profiles, menu, orders.
type Server struct {
	cfg Config

	mu       sync.Mutex
	sessions map[string]session
	profiles map[int64]*profile
	menu     []api.MenuItem
	orders   []api.Order
	staff    []api.Staff
	accounts map[string]staffAccount
	settings api.RestaurantSettings
}

func NewServer(cfg Config) *Server {
	s := &Server{
		cfg:      cfg,
		sessions: make(map[string]session),
		profiles: make(map[int64]*profile),
		accounts: make(map[string]staffAccount),
	}
	s.seed()
	return s
}

// Router builds the gin engine with the same middleware order the real
// backend uses: request id, logging, recovery, CORS.
func (s *Server) Router() *gin.Engine {
	if !s.cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{s.cfg.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "x-telegram-init-data"}
	router.Use(cors.New(corsConfig))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "time": time.Now().UTC()})
	})

	router.POST("/api/v1/auth/telegram", s.handleTelegramAuth)
	router.GET("/api/v1/me", s.requireAuth(), s.handleMe)
	router.POST("/update-phone", s.requireAuth(), s.handleUpdatePhone)

	router.POST("/orders", s.requireAuth(), s.handlePlaceOrder)
	router.GET("/api/v1/orders/me", s.requireAuth(), s.handleMyOrders)
	router.POST("/api/v1/create-payment", s.requireAuth(), s.handleCreatePayment)

	admin := router.Group("/api/v1/admin")
	admin.POST("/login", s.handleAdminLogin)

	staffOnly := admin.Group("", s.requireRole(roles.RoleAdmin, roles.RoleKitchen, roles.RoleDelivery))
	staffOnly.GET("/kitchen/orders", s.handleKitchenOrders)
	staffOnly.GET("/delivery/orders", s.handleDeliveryOrders)
	staffOnly.POST("/delivery/orders/:id/confirm", s.handleConfirmDelivery)
	staffOnly.PUT("/all-orders/:id/status", s.handleUpdateOrderStatus)
	staffOnly.PUT("/settings/password", s.handleChangePassword)

	adminOnly := admin.Group("", s.requireRole(roles.RoleAdmin))
	adminOnly.GET("/all-orders", s.handleListOrders)
	adminOnly.POST("/orders/assign", s.handleAssignDelivery)
	adminOnly.GET("/menu", s.handleListMenu)
	adminOnly.POST("/menu", s.handleCreateMenuItem)
	adminOnly.PUT("/menu/:id", s.handleUpdateMenuItem)
	adminOnly.DELETE("/menu/:id", s.handleDeleteMenuItem)
	adminOnly.POST("/upload/image", s.handleUploadImage)
	adminOnly.GET("/staff", s.handleListStaff)
	adminOnly.POST("/staff", s.handleCreateStaff)
	adminOnly.PUT("/staff/:id", s.handleUpdateStaff)
	adminOnly.DELETE("/staff/:id", s.handleDeleteStaff)
	adminOnly.GET("/settings/restaurant", s.handleGetSettings)
	adminOnly.PUT("/settings/restaurant", s.handleUpdateSettings)
	adminOnly.GET("/analytics", s.handleAnalytics)
	adminOnly.GET("/dashboard/stats", s.handleDashboardStats)

	return router
}

// respondData wraps a payload in the admin success envelope.
func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"data": data, "success": true})
}

// respondDetail is the uniform error envelope.
func respondDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}
