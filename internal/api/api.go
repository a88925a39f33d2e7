package api

import (
	"context"
	"net/http"
	"time"

	agentHandler "loyalty-server/internal/agents/handler"
	authHandler "loyalty-server/internal/auth/handler"
	bonusHandler "loyalty-server/internal/bonus/handler"
	queueHandler "loyalty-server/internal/callqueue/handler"
	contactHandler "loyalty-server/internal/contacts/handler"
	miniappHandler "loyalty-server/internal/miniapp/handler"
	notificationHandler "loyalty-server/internal/notifications/handler"
	segmentHandler "loyalty-server/internal/segments/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger reports whether the database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers groups every HTTP handler the API routes to
type Handlers struct {
	Auth          authHandler.Handler
	Agents        agentHandler.Handler
	Bonus         bonusHandler.Handler
	Queues        queueHandler.Handler
	Contacts      contactHandler.Handler
	Notifications notificationHandler.Handler
	Segments      segmentHandler.Handler
	MiniApp       miniappHandler.Handler
	// MiniAppLimit runs after Mini App auth, nil disables it
	MiniAppLimit gin.HandlerFunc
}

type API struct {
	router   *gin.RouterGroup
	handlers Handlers
	db       Pinger
	registry *prometheus.Registry
}

func New(router *gin.RouterGroup, handlers Handlers, db Pinger, registry *prometheus.Registry) API {
	return API{
		router:   router,
		handlers: handlers,
		db:       db,
		registry: registry,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.Metrics()

	apiGroup := a.router.Group("/api")

	admin := apiGroup.Group("/admin", a.handlers.Auth.HandleJWTMiddleware)
	{
		admin.GET("/agents/:agent_id", a.handlers.Agents.HandleGetAgent)
		admin.PUT("/agents/:agent_id/telegram", a.handlers.Agents.HandleLinkTelegram)

		admin.GET("/agents/:agent_id/balance", a.handlers.Bonus.HandleGetBalance)
		admin.GET("/agents/:agent_id/balance/verify", a.handlers.Bonus.HandleVerifyBalance)
		admin.GET("/agents/:agent_id/tier", a.handlers.Bonus.HandleGetTier)
		admin.POST("/agents/:agent_id/accruals", a.handlers.Bonus.HandleAccrue)
		admin.POST("/agents/:agent_id/redemptions", a.handlers.Bonus.HandleRedeem)
		admin.POST("/agents/:agent_id/purchases", a.handlers.Bonus.HandleAccruePurchase)
		admin.GET("/transactions", a.handlers.Bonus.HandleListTransactions)

		admin.GET("/queues/:queue_type", a.handlers.Queues.HandleListQueue)
		admin.POST("/queues/reclassify", a.handlers.Queues.HandleReclassify)
		admin.POST("/queues/:queue_type/broadcast", a.handlers.Notifications.HandleBroadcast)

		admin.POST("/contacts", a.handlers.Contacts.HandleRecordContact)
		admin.GET("/agents/:agent_id/contacts", a.handlers.Contacts.HandleListContacts)

		admin.POST("/notifications/send", a.handlers.Notifications.HandleSend)

		admin.POST("/segments/recompute", a.handlers.Segments.HandleRecompute)
		admin.GET("/agents/:agent_id/segment", a.handlers.Segments.HandleGetSegment)
	}

	miniapp := apiGroup.Group("/miniapp", a.handlers.Auth.HandleMiniAppMiddleware)
	if a.handlers.MiniAppLimit != nil {
		miniapp.Use(a.handlers.MiniAppLimit)
	}
	{
		miniapp.GET("/me", a.handlers.MiniApp.HandleMe)
		miniapp.GET("/me/transactions", a.handlers.MiniApp.HandleTransactions)
		miniapp.POST("/me/redemptions", a.handlers.MiniApp.HandleRedeem)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := a.db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "database unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}

func (a *API) Metrics() {
	a.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{})))
}
