package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripplanner/planner"
)

const requestIDKey = "requestID"

// Pinger is satisfied by the catalog database when one is configured.
type Pinger interface {
	Ping() error
}

type Handler struct {
	planner       *planner.Planner
	catalogSource string
	store         Pinger
	now           func() time.Time
}

// New wires handlers to a planner. store may be nil when the catalog is not
// database-backed.
func New(p *planner.Planner, catalogSource string, store Pinger) *Handler {
	return &Handler{
		planner:       p,
		catalogSource: catalogSource,
		store:         store,
		now:           time.Now,
	}
}

func NewRouter(h *Handler, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	// Trusted proxies (the service usually sits behind a load balancer)
	_ = r.SetTrustedProxies([]string{"0.0.0.0/0"})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(RequestID())

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/options", h.Options)
		api.GET("/destinations", h.ListDestinations)
		api.GET("/destinations/:id", h.GetDestination)
		api.POST("/plan", h.Plan)
		api.POST("/plan/pdf", h.PlanPDF)
	}

	return r
}

// RequestID tags every request with a UUID, reusing a valid inbound
// X-Request-ID header when the caller supplies one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
