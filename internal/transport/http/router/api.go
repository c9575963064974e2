package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/CorralesK/TubeKidsBackend/internal/core/auth"
	"github.com/CorralesK/TubeKidsBackend/internal/transport/http/handler"
	mdw "github.com/CorralesK/TubeKidsBackend/internal/transport/http/middleware"
)

// NewAPIEngine assembles the HTTP surface. All profile/video routes sit
// behind the bearer-auth middleware; user creation, credential check and the
// avatar catalog are public.
func NewAPIEngine(
	l *zap.Logger,
	jwter *auth.JWTer,
	users *handler.UserHandler,
	profiles *handler.ProfileHandler,
	videos *handler.VideoHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// public
	api.POST("/users", users.Create)
	api.GET("/users", users.VerifyCredentials)
	api.GET("/profiles/avatar", profiles.Avatars)

	// bearer credential required
	authed := api.Group("")
	authed.Use(mdw.AuthBearer(jwter))

	authed.GET("/users/pin", users.CheckPIN)

	authed.GET("/profiles", profiles.Get)
	authed.POST("/profiles", profiles.Create)
	authed.PATCH("/profiles", profiles.Patch)
	authed.PUT("/profiles", profiles.Patch)
	authed.DELETE("/profiles", profiles.Delete)
	authed.GET("/profiles/pin", profiles.CheckPIN)

	authed.GET("/videos", videos.Get)
	authed.POST("/videos", videos.Create)
	authed.PATCH("/videos", videos.Patch)
	authed.PUT("/videos", videos.Patch)
	authed.DELETE("/videos", videos.Delete)

	return r
}
