package apiHttp

import (
	"io"
	"net/http"
	"os"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/cheechan-golf/backend/docs"
	"github.com/cheechan-golf/backend/pkg/limiter"
	"github.com/cheechan-golf/backend/pkg/logger"
	"github.com/cheechan-golf/backend/pkg/validator"

	internalV1 "github.com/cheechan-golf/backend/internal/api/http/internal/v1"
	"github.com/cheechan-golf/backend/internal/config"
	"github.com/cheechan-golf/backend/internal/service"
)

type Handler struct {
	services *service.Services
	config   *config.Config
}

func NewHandlers(services *service.Services, cfg *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   cfg,
	}
}

func (h *Handler) Init(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	validator.RegisterGinValidator()

	router.Use(
		ginzap.Ginzap(logger.Logger(), time.RFC3339, true),
		limiter.Limit(cfg.Limiter.RPS, cfg.Limiter.Burst, cfg.Limiter.TTL),
		corsMiddleware(cfg.CORS.Origins),
	)
	router.Use(ginzap.RecoveryWithZap(logger.Logger(), true))

	if cfg.HttpServer.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.NewHandler()))
	}

	// Intake pages for the phone verification flow. The phone page posts
	// to /user/request-otp and hands the returned session token over to
	// the verify page.
	router.GET("/phone", servePage("./web/phone.html"))
	router.GET("/checkOtp", servePage("./web/checkOtp.html"))

	h.initAPI(router)

	return router
}

func (h *Handler) initAPI(router *gin.Engine) {
	internalHandlersV1 := internalV1.NewHandler(h.services)
	internalHandlersV1.Init(&router.RouterGroup)
}

func servePage(path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := os.Open(path)
		if err != nil {
			c.String(http.StatusInternalServerError, "Failed to open file")
			return
		}
		defer file.Close()

		htmlContent, err := io.ReadAll(file)
		if err != nil {
			c.String(http.StatusInternalServerError, "Failed to read file")
			return
		}

		c.Data(http.StatusOK, "text/html; charset=utf-8", htmlContent)
	}
}
