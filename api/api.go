package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"projection/internal/domain"
	"projection/internal/logger"
	l1_service "projection/internal/service/l1"
	l3_service "projection/internal/service/l3"
	"projection/internal/util"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

type ApiHandler struct {
	SimulationConfig     util.SimulationConfig
	SimulationService    l3_service.SimulationService
	AssetStatsService    l1_service.AssetStatsService
	DepositImportService l1_service.DepositImportService
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to projection"})
	})
	router.POST("/simulate", m.simulate)
	router.POST("/api/montecarlo", m.simulate)
	router.POST("/assetStats", m.assetStats)
	router.POST("/importDeposits", m.importDeposits)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

// errorStatus maps an error to the status code and the message the caller
// sees. internal failures never leak details
func errorStatus(err error) (int, string) {
	switch {
	case domain.IsInvalidInput(err):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &domain.UpstreamError{}):
		return http.StatusBadGateway, err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "simulation timed out"
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, "request canceled"
	}
	return http.StatusInternalServerError, "simulation error"
}

func returnErrorJson(err error, c *gin.Context) {
	code, message := errorStatus(err)
	lg := logger.FromContext(c)
	if code >= 500 {
		lg.Errorw("request failed", "status", code, "error", err)
	} else {
		lg.Infow("request rejected", "status", code, "error", err.Error())
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": message,
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c).Infow("request rejected", "status", code, "error", err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// logRequestMiddleware tags the request with an id, puts a request scoped
// logger and profile in the context and logs the outcome
func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header(requestIDHeader, requestID)

	lg := zap.S().With(
		"requestID", requestID,
		"method", c.Request.Method,
		"route", c.Request.URL.Path,
	)
	profile, endProfile := domain.NewProfile()

	ctx := logger.WithLogger(c.Request.Context(), lg)
	ctx = context.WithValue(ctx, domain.ContextProfileKey, profile)
	c.Request = c.Request.WithContext(ctx)
	c.Set(logger.ContextKey, lg)
	c.Set(domain.ContextProfileKey, profile)

	start := time.Now()
	c.Next()
	endProfile()

	if spans, err := profile.ToJsonBytes(); err == nil && len(profile.Spans) > 0 {
		lg.Debugw("request profile", "spans", string(spans))
	}

	lg.Infow(
		"request complete",
		"status", c.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
		"ip", c.ClientIP(),
	)
}
