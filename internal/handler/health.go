package handler

import (
	"context"
	"net/http"
	"time"

	"retailapi/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health godoc
// @Summary      Estado del servicio
// @Description  Verifica la conexión con la base de datos y, si está configurado, con Redis.
// @Tags         health
// @Produce      json
// @Success      200  {object} map[string]interface{}
// @Failure      503  {object} map[string]interface{}
// @Router       /health [get]
//
// Redis is optional: a nil client reports "disabled" and never fails the check,
// and a Redis outage only degrades rate limiting, so it is reported without
// turning the response into a 503.
func Health(db *gorm.DB, rdb *redis.Client, breaker *infra.CircuitBreaker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		redisStatus := "disabled"
		if rdb != nil {
			redisStatus = "connected"
			if rdb.Ping(ctx).Err() != nil {
				redisStatus = "error"
			}
		}

		body := gin.H{
			"ok":    dbStatus == "connected",
			"db":    dbStatus,
			"redis": redisStatus,
		}
		if breaker != nil {
			body["redis_breaker"] = breaker.State().String()
		}

		status := http.StatusOK
		if dbStatus != "connected" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, body)
	}
}
