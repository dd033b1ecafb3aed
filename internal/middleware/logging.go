package middleware

import (
	"time"

	"loafer-be/internal/logger"
	"loafer-be/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger logs every request in structured form once it completes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log := logger.FromCtx(c.Request.Context())
		userID, _ := utils.GetUserIDFromContext(c.Request.Context())

		log.Info("incoming request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("ip", c.ClientIP()),
			zap.String("user_id", userID),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
