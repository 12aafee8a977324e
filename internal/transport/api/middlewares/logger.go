package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger пишет строку лога на каждый запрос. Уровень зависит от статуса ответа.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	entry := l.WithFields(logrus.Fields{
		"component": "http",
		"module":    "router",
	})

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		e := entry.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     path,
			"route":    c.FullPath(),
			"status":   status,
			"latency":  time.Since(start).String(),
			"clientIP": c.ClientIP(),
			"size":     c.Writer.Size(),
		})
		if private := c.Errors.ByType(gin.ErrorTypePrivate); len(private) > 0 {
			e = e.WithField("errors", private.String())
		}

		switch {
		case status >= http.StatusInternalServerError:
			e.Error("request failed")
		case status >= http.StatusBadRequest:
			e.Warn("request rejected")
		default:
			e.Info("request served")
		}
	}
}
