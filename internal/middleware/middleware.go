package middleware

import (
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/intervu/internal/dto"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/secure"
)

// SecureHeaders sets the standard hardening headers on every response.
func SecureHeaders() gin.HandlerFunc {
	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	return func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}
		c.Next()
	}
}

func clientKey(c *gin.Context) string {
	return c.ClientIP()
}

func tooManyRequests(c *gin.Context, info ratelimit.Info) {
	log.Warn().Str("client_ip", c.ClientIP()).Time("reset", info.ResetTime).Msg("Evaluation rate limit hit")
	c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
		Error:   "Too many requests. Try again later.",
		Details: []string{"retry after " + time.Until(info.ResetTime).Round(time.Second).String()},
	})
}

// EvaluationRateLimit caps evaluator-backed requests per client IP per minute.
// A non-positive limit disables it.
func EvaluationRateLimit(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: uint(perMinute),
	})
	return ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler: tooManyRequests,
		KeyFunc:      clientKey,
	})
}
