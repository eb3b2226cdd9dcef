package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestLogger tags every request with an ID (the caller's X-Request-ID or
// a fresh UUID), echoes it back, and logs one line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)

		c.Next()

		log.Printf("[%s] %d %s %s %v", id, c.Writer.Status(), c.Request.Method, c.Request.URL.Path, time.Since(start))
	}
}
