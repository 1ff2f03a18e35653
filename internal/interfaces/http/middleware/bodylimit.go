package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shoplytics/backend/internal/interfaces/http/dto"
)

// BodyLimit rejects bodies larger than maxBytes with 413 and caps
// chunked bodies while they are read.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.MessageResponse{
				Status:  dto.StatusError,
				Message: dto.MsgRequestTooLarge,
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
