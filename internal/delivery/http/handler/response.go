package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/RomainBraquet/surfai-backend/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// bindError turns gin binding failures into a readable message, expanding
// validator field errors when present.
func bindError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			parts = append(parts, fmt.Sprintf("%s failed on %q", fe.Field(), fe.Tag()))
		}
		return "validation failed: " + strings.Join(parts, ", ")
	}
	return "invalid request body"
}

func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok && id != ""
}
