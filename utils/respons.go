package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondValidationErrors carries the per-field failures so forms can show
// inline messages next to each input.
func RespondValidationErrors(c *gin.Context, errs map[string]string) {
	c.JSON(http.StatusBadRequest, JSONResponse{
		Status:  false,
		Message: "validation failed",
		Data:    gin.H{"errors": errs},
	})
}
