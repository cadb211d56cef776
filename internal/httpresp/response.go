package httpresp

import "github.com/gin-gonic/gin"

// Indicador de sucesso de mutação: {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Message: message})
}
