package utils

import "github.com/gin-gonic/gin"

// JSONError writes the API's uniform error body.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
