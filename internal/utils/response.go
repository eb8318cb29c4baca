package utils

import "github.com/gin-gonic/gin"

// SuccessResponse renders {"message": ..., <payload keys>...}.
func SuccessResponse(c *gin.Context, statusCode int, message string, payload gin.H) {
	body := gin.H{"message": message}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// InternalError reports a store or infra failure with the underlying error
// text. This is an internal tool; leaking the error string is acceptable.
func InternalError(c *gin.Context, err error) {
	c.JSON(500, gin.H{"message": "Internal server error", "error": err.Error()})
}
