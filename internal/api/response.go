// Package api defines the uniform HTTP response envelope.
package api

import "github.com/gin-gonic/gin"

// Envelope is the shape of every response body: {data, message, code}.
// No internal error details ever cross this boundary.
type Envelope struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Respond writes the envelope with the given status. A nil data renders as
// an empty object rather than null, matching the consumer's expectations.
func Respond(c *gin.Context, code int, message string, data any) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(code, Envelope{Data: data, Message: message, Code: code})
}

// AbortUnauthorized stops the request with the standard 401 envelope.
func AbortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(401, Envelope{Data: gin.H{}, Message: "Unauthorized Access", Code: 401})
}
