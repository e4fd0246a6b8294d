package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the JSON body of every API response. Successful responses
// carry Data; failures carry Error and the status text as Message.
type Envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func respond(c *gin.Context, status int, env Envelope) {
	env.Status = status
	c.JSON(status, env)
}

func failure(status int, errorMessage string) Envelope {
	return Envelope{Status: status, Message: http.StatusText(status), Error: errorMessage}
}

// Success writes a 200 envelope.
func Success(c *gin.Context, message string, data interface{}) {
	respond(c, http.StatusOK, Envelope{Message: message, Data: data})
}

// Created writes a 201 envelope.
func Created(c *gin.Context, message string, data interface{}) {
	respond(c, http.StatusCreated, Envelope{Message: message, Data: data})
}

// Accepted writes a 202 envelope for work that completes after the response,
// such as a scheduled chat reply.
func Accepted(c *gin.Context, message string, data interface{}) {
	respond(c, http.StatusAccepted, Envelope{Message: message, Data: data})
}

// Error writes a failure envelope with the given status.
func Error(c *gin.Context, status int, errorMessage string) {
	respond(c, status, failure(status, errorMessage))
}

// Abort writes a failure envelope and stops the handler chain. Middleware
// uses it to reject a request before it reaches a handler.
func Abort(c *gin.Context, status int, errorMessage string) {
	c.AbortWithStatusJSON(status, failure(status, errorMessage))
}

func BadRequest(c *gin.Context, errorMessage string) {
	Error(c, http.StatusBadRequest, errorMessage)
}

func Unauthorized(c *gin.Context, errorMessage string) {
	Error(c, http.StatusUnauthorized, errorMessage)
}

func NotFound(c *gin.Context, errorMessage string) {
	Error(c, http.StatusNotFound, errorMessage)
}

func InternalServerError(c *gin.Context, errorMessage string) {
	Error(c, http.StatusInternalServerError, errorMessage)
}
