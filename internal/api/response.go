// Package api defines the HTTP response envelope shared by all endpoints.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint replies with.
// Data is omitted from the JSON body when nil.
type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// send writes the envelope with the given status code.
func send(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{Message: message, Data: data})
}

// Success writes a 200 response.
func Success(c *gin.Context, message string, data any) {
	send(c, http.StatusOK, message, data)
}

// Created writes a 201 response.
func Created(c *gin.Context, message string, data any) {
	send(c, http.StatusCreated, message, data)
}

// BadRequest writes a 400 response.
func BadRequest(c *gin.Context, message string, data any) {
	send(c, http.StatusBadRequest, message, data)
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context, message string, data any) {
	send(c, http.StatusUnauthorized, message, data)
}

// Forbidden writes a 403 response.
func Forbidden(c *gin.Context, message string, data any) {
	send(c, http.StatusForbidden, message, data)
}

// NotFound writes a 404 response.
func NotFound(c *gin.Context, message string, data any) {
	send(c, http.StatusNotFound, message, data)
}

// TooManyRequests writes a 429 response.
func TooManyRequests(c *gin.Context, message string, data any) {
	send(c, http.StatusTooManyRequests, message, data)
}

// ServerError writes a 500 response.
func ServerError(c *gin.Context, message string, data any) {
	send(c, http.StatusInternalServerError, message, data)
}
