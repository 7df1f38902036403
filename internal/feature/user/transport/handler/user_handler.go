// Package handler provides the HTTP handlers for the user feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"

	"fanbase_backend/internal/api"
	"fanbase_backend/internal/feature/user/domain/entity"
	"fanbase_backend/internal/feature/user/transport/http/dto"
	"fanbase_backend/internal/feature/user/usecase"
	"fanbase_backend/internal/platform/validation"
)

// UserUsecase defines the user operations the handlers depend on.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type UserUsecase interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	Update(ctx context.Context, id string, changes usecase.UserUpdate) (*entity.User, error)
	Delete(ctx context.Context, id string) error
	UploadDocument(ctx context.Context, id, docType, docNumber, filename, contentType string, image []byte) (*usecase.DocumentStatus, error)
	ConnectSocialMedia(ctx context.Context, id, platform, accountID string) error
	ValidateEsportsProfile(ctx context.Context, id, platform, profileURL string) (*entity.ProfileValidation, error)
}

// UserHandler handles HTTP requests for user CRUD and enrichment flows.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Create handles POST /users.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, "Validation error", gin.H{"error": validation.Format(err)})
		return
	}

	user, err := h.users.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			api.BadRequest(c, "User already exists with this email or CPF", nil)
			return
		}
		slog.Error("creating user failed", "error", err)
		api.ServerError(c, "Error creating user", nil)
		return
	}

	api.Created(c, "User created successfully", gin.H{
		"user": gin.H{"id": user.ID, "name": user.Name, "email": user.Email},
	})
}

// GetByID handles GET /users/:id.
func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.users.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			api.NotFound(c, "User not found", nil)
			return
		}
		slog.Error("retrieving user failed", "error", err, "id", c.Param("id"))
		api.ServerError(c, "Error retrieving user", nil)
		return
	}
	api.Success(c, "User retrieved successfully", gin.H{"user": user})
}

// Update handles PUT /users/:id with partial update semantics.
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, "Validation error", gin.H{"error": validation.Format(err)})
		return
	}

	user, err := h.users.Update(c.Request.Context(), c.Param("id"), req.ToUserUpdate())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyUpdate):
			api.BadRequest(c, "Validation error", gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrUserNotFound):
			api.NotFound(c, "User not found", nil)
		case errors.Is(err, usecase.ErrUserAlreadyExists):
			api.BadRequest(c, "User already exists with this email or CPF", nil)
		default:
			slog.Error("updating user failed", "error", err, "id", c.Param("id"))
			api.ServerError(c, "Error updating user", nil)
		}
		return
	}

	api.Success(c, "User updated successfully", gin.H{
		"user": gin.H{"id": user.ID, "name": user.Name, "email": user.Email},
	})
}

// Delete handles DELETE /users/:id (hard delete).
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			api.NotFound(c, "User not found", nil)
			return
		}
		slog.Error("deleting user failed", "error", err, "id", c.Param("id"))
		api.ServerError(c, "Error deleting user", nil)
		return
	}
	api.Success(c, "User deleted successfully", nil)
}

// UploadDocument handles POST /users/:id/document.
//
// Content-Type: multipart/form-data with fields documentType,
// documentNumber and the image file "documentImage" (max 10MB).
func (h *UserHandler) UploadDocument(c *gin.Context) {
	var req dto.UploadDocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		api.BadRequest(c, "Validation error", gin.H{"error": validation.Format(err)})
		return
	}

	file, err := c.FormFile("documentImage")
	if err != nil {
		api.BadRequest(c, "Document image is required", nil)
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("opening uploaded document failed", "error", err)
		api.ServerError(c, "Error uploading document", nil)
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("closing uploaded document failed", "error", err)
		}
	}()

	image, err := io.ReadAll(f)
	if err != nil {
		slog.Error("reading uploaded document failed", "error", err)
		api.ServerError(c, "Error uploading document", nil)
		return
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	status, err := h.users.UploadDocument(c.Request.Context(), c.Param("id"),
		req.DocumentType, req.DocumentNumber, file.Filename, contentType, image)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			api.NotFound(c, "User not found", nil)
		case errors.Is(err, usecase.ErrImageTooLarge):
			api.BadRequest(c, "Document image exceeds the maximum allowed size", nil)
		default:
			slog.Error("document upload failed", "error", err, "id", c.Param("id"))
			api.ServerError(c, "Error uploading document", nil)
		}
		return
	}

	api.Success(c, "Document uploaded successfully", gin.H{"documentStatus": status})
}

// ConnectSocialMedia handles POST /users/:id/social-media.
func (h *UserHandler) ConnectSocialMedia(c *gin.Context) {
	var req dto.ConnectSocialMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, "Validation error", gin.H{"error": validation.Format(err)})
		return
	}

	err := h.users.ConnectSocialMedia(c.Request.Context(), c.Param("id"), req.Platform, req.AccountID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			api.NotFound(c, "User not found", nil)
			return
		}
		slog.Error("connecting social media failed", "error", err, "id", c.Param("id"), "platform", req.Platform)
		api.ServerError(c, "Error connecting social media account", nil)
		return
	}

	api.Success(c, fmt.Sprintf("%s account connected successfully", req.Platform), nil)
}

// ValidateEsportsProfile handles POST /users/:id/esports-profile.
func (h *UserHandler) ValidateEsportsProfile(c *gin.Context) {
	var req dto.EsportsProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, "Validation error", gin.H{"error": validation.Format(err)})
		return
	}

	result, err := h.users.ValidateEsportsProfile(c.Request.Context(), c.Param("id"), req.Platform, req.ProfileURL)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			api.NotFound(c, "User not found", nil)
			return
		}
		slog.Error("validating e-sports profile failed", "error", err, "id", c.Param("id"), "platform", req.Platform)
		api.ServerError(c, "Error validating e-sports profile", nil)
		return
	}

	api.Success(c, "E-sports profile validated", gin.H{"validationResult": result})
}
