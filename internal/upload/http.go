package upload

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mycloudhq/mycloud/internal/account"
	"github.com/mycloudhq/mycloud/internal/hierarchy"
)

// RegisterRoutes mounts the upload endpoint onto the router.
func RegisterRoutes(group *gin.RouterGroup, service *Service) {
	handler := &httpHandler{service: service}
	group.POST("/files", handler.uploadFile)
}

type httpHandler struct {
	service *Service
}

type uploadRequest struct {
	Name        string  `json:"name" binding:"required"`
	SizeBytes   int64   `json:"size_bytes" binding:"min=0"`
	ContentType string  `json:"content_type" binding:"omitempty,max=255"`
	FolderID    *string `json:"folder_id" binding:"omitempty,uuid"`
}

func (h *httpHandler) uploadFile(c *gin.Context) {
	userID, _, ok := account.RequireUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var folderID *uuid.UUID
	if req.FolderID != nil {
		parsed, err := uuid.Parse(*req.FolderID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid folder id"})
			return
		}
		folderID = &parsed
	}

	result, err := h.service.Upload(c.Request.Context(), userID, Input{
		Name:        req.Name,
		SizeBytes:   req.SizeBytes,
		ContentType: req.ContentType,
		FolderID:    folderID,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrQuotaExceeded):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "not enough storage space"})
		case errors.Is(err, ErrInvalidSize), errors.Is(err, hierarchy.ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, hierarchy.ErrFolderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "folder not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"file": result.File,
		"user": result.User.SafeUser(),
	})
}
