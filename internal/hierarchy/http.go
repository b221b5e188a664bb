package hierarchy

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mycloudhq/mycloud/internal/account"
)

// RegisterRoutes mounts folder and file endpoints onto the router.
func RegisterRoutes(group *gin.RouterGroup, service *Service) {
	handler := &httpHandler{service: service}
	group.GET("/folders", handler.listChildren)
	group.POST("/folders", handler.createFolder)
	group.DELETE("/folders/:folderID", handler.deleteFolder)
	group.DELETE("/files/:fileID", handler.deleteFile)
}

type httpHandler struct {
	service *Service
}

type createFolderRequest struct {
	Name     string  `json:"name" binding:"required"`
	ParentID *string `json:"parent_id" binding:"omitempty,uuid"`
}

// listChildren renders the current directory listing. The parent_id
// query parameter is omitted for the root.
func (h *httpHandler) listChildren(c *gin.Context) {
	userID, _, ok := account.RequireUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	parentID, ok := parseOptionalID(c.Query("parent_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parent id"})
		return
	}

	folders, files, err := h.service.ListChildren(c.Request.Context(), userID, parentID)
	if err != nil {
		if err == ErrFolderNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "folder not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list folder"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"folders": folders, "files": files})
}

func (h *httpHandler) createFolder(c *gin.Context) {
	userID, _, ok := account.RequireUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req createFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var parentID *uuid.UUID
	if req.ParentID != nil {
		parsed, err := uuid.Parse(*req.ParentID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parent id"})
			return
		}
		parentID = &parsed
	}

	folder, err := h.service.CreateFolder(c.Request.Context(), userID, req.Name, parentID)
	if err != nil {
		switch err {
		case ErrNameRequired:
			c.JSON(http.StatusBadRequest, gin.H{"error": "folder name required"})
		case ErrFolderNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "parent folder not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create folder"})
		}
		return
	}

	c.JSON(http.StatusCreated, folder)
}

func (h *httpHandler) deleteFolder(c *gin.Context) {
	userID, _, ok := account.RequireUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	folderID, err := uuid.Parse(c.Param("folderID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid folder id"})
		return
	}

	if err := h.service.DeleteFolder(c.Request.Context(), userID, folderID); err != nil {
		switch err {
		case ErrFolderNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "folder not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete folder"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteFile removes the file and returns the refreshed user snapshot
// so the caller never works from a stale usage figure.
func (h *httpHandler) deleteFile(c *gin.Context) {
	userID, _, ok := account.RequireUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	fileID, err := uuid.Parse(c.Param("fileID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file id"})
		return
	}

	removed, user, err := h.service.DeleteFile(c.Request.Context(), userID, fileID)
	if err != nil {
		switch err {
		case ErrFileNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete file"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"file": removed, "user": user.SafeUser()})
}

func parseOptionalID(raw string) (*uuid.UUID, bool) {
	if raw == "" {
		return nil, true
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}
	return &parsed, true
}
