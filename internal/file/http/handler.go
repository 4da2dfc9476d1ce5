package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kiranraikar/parking-chat-backend/internal/auth"
	"github.com/kiranraikar/parking-chat-backend/internal/file"
	"github.com/kiranraikar/parking-chat-backend/internal/pkg/request"
)

type FileHandler struct {
	service file.Service
}

func NewHandler(service file.Service) *FileHandler {
	return &FileHandler{service: service}
}

// Upload stores a photo, optionally attaching it to a mall via the mall_id
// form field.
func (h *FileHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	var mallID *int64
	if raw := c.PostForm("mall_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mall_id"})
			return
		}
		mallID = &id
	}

	f, err := h.service.Upload(c.Request.Context(), header, auth.GetUserID(c), mallID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file"})
		return
	}
	c.JSON(http.StatusCreated, NewFileResponse(f))
}

// Download streams the original file.
func (h *FileHandler) Download(c *gin.Context) {
	var uri request.ByUUIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file id"})
		return
	}

	stream, f, err := h.service.Download(c.Request.Context(), uri.ID)
	if err != nil {
		if errors.Is(err, file.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to download file"})
		return
	}
	defer stream.Close()

	c.Header("Content-Disposition", `inline; filename="`+f.Filename+`"`)
	c.DataFromReader(http.StatusOK, f.Size, f.ContentType, stream, nil)
}

// Thumbnail streams the derived thumbnail JPEG.
func (h *FileHandler) Thumbnail(c *gin.Context) {
	var uri request.ByUUIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file id"})
		return
	}

	stream, _, err := h.service.DownloadThumbnail(c.Request.Context(), uri.ID)
	if err != nil {
		switch {
		case errors.Is(err, file.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		case errors.Is(err, file.ErrNoThumbnail):
			c.JSON(http.StatusNotFound, gin.H{"error": "thumbnail not available"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to download thumbnail"})
		}
		return
	}
	defer stream.Close()

	c.Header("Content-Type", "image/jpeg")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, stream)
}

// Delete removes a file. Only the uploader or an admin may delete it.
func (h *FileHandler) Delete(c *gin.Context) {
	var uri request.ByUUIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file id"})
		return
	}

	f, err := h.service.Get(c.Request.Context(), uri.ID)
	if err != nil {
		if errors.Is(err, file.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete file"})
		return
	}
	if f.UserID != auth.GetUserID(c) && !auth.IsAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete file"})
		return
	}
	c.Status(http.StatusNoContent)
}
