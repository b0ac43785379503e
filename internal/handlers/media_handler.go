package handlers

import (
	"net/http"
	"strconv"

	"event_admin/internal/services"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaService services.MediaService
}

func NewMediaHandler(mediaService services.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "file is required")
		return
	}

	category := c.PostForm("category")
	uploadedBy, _ := strconv.ParseUint(c.PostForm("uploaded_by"), 10, 32)

	item, err := h.mediaService.Upload(fileHeader, category, uint(uploadedBy))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, item)
}

func (h *MediaHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	item, err := h.mediaService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, item)
}

func (h *MediaHandler) GetByCategory(c *gin.Context) {
	category := c.Query("category")
	items, err := h.mediaService.GetByCategory(category)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, items)
}

func (h *MediaHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.mediaService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": id})
}
