package handlers

import (
	"net/http"

	"event_admin/internal/models"
	"event_admin/internal/services"

	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	staffService services.StaffService
}

func NewStaffHandler(staffService services.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

type StaffRequest struct {
	Name        string `json:"name" binding:"required"`
	Role        string `json:"role" binding:"required"`
	Bio         string `json:"bio"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	IsActive    *bool  `json:"is_active"`
}

func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	staff := &models.Staff{
		Name:        req.Name,
		Role:        req.Role,
		Bio:         req.Bio,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		IsActive:    true,
	}
	if req.IsActive != nil {
		staff.IsActive = *req.IsActive
	}
	if err := h.staffService.CreateStaff(staff); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, staff)
}

func (h *StaffHandler) GetStaff(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	staff, err := h.staffService.GetStaff(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, staff)
}

func (h *StaffHandler) GetAllStaff(c *gin.Context) {
	if c.Query("active") == "true" {
		staff, err := h.staffService.GetActiveStaff()
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, staff)
		return
	}

	staff, err := h.staffService.GetAllStaff()
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, staff)
}

func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	staff, err := h.staffService.GetStaff(id)
	if err != nil {
		respondError(c, err)
		return
	}

	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	staff.Name = req.Name
	staff.Role = req.Role
	staff.Bio = req.Bio
	staff.Email = req.Email
	staff.PhoneNumber = req.PhoneNumber
	if req.IsActive != nil {
		staff.IsActive = *req.IsActive
	}
	if err := h.staffService.UpdateStaff(staff); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, staff)
}

type SetStaffPhotoRequest struct {
	PhotoKey string `json:"photo_key" binding:"required"`
}

func (h *StaffHandler) SetPhoto(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req SetStaffPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	staff, err := h.staffService.SetPhoto(id, req.PhotoKey)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, staff)
}

func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.staffService.DeleteStaff(id); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": id})
}
