package handlers

import (
	"net/http"

	"event_admin/internal/models"
	"event_admin/internal/services"

	"github.com/gin-gonic/gin"
)

type FAQHandler struct {
	faqService services.FAQService
}

func NewFAQHandler(faqService services.FAQService) *FAQHandler {
	return &FAQHandler{faqService: faqService}
}

type FAQRequest struct {
	Question    string `json:"question" binding:"required"`
	Answer      string `json:"answer" binding:"required"`
	Category    string `json:"category"`
	SortOrder   int    `json:"sort_order"`
	IsPublished *bool  `json:"is_published"`
}

func (h *FAQHandler) CreateFAQ(c *gin.Context) {
	var req FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	faq := &models.FAQ{
		Question:    req.Question,
		Answer:      req.Answer,
		Category:    req.Category,
		SortOrder:   req.SortOrder,
		IsPublished: true,
	}
	if req.IsPublished != nil {
		faq.IsPublished = *req.IsPublished
	}
	if err := h.faqService.CreateFAQ(faq); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, faq)
}

func (h *FAQHandler) GetFAQs(c *gin.Context) {
	if c.Query("published") == "true" {
		faqs, err := h.faqService.GetPublishedFAQs()
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, faqs)
		return
	}

	faqs, err := h.faqService.GetAllFAQs()
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, faqs)
}

func (h *FAQHandler) GetFAQ(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	faq, err := h.faqService.GetFAQ(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, faq)
}

func (h *FAQHandler) UpdateFAQ(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	faq, err := h.faqService.GetFAQ(id)
	if err != nil {
		respondError(c, err)
		return
	}

	var req FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	faq.Question = req.Question
	faq.Answer = req.Answer
	faq.Category = req.Category
	faq.SortOrder = req.SortOrder
	if req.IsPublished != nil {
		faq.IsPublished = *req.IsPublished
	}
	if err := h.faqService.UpdateFAQ(faq); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, faq)
}

func (h *FAQHandler) DeleteFAQ(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.faqService.DeleteFAQ(id); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": id})
}
