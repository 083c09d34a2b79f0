package handler

import (
	"net/http"
	"strconv"
	"time"

	requestdto "github.com/craveo/marketplace-service/internal/usecase/dto/request"
	"github.com/craveo/marketplace-service/internal/usecase/request"
	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	requests request.RequestUsecase
}

func NewRequestHandler(requests request.RequestUsecase) *RequestHandler {
	return &RequestHandler{requests: requests}
}

type createRequestBody struct {
	CustomerID  string   `json:"customer_id" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Quantity    int      `json:"quantity" binding:"required"`
	OfferPrice  *float64 `json:"offer_price"`
	ImagePath   string   `json:"image_path"`
}

func (h *RequestHandler) Create(c *gin.Context) {
	var body createRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.requests.Create(c.Request.Context(), &requestdto.CreateRequestInput{
		CustomerID:  body.CustomerID,
		Title:       body.Title,
		Description: body.Description,
		Category:    body.Category,
		Quantity:    body.Quantity,
		OfferPrice:  body.OfferPrice,
		ImagePath:   body.ImagePath,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"request": created})
}

type updateRequestBody struct {
	CallerID    string   `json:"caller_id" binding:"required"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Quantity    *int     `json:"quantity"`
	OfferPrice  *float64 `json:"offer_price"`
	ImagePath   *string  `json:"image_path"`
}

func (h *RequestHandler) Update(c *gin.Context) {
	var body updateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.requests.Update(c.Request.Context(), c.Param("id"), body.CallerID, &requestdto.UpdateRequestInput{
		Title:       body.Title,
		Description: body.Description,
		Category:    body.Category,
		Quantity:    body.Quantity,
		OfferPrice:  body.OfferPrice,
		ImagePath:   body.ImagePath,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": updated})
}

func (h *RequestHandler) Delete(c *gin.Context) {
	callerID := c.Query("caller_id")
	if callerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "caller_id is required"})
		return
	}

	if err := h.requests.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "request deleted"})
}

type cancelRequestBody struct {
	CallerID string `json:"caller_id" binding:"required"`
}

func (h *RequestHandler) Cancel(c *gin.Context) {
	var body cancelRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cancelled, err := h.requests.Cancel(c.Request.Context(), c.Param("id"), body.CallerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": cancelled})
}

func (h *RequestHandler) GetByID(c *gin.Context) {
	callerID := c.Query("caller_id")
	if callerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "caller_id is required"})
		return
	}

	found, err := h.requests.GetByID(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": found})
}

func (h *RequestHandler) List(c *gin.Context) {
	callerID := c.Query("caller_id")
	if callerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "caller_id is required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	requests, err := h.requests.List(c.Request.Context(), &requestdto.ListRequestsInput{
		CallerID: callerID,
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests, "count": len(requests)})
}

func (h *RequestHandler) Matching(c *gin.Context) {
	started := time.Now()
	matched, err := h.requests.MatchingForSupplier(c.Request.Context(), c.Param("supplier_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"requests":   matched,
		"count":      len(matched),
		"elapsed_ms": time.Since(started).Milliseconds(),
	})
}
