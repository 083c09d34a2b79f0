package handler

import (
	"net/http"
	"time"

	offerdto "github.com/craveo/marketplace-service/internal/usecase/dto/offer"
	"github.com/craveo/marketplace-service/internal/usecase/offer"
	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	offers offer.OfferUsecase
}

func NewOfferHandler(offers offer.OfferUsecase) *OfferHandler {
	return &OfferHandler{offers: offers}
}

type submitOfferBody struct {
	RequestID     string     `json:"request_id" binding:"required"`
	SupplierID    string     `json:"supplier_id" binding:"required"`
	ProposedPrice float64    `json:"proposed_price"`
	Message       string     `json:"message"`
	DeliveryDate  *time.Time `json:"delivery_date"`
}

func (h *OfferHandler) Submit(c *gin.Context) {
	var body submitOfferBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submitted, err := h.offers.Submit(c.Request.Context(), &offerdto.SubmitOfferInput{
		RequestID:     body.RequestID,
		SupplierID:    body.SupplierID,
		ProposedPrice: body.ProposedPrice,
		Message:       body.Message,
		DeliveryDate:  body.DeliveryDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"offer": submitted})
}

type supplierActionBody struct {
	SupplierID    string     `json:"supplier_id" binding:"required"`
	Action        string     `json:"action" binding:"required"`
	ProposedPrice float64    `json:"proposed_price"`
	Message       string     `json:"message"`
	DeliveryDate  *time.Time `json:"delivery_date"`
}

// SupplierAction handles the supplier's moves on a request: taking it at
// the listed price or countering with their own.
func (h *OfferHandler) SupplierAction(c *gin.Context) {
	var body supplierActionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	requestID := c.Param("id")

	switch body.Action {
	case "direct_accept":
		acceptedOffer, placedOrder, err := h.offers.DirectAccept(c.Request.Context(), requestID, body.SupplierID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"offer": acceptedOffer, "order": placedOrder})

	case "counter_offer":
		counter, err := h.offers.CounterOffer(c.Request.Context(), &offerdto.CounterOfferInput{
			RequestID:     requestID,
			SupplierID:    body.SupplierID,
			ProposedPrice: body.ProposedPrice,
			Message:       body.Message,
			DeliveryDate:  body.DeliveryDate,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"offer": counter})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "action must be direct_accept or counter_offer"})
	}
}

type offerActionBody struct {
	CallerID string `json:"caller_id" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

// Action applies a customer decision or a supplier withdrawal to an offer.
func (h *OfferHandler) Action(c *gin.Context) {
	var body offerActionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	offerID := c.Param("id")

	switch body.Action {
	case "accept", "reject", "counter":
		respondedOffer, placedOrder, err := h.offers.Respond(c.Request.Context(), offerID, body.CallerID,
			offerdto.RespondAction(body.Action))
		if err != nil {
			respondError(c, err)
			return
		}
		resp := gin.H{"offer": respondedOffer}
		if placedOrder != nil {
			resp["order"] = placedOrder
		}
		c.JSON(http.StatusOK, resp)

	case "cancel_by_supplier":
		cancelled, err := h.offers.Cancel(c.Request.Context(), offerID, body.CallerID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"offer": cancelled})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown action"})
	}
}

type updateOfferBody struct {
	SupplierID    string     `json:"supplier_id" binding:"required"`
	ProposedPrice *float64   `json:"proposed_price"`
	Message       *string    `json:"message"`
	DeliveryDate  *time.Time `json:"delivery_date"`
}

func (h *OfferHandler) Update(c *gin.Context) {
	var body updateOfferBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.offers.Update(c.Request.Context(), c.Param("id"), body.SupplierID, &offerdto.UpdateOfferInput{
		ProposedPrice: body.ProposedPrice,
		Message:       body.Message,
		DeliveryDate:  body.DeliveryDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offer": updated})
}

func (h *OfferHandler) GetByID(c *gin.Context) {
	found, err := h.offers.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offer": found})
}

func (h *OfferHandler) ListByRequest(c *gin.Context) {
	offers, err := h.offers.ListByRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offers": offers, "count": len(offers)})
}

func (h *OfferHandler) ListBySupplier(c *gin.Context) {
	offers, err := h.offers.ListBySupplier(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offers": offers, "count": len(offers)})
}
