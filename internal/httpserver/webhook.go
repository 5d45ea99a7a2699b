package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	ordersvc "order-backoffice/internal/service/order"
)

// Payload shape sent by the external e-commerce platform.
type webhookOrderRequest struct {
	ID          string            `json:"id" binding:"required"`
	Buyer       webhookBuyer      `json:"buyer"`
	LineItems   []webhookLineItem `json:"lineItems" binding:"required,min=1,dive"`
	TotalAmount *decimal.Decimal  `json:"totalAmount" binding:"required"`
	CreatedAt   string            `json:"createdAt" binding:"required"`
}

type webhookBuyer struct {
	BuyerName  string `json:"buyerName"`
	BuyerEmail string `json:"buyerEmail" binding:"required,email"`
}

type webhookLineItem struct {
	ItemID    string           `json:"itemId" binding:"required"`
	ItemName  string           `json:"itemName" binding:"required"`
	Qty       int              `json:"qty" binding:"required,min=1,max=2147483647"`
	UnitPrice *decimal.Decimal `json:"unitPrice" binding:"required"`
}

func (h *handler) orderWebhook(c *gin.Context) {
	var req webhookOrderRequest
	if !h.bindJSON(c, &req) {
		return
	}
	items := make([]ordersvc.ItemInput, 0, len(req.LineItems))
	for _, li := range req.LineItems {
		items = append(items, ordersvc.ItemInput{
			ProductID:   li.ItemID,
			ProductName: li.ItemName,
			Quantity:    li.Qty,
			UnitPrice:   *li.UnitPrice,
		})
	}
	o, err := h.deps.Orders.CreateFromWebhook(c.Request.Context(), ordersvc.ExternalInput{
		ExternalID:  req.ID,
		BuyerName:   req.Buyer.BuyerName,
		BuyerEmail:  req.Buyer.BuyerEmail,
		Items:       items,
		TotalAmount: *req.TotalAmount,
		CreatedAt:   req.CreatedAt,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.logger.Info().Str("external_id", o.ExternalID).Str("order_id", o.ID).Msg("webhook order ingested")
	c.JSON(http.StatusCreated, toOrderResponse(*o))
}
