package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"order-backoffice/internal/domain"
	ordersvc "order-backoffice/internal/service/order"
)

type orderItemRequest struct {
	ProductID   string           `json:"productId" binding:"required"`
	ProductName string           `json:"productName" binding:"required"`
	Quantity    int              `json:"quantity" binding:"required,min=1,max=2147483647"`
	UnitPrice   *decimal.Decimal `json:"unitPrice" binding:"required"`
}

type createOrderRequest struct {
	BuyerName  string             `json:"buyerName" binding:"required"`
	BuyerEmail string             `json:"buyerEmail" binding:"required,email"`
	Items      []orderItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (h *handler) createOrder(c *gin.Context) {
	var req createOrderRequest
	if !h.bindJSON(c, &req) {
		return
	}
	items := make([]ordersvc.ItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ordersvc.ItemInput{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   *it.UnitPrice,
		})
	}
	o, err := h.deps.Orders.CreateFromForm(c.Request.Context(), ordersvc.CreateInput{
		BuyerName:  req.BuyerName,
		BuyerEmail: req.BuyerEmail,
		Items:      items,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*o))
}

func (h *handler) listOrders(c *gin.Context) {
	r, err := domain.ParseDateRange(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	orders, err := h.deps.Orders.List(c.Request.Context(), r)
	if err != nil {
		h.respondError(c, err)
		return
	}
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, out)
}

func (h *handler) dashboard(c *gin.Context) {
	r, err := domain.ParseDateRange(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	summary, err := h.deps.Dashboard.Summary(c.Request.Context(), r)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDashboardResponse(summary))
}
