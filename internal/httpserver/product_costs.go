package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type setProductCostRequest struct {
	ProductID string           `json:"productId" binding:"required"`
	Cost      *decimal.Decimal `json:"cost" binding:"required"`
}

type updateProductCostRequest struct {
	Cost *decimal.Decimal `json:"cost" binding:"required"`
}

func (h *handler) setProductCost(c *gin.Context) {
	var req setProductCostRequest
	if !h.bindJSON(c, &req) {
		return
	}
	h.upsertCost(c, req.ProductID, *req.Cost)
}

func (h *handler) updateProductCost(c *gin.Context) {
	var req updateProductCostRequest
	if !h.bindJSON(c, &req) {
		return
	}
	h.upsertCost(c, c.Param("productId"), *req.Cost)
}

func (h *handler) upsertCost(c *gin.Context, productID string, cost decimal.Decimal) {
	pc, err := h.deps.ProductCosts.Upsert(c.Request.Context(), productID, cost)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productCostResponse{ProductID: pc.ProductID, Cost: pc.Cost.InexactFloat64()})
}

func (h *handler) listProductCosts(c *gin.Context) {
	views, err := h.deps.ProductCosts.ListView(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	out := make([]productCostViewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toProductCostViewResponse(v))
	}
	c.JSON(http.StatusOK, out)
}
