package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	productsvc "order-backoffice/internal/service/product"
)

type createProductRequest struct {
	ID   string `json:"id" binding:"omitempty,max=64"`
	Name string `json:"name" binding:"required"`
}

func (h *handler) createProduct(c *gin.Context) {
	var req createProductRequest
	if !h.bindJSON(c, &req) {
		return
	}
	p, err := h.deps.Products.Create(c.Request.Context(), productsvc.CreateInput{ID: req.ID, Name: req.Name})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProductResponse(*p))
}

func (h *handler) listProducts(c *gin.Context) {
	products, err := h.deps.Products.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	c.JSON(http.StatusOK, out)
}
