package httpserver

import (
	"time"

	"order-backoffice/internal/domain"
)

// createdAtLayout renders instants in UTC with millisecond precision.
const createdAtLayout = "2006-01-02T15:04:05.000Z07:00"

type productResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type productCostResponse struct {
	ProductID string  `json:"productId"`
	Cost      float64 `json:"cost"`
}

type productCostViewResponse struct {
	ProductID   string   `json:"productId"`
	ProductName string   `json:"productName"`
	Cost        *float64 `json:"cost"`
}

type orderItemResponse struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

type orderResponse struct {
	ID          string              `json:"id"`
	ExternalID  string              `json:"externalId"`
	BuyerName   string              `json:"buyerName"`
	BuyerEmail  string              `json:"buyerEmail"`
	TotalAmount float64             `json:"totalAmount"`
	CreatedAt   string              `json:"createdAt"`
	Items       []orderItemResponse `json:"items"`
}

type dashboardResponse struct {
	OrdersCount int     `json:"ordersCount"`
	Revenue     float64 `json:"revenue"`
	CostTotal   float64 `json:"costTotal"`
	Profit      float64 `json:"profit"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{ID: p.ID, Name: p.Name}
}

func toProductCostViewResponse(v domain.ProductCostView) productCostViewResponse {
	out := productCostViewResponse{ProductID: v.ProductID, ProductName: v.ProductName}
	if v.Cost != nil {
		cost := v.Cost.InexactFloat64()
		out.Cost = &cost
	}
	return out
}

func toOrderResponse(o domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.InexactFloat64(),
		})
	}
	return orderResponse{
		ID:          o.ID,
		ExternalID:  o.ExternalID,
		BuyerName:   o.BuyerName,
		BuyerEmail:  o.BuyerEmail,
		TotalAmount: o.TotalAmount.InexactFloat64(),
		CreatedAt:   formatInstant(o.CreatedAt),
		Items:       items,
	}
}

func toDashboardResponse(s domain.DashboardSummary) dashboardResponse {
	return dashboardResponse{
		OrdersCount: s.OrdersCount,
		Revenue:     s.Revenue.InexactFloat64(),
		CostTotal:   s.CostTotal.InexactFloat64(),
		Profit:      s.Profit.InexactFloat64(),
	}
}

func formatInstant(t time.Time) string {
	return t.UTC().Format(createdAtLayout)
}
