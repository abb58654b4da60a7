package dto

import (
	"time"

	appOrder "github.com/tiendamoderna/tienda/internal/application/order"
	"github.com/tiendamoderna/tienda/internal/domain/order"
)

type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required,min=1,dive"`

	Street     string `json:"calle" binding:"required"`
	City       string `json:"ciudad" binding:"required"`
	Province   string `json:"provincia" binding:"required"`
	PostalCode string `json:"codigo_postal" binding:"required"`
	Country    string `json:"pais"`

	CouponCode    string `json:"cupon"`
	Notes         string `json:"notas"`
	PaymentMethod string `json:"metodo_pago"`
}

type OrderItemRequest struct {
	ProductID uint  `json:"producto_id" binding:"required"`
	VariantID *uint `json:"variante_id"`
	Quantity  int   `json:"cantidad" binding:"required,gte=1"`
}

// ToRequest converts to the use-case request, defaulting the country.
func (r CreateOrderRequest) ToRequest(userID uint) appOrder.CreateOrderRequest {
	country := r.Country
	if country == "" {
		country = "Argentina"
	}
	req := appOrder.CreateOrderRequest{
		UserID:        userID,
		Street:        r.Street,
		City:          r.City,
		Province:      r.Province,
		PostalCode:    r.PostalCode,
		Country:       country,
		CouponCode:    r.CouponCode,
		Notes:         r.Notes,
		PaymentMethod: r.PaymentMethod,
	}
	for _, item := range r.Items {
		req.Items = append(req.Items, appOrder.CartItem{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}
	return req
}

type MarkPaidRequest struct {
	TransactionID string `json:"transaccion_id"`
}

type MarkShippedRequest struct {
	Carrier      string `json:"transportista"`
	TrackingCode string `json:"codigo_seguimiento"`
}

// SalesQuery bounds the sales report; empty dates default to the last month.
type SalesQuery struct {
	From string `form:"desde" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"hasta" binding:"omitempty,datetime=2006-01-02"`
}

type OrderLineResponse struct {
	ID           uint   `json:"id"`
	ProductID    uint   `json:"producto_id"`
	VariantID    *uint  `json:"variante_id,omitempty"`
	ProductName  string `json:"producto"`
	Quantity     int    `json:"cantidad"`
	UnitPrice    int64  `json:"precio_unitario"`
	UnitDiscount int64  `json:"descuento_unitario"`
	Subtotal     int64  `json:"subtotal"`
	Total        int64  `json:"total"`
}

type OrderResponse struct {
	ID          uint   `json:"id"`
	OrderNumber string `json:"numero"`
	UserID      uint   `json:"usuario_id"`
	Status      string `json:"estado"`

	Subtotal      int64 `json:"subtotal"`
	TotalDiscount int64 `json:"descuento_total"`
	ShippingCost  int64 `json:"costo_envio"`
	Total         int64 `json:"total"`

	Street     string `json:"calle"`
	City       string `json:"ciudad"`
	Province   string `json:"provincia"`
	PostalCode string `json:"codigo_postal"`
	Country    string `json:"pais"`

	CouponCode    string `json:"cupon,omitempty"`
	Notes         string `json:"notas,omitempty"`
	PaymentMethod string `json:"metodo_pago,omitempty"`
	TransactionID string `json:"transaccion_id,omitempty"`
	Carrier       string `json:"transportista,omitempty"`
	TrackingCode  string `json:"codigo_seguimiento,omitempty"`

	Lines []OrderLineResponse `json:"lineas"`

	CreatedAt   time.Time  `json:"creada_en"`
	PaidAt      *time.Time `json:"pagada_en,omitempty"`
	ShippedAt   *time.Time `json:"enviada_en,omitempty"`
	DeliveredAt *time.Time `json:"entregada_en,omitempty"`
}

func NewOrderResponse(o *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		UserID:        o.UserID,
		Status:        string(o.Status),
		Subtotal:      o.Subtotal,
		TotalDiscount: o.TotalDiscount,
		ShippingCost:  o.ShippingCost,
		Total:         o.Total,
		Street:        o.ShippingAddress.Street,
		City:          o.ShippingAddress.City,
		Province:      o.ShippingAddress.Province,
		PostalCode:    o.ShippingAddress.PostalCode,
		Country:       o.ShippingAddress.Country,
		CouponCode:    o.CouponCode,
		Notes:         o.Notes,
		PaymentMethod: o.PaymentMethod,
		TransactionID: o.TransactionID,
		Carrier:       o.Carrier,
		TrackingCode:  o.TrackingCode,
		CreatedAt:     o.CreatedAt,
		PaidAt:        o.PaidAt,
		ShippedAt:     o.ShippedAt,
		DeliveredAt:   o.DeliveredAt,
	}
	for _, l := range o.Lines {
		resp.Lines = append(resp.Lines, OrderLineResponse{
			ID:           l.ID,
			ProductID:    l.ProductID,
			VariantID:    l.VariantID,
			ProductName:  l.ProductName,
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice,
			UnitDiscount: l.UnitDiscount,
			Subtotal:     l.Subtotal,
			Total:        l.Total,
		})
	}
	return resp
}

func NewOrderResponses(orders []*order.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = NewOrderResponse(o)
	}
	return out
}
