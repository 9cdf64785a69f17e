package request

type CreatePromoRequest struct {
	Code            string  `json:"code" validate:"required,min=3,max=30,alphanum"`
	DiscountPercent float64 `json:"discount_percent" validate:"required,min=1,max=100"`
}
