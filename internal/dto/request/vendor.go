package request

type CreateVendorRequest struct {
	Name              string  `json:"name" validate:"required,min=2,max=100"`
	ContactEmail      string  `json:"contact_email" validate:"required,email"`
	Description       *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	CommissionRate    float64 `json:"commission_rate" validate:"min=0,max=100"`
	CancellationHours int     `json:"cancellation_hours" validate:"min=0,max=720"`
}

type UpdateVendorRequest struct {
	Name              string  `json:"name" validate:"required,min=2,max=100"`
	ContactEmail      string  `json:"contact_email" validate:"required,email"`
	Description       *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	CommissionRate    float64 `json:"commission_rate" validate:"min=0,max=100"`
	CancellationHours int     `json:"cancellation_hours" validate:"min=0,max=720"`
	Published         bool    `json:"published"`
}
