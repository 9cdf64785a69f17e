package request

type CreateExperienceRequest struct {
	Name            string  `json:"name" validate:"required,min=2,max=150"`
	Description     *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Price           float64 `json:"price" validate:"required,min=0"`
	Currency        string  `json:"currency" validate:"required,len=3"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,min=15,max=1440"`
	MaxGuests       int     `json:"max_guests" validate:"required,min=1,max=100"`
}

type UpdateExperienceRequest struct {
	Name            string  `json:"name" validate:"required,min=2,max=150"`
	Description     *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Price           float64 `json:"price" validate:"required,min=0"`
	Currency        string  `json:"currency" validate:"required,len=3"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,min=15,max=1440"`
	MaxGuests       int     `json:"max_guests" validate:"required,min=1,max=100"`
	IsActive        bool    `json:"is_active"`
}
