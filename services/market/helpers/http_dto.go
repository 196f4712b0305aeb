package helpers

// Request DTOs
type PlaceBidRequest struct {
	ProductID int64   `json:"productId" binding:"required,gt=0"`
	Price     float64 `json:"price"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ImportErrorResponse is returned when an upload is rejected as a whole
type ImportErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}
