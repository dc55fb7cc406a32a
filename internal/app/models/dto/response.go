package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message" example:"Signed up michael@mergington.edu for Chess Club"`
}
