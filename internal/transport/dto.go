package transport

type AddToCartRequest struct {
	ProductID uint `json:"productId"`
}

type UpdateCartRequest struct {
	ID       *uint `json:"id"`
	Quantity *int  `json:"quantity"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

var OK = SuccessResponse{Success: true}
