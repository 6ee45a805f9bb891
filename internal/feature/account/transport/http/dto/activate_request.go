package dto

// ActivateReq represents the request body for the /activation endpoint.
// The code must be exactly 4 digits; the input layer rejects anything else
// before it reaches the service.
type ActivateReq struct {
	Code string `json:"code" binding:"required,len=4,number"`
}
