package request

type UpdateEquityAPIKeyRequest struct {
	APIKey string `json:"apiKey"`
}
