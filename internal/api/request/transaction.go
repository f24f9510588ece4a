package request

type CreateTransactionRequest struct {
	HoldingID string  `json:"holdingId"`
	Date      string  `json:"date"`
	Kind      string  `json:"kind"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Fee       float64 `json:"fee"`
	Note      string  `json:"note,omitempty"`
}

type UpdateTransactionRequest struct {
	Date      *string  `json:"date,omitempty"`
	Kind      *string  `json:"kind,omitempty"`
	Quantity  *float64 `json:"quantity,omitempty"`
	UnitPrice *float64 `json:"unitPrice,omitempty"`
	Fee       *float64 `json:"fee,omitempty"`
	Note      *string  `json:"note,omitempty"`
}
