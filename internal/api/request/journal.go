package request

type CreateJournalEntryRequest struct {
	Date     string  `json:"date"`
	Symbol   string  `json:"symbol"`
	Side     string  `json:"side"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	Reason   string  `json:"reason,omitempty"`
	Result   string  `json:"result"`
}

type UpdateJournalEntryRequest struct {
	Date     *string  `json:"date,omitempty"`
	Symbol   *string  `json:"symbol,omitempty"`
	Side     *string  `json:"side,omitempty"`
	Quantity *float64 `json:"quantity,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Reason   *string  `json:"reason,omitempty"`
	Result   *string  `json:"result,omitempty"`
}
