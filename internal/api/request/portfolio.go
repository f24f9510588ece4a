package request

type CreatePortfolioRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdatePortfolioRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}
