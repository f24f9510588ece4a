package request

type CreateCalendarEventRequest struct {
	Date       string `json:"date"`
	Title      string `json:"title"`
	Country    string `json:"country,omitempty"`
	Category   string `json:"category,omitempty"`
	Importance string `json:"importance"`
}

type UpdateCalendarEventRequest struct {
	Date       *string `json:"date,omitempty"`
	Title      *string `json:"title,omitempty"`
	Country    *string `json:"country,omitempty"`
	Category   *string `json:"category,omitempty"`
	Importance *string `json:"importance,omitempty"`
}
