package inventory

type ItemResponse struct {
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Location  string  `json:"location"`
	Available int     `json:"available"`
	DailyRate float64 `json:"daily_rate"`
}

type ListResponse struct {
	Category string         `json:"category,omitempty"`
	Items    []ItemResponse `json:"items"`
	Total    int            `json:"total"`
}
