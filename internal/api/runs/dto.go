package runs

type StepResponse struct {
	Seq       int    `json:"seq"`
	Name      string `json:"name"`
	Detail    string `json:"detail"`
	CreatedAt string `json:"created_at"`
}

type RunResponse struct {
	ID         string         `json:"id"`
	Message    string         `json:"message"`
	Tier       string         `json:"tier"`
	Status     string         `json:"status"`
	Total      float64        `json:"total"`
	CreatedAt  string         `json:"created_at"`
	FinishedAt string         `json:"finished_at,omitempty"`
	Steps      []StepResponse `json:"steps,omitempty"`
}

type ListResponse struct {
	Runs  []RunResponse `json:"runs"`
	Total int           `json:"total"`
}
