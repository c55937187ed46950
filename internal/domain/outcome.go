package domain

// BrewOutcome is one randomized trial. All three numeric fields are kept so
// callers can display the raw roll, the modifier and the total separately.
type BrewOutcome struct {
	Roll     int  `json:"roll"`
	Modifier int  `json:"modifier"`
	Total    int  `json:"total"`
	Success  bool `json:"success"`
}

// BatchResult is an ordered sequence of trials for one batched attempt plus
// the aggregate success count.
type BatchResult struct {
	Outcomes     []BrewOutcome `json:"outcomes"`
	SuccessCount int           `json:"success_count"`
}
