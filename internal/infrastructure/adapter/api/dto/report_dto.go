package dto

// RevenueSummaryResponse is the payload for GET /api/transactions/summary
type RevenueSummaryResponse struct {
	Period  string `json:"period"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}
