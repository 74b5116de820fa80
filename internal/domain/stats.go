package domain

// MonthlyGrowth holds percentage changes of the trailing 30 day window
// against the 30 days before it.
type MonthlyGrowth struct {
	Reviews   float64 `json:"reviews"`
	Rating    float64 `json:"rating"`
	Responses float64 `json:"responses"`
}

// DashboardStats is the aggregate snapshot shown on the dashboard.
// AverageRating is rounded to one decimal place and ResponseRate is a
// whole percentage.
type DashboardStats struct {
	TotalReviews  int           `json:"totalReviews"`
	AverageRating float64       `json:"averageRating"`
	ResponseRate  int           `json:"responseRate"`
	PendingCount  int           `json:"pendingCount"`
	MonthlyGrowth MonthlyGrowth `json:"monthlyGrowth"`
}
