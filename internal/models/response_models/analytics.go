package response_models

import "time"

type PackageCount struct {
	Title string `json:"title"`
	Count int64  `json:"count"`
}

type MessageSplit struct {
	Total   int64 `json:"total"`
	Replied int64 `json:"replied"`
	Pending int64 `json:"pending"`
}

type MonthlyCohort struct {
	// Month label, e.g. "2026-08".
	Month string    `json:"month"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	// Bookings whose creation time falls inside [Start, End].
	Bookings int64 `json:"bookings"`
	// Top-3 package ranking restricted to this month's bookings.
	TopPackages []PackageCount `json:"top_packages"`
}

type DashboardTotals struct {
	Bookings int64 `json:"bookings"`
	Packages int64 `json:"packages"`
	Messages int64 `json:"messages"`
}

type DashboardReport struct {
	Timezone    string          `json:"timezone"`
	Totals      DashboardTotals `json:"totals"`
	Messages    MessageSplit    `json:"messages"`
	TopPackages []PackageCount  `json:"top_packages"`
	Months      []MonthlyCohort `json:"months"`
}
