package models

// DashboardStats feeds the admin overview page.
type DashboardStats struct {
	TotalBookings     int       `json:"totalBookings"`
	PendingBookings   int       `json:"pendingBookings"`
	ConfirmedBookings int       `json:"confirmedBookings"`
	CompletedBookings int       `json:"completedBookings"`
	CancelledBookings int       `json:"cancelledBookings"`
	TotalRevenue      float64   `json:"totalRevenue"`
	Customers         int       `json:"customers"`
	UnreadMessages    int       `json:"unreadMessages"`
	RecentBookings    []Booking `json:"recentBookings"`
}

// CustomerSummary is a customer row on the admin customers page.
type CustomerSummary struct {
	User
	BookingCount int     `json:"bookingCount"`
	TotalSpent   float64 `json:"totalSpent"`
}
