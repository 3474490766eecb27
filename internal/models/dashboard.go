package models

// DashboardStats is the aggregate payload of the admin dashboard endpoint.
type DashboardStats struct {
	TotalSales       float64   `json:"totalSales"`
	TotalOrders      int       `json:"totalOrders"`
	TotalUsers       int       `json:"totalUsers"`
	LowStockProducts []Product `json:"lowStockProducts"`
	RecentOrders     []Order   `json:"recentOrders"`
}
