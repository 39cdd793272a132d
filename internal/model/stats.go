package model

// Stats is the back-office dashboard aggregate.
type Stats struct {
	TotalProducts    int64        `json:"totalProducts"`
	TotalSales       int64        `json:"totalSales"`
	TotalRevenue     float64      `json:"totalRevenue"`
	TotalCost        float64      `json:"totalCost"`
	TotalMargin      float64      `json:"totalMargin"`
	MarginPercentage float64      `json:"marginPercentage"`
	TotalUsers       int64        `json:"totalUsers"`
	TotalAdmins      int64        `json:"totalAdmins"`
	TopProducts      []TopProduct `json:"topProducts"`
}
