package models

// ProductAnalysis is one row of the inventory analysis: sales accumulated
// from order-item snapshots joined with the product's live stock figures.
// RemainingStock comes from the product record, not from the orders; the two
// can diverge when a stock update was swallowed during order creation.
type ProductAnalysis struct {
	Product          Product `json:"product"`
	TotalSold        int     `json:"total_sold"`
	TotalRevenue     float64 `json:"total_revenue"`
	RemainingStock   int     `json:"remaining_stock"`
	PotentialRevenue float64 `json:"potential_revenue"` // initial stock * price
	PercentSold      float64 `json:"percent_sold"`
}

// InventoryReport is the full inventory analysis with aggregate totals.
type InventoryReport struct {
	Items                 []ProductAnalysis `json:"items"`
	TotalInitialStock     int               `json:"total_initial_stock"`
	TotalSoldItems        int               `json:"total_sold_items"`
	TotalRemainingStock   int               `json:"total_remaining_stock"`
	TotalRevenue          float64           `json:"total_revenue"`
	TotalPotentialRevenue float64           `json:"total_potential_revenue"`
	PercentSold           float64           `json:"percent_sold"`
}

// ProductProfit is one row of the profit analysis. A product without a cost
// record is analyzed with CostPrice=0, which yields a 100% margin on any
// positive price; that is an accepted edge case, not an error.
type ProductProfit struct {
	Product      Product `json:"product"`
	CostPrice    float64 `json:"cost_price"`
	TotalSold    int     `json:"total_sold"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalCost    float64 `json:"total_cost"`
	NetProfit    float64 `json:"net_profit"`
	Margin       float64 `json:"margin"`
}

// ProfitReport is the full profit analysis with aggregate totals.
type ProfitReport struct {
	Items          []ProductProfit `json:"items"`
	TotalRevenue   float64         `json:"total_revenue"`
	TotalCost      float64         `json:"total_cost"`
	TotalNetProfit float64         `json:"total_net_profit"`
}
