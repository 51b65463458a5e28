package models

// ElectricianRanking is one row of the top-electricians report.
type ElectricianRanking struct {
	ElectricianID   string `json:"electricianId"`
	ElectricianName string `json:"electricianName"`
	Completed       int    `json:"completed"`
}

// AdminReport aggregates ledger-wide figures for the admin dashboard.
type AdminReport struct {
	TotalEarnings    float64               `json:"totalEarnings"` // completed services only
	ServicesByStatus map[ServiceStatus]int `json:"servicesByStatus"`
	TopElectricians  []ElectricianRanking  `json:"topElectricians"`
}
