package domain

// Read-side aggregation results for the admin dashboard.

type DailyStat struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Count   int    `json:"count"`
	Borrows int    `json:"borrows"`
	Returns int    `json:"returns"`
}

type StationStat struct {
	StationID   string `json:"station_id"`
	StationName string `json:"station_name"`
	Borrows     int    `json:"borrows"`
	Returns     int    `json:"returns"`
	Total       int    `json:"total"`
}

type TransactionStats struct {
	Total       int           `json:"total"`
	BorrowCount int           `json:"borrow_count"`
	ReturnCount int           `json:"return_count"`
	ReturnRate  float64       `json:"return_rate"` // returns/borrows * 100, 2dp
	Daily       []DailyStat   `json:"daily"`       // trailing 7 calendar days
	ByStation   []StationStat `json:"by_station"`
}

type StatusDistribution struct {
	Available   int `json:"available"`
	InUse       int `json:"in_use"`
	Maintenance int `json:"maintenance"`
	Lost        int `json:"lost"`
}

type StationUtilization struct {
	StationID         string  `json:"station_id"`
	StationName       string  `json:"station_name"`
	TotalUmbrellas    int     `json:"total_umbrellas"`
	UtilizationRate   float64 `json:"utilization_rate"`
	TotalTransactions int     `json:"total_transactions"`
}

type TopStation struct {
	Name         string `json:"name"`
	Transactions int    `json:"transactions"`
}

type StatusCount struct {
	Status     string `json:"status"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type AdminSummary struct {
	TotalUmbrellas    int           `json:"total_umbrellas"`
	ActiveStations    int           `json:"active_stations"`
	TotalTransactions int           `json:"total_transactions"`
	ReturnRate        float64       `json:"return_rate"`
	TopStations       []TopStation  `json:"top_stations"`
	UmbrellasByStatus []StatusCount `json:"umbrellas_by_status"`
}
