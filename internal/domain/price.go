package domain

import "time"

type AssetPrice struct {
	Symbol string
	Price  float64
	Date   time.Time
}

// AssetStats are annualized figures estimated from a price history
type AssetStats struct {
	Symbol     string
	Cagr       float64
	Volatility float64
	Start      time.Time
	End        time.Time
	NumPrices  int
}
