package dto

// SetStockRequest body de PUT /api/admin/stock: cantidad objetivo por grupo.
type SetStockRequest struct {
	Quantities map[string]int `json:"quantities"`
}

// StockDeltaRequest body de POST /api/admin/stock/:group/delta.
type StockDeltaRequest struct {
	Delta int `json:"delta"`
}
