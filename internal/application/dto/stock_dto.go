package dto

// AdjustStockRequest entrada para fijar el total de un artículo en una ubicación.
type AdjustStockRequest struct {
	Category   string `json:"category" validate:"required"`
	Item       string `json:"item" validate:"required"`
	Location   string `json:"location" validate:"required"`
	NewOverall int    `json:"new_overall" validate:"min=0"`
}

// IncrementStockRequest entrada para el paso +1/−1 de los controles interactivos.
type IncrementStockRequest struct {
	Category string `json:"category" validate:"required"`
	Item     string `json:"item" validate:"required"`
	Location string `json:"location" validate:"required"`
	Step     int    `json:"step" validate:"oneof=-1 1"`
}

// StockRecordResponse estado actualizado de un registro de stock.
type StockRecordResponse struct {
	Category  string `json:"category"`
	Item      string `json:"item"`
	Location  string `json:"location"`
	Available int    `json:"available"`
	Reserved  int    `json:"reserved"`
	Overall   int    `json:"overall"`
}
