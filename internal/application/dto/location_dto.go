package dto

// LocationResponse salida de una ubicación. Los nombres de campo son los que
// parsea el cliente existente (postal_code en snake_case).
type LocationResponse struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`
}

// LocationListResponse envoltura de la lista de ubicaciones.
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
}

// StockEntry una fila de stock dentro del detalle por ubicación.
// El cliente muestra "total"; en el detalle de artículo el mismo número se
// llama "overall" (formatos legados distintos, ambos se conservan).
type StockEntry struct {
	Name      string `json:"name"`
	Available int    `json:"available"`
	Reserved  int    `json:"reserved"`
	Total     int    `json:"total"`
}

// LocationDetailResponse stock de una ubicación agrupado por categoría.
type LocationDetailResponse struct {
	Location   string                  `json:"location"`
	Categories map[string][]StockEntry `json:"categories"`
}
