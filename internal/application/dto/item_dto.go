package dto

// LocationStock los tres números de un artículo en una ubicación.
type LocationStock struct {
	Overall   int `json:"overall"`
	Available int `json:"available"`
	Reserved  int `json:"reserved"`
}

// ItemDetailResponse detalle de un artículo: totales agregados más el
// desglose por ubicación. per_location incluye solo ubicaciones con registro
// de stock (las de stock cero se omiten, no se rellenan con ceros).
type ItemDetailResponse struct {
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Overall     int                      `json:"overall"`
	Available   int                      `json:"available"`
	Reserved    int                      `json:"reserved"`
	PerLocation map[string]LocationStock `json:"per_location"`
}
