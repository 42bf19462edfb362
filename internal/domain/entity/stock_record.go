package entity

import "time"

// StockRecord es la unidad de verdad del inventario: las existencias de un
// artículo en una ubicación. Available y Reserved se ajustan por separado;
// el total (Overall) siempre se deriva, nunca se almacena, para que los tres
// números no puedan divergir. La ausencia de registro significa stock cero.
// Un registro que llega a Overall()==0 se conserva (puede llegar stock nuevo).
type StockRecord struct {
	Category     string
	ItemName     string
	LocationCode string
	Available    int
	Reserved     int
	UpdatedAt    time.Time
}

// Overall devuelve el total derivado: disponible + reservado.
func (s *StockRecord) Overall() int {
	return s.Available + s.Reserved
}
