package entity

import "time"

// Item representa un tipo de artículo dentro de una categoría.
// La identidad es el par (Category, Name): los nombres no son únicos entre
// categorías distintas.
type Item struct {
	Category    string // nombre canónico de la categoría
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
