package entity

import "time"

// Category agrupa artículos (p.ej. bedding ⇒ Bettwaren).
// Name es el nombre canónico interno; DisplayName es el nombre que ve el
// personal en la interfaz. Los alias adicionales viven en las tablas del
// resolver, no aquí.
type Category struct {
	Name        string // canónico: bedding, food, hygiene, ...
	DisplayName string // Bettwaren, Lebensmittel, ...
	Description string
	CreatedAt   time.Time
}
