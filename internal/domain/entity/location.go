package entity

import "time"

// Location representa un depósito o punto de distribución.
// Code es el identificador estable (loc_*); DisplayName puede renombrarse sin
// cambiar Code (el mismo depósito físico ha tenido varios nombres a lo largo
// del tiempo, todos resuelven al mismo código).
type Location struct {
	Code        string
	DisplayName string
	Address     string
	PostalCode  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
