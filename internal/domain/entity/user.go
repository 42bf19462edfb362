package entity

import "time"

// Roles válidos para User (valores tal como los muestra la interfaz).
const (
	RoleAdmin        = "Admin"
	RoleVorsitzender = "Vorsitzender"
	RoleMitarbeiter  = "Mitarbeiter"
	RoleWartung      = "Wartung"
)

// Estados válidos para User.
const (
	StatusAktiv       = "Aktiv"
	StatusDeaktiviert = "Deaktiviert"
)

// User representa un miembro del personal en el roster plano.
// No lleva credenciales: la autenticación es responsabilidad de un
// colaborador externo, aquí solo se administra el registro.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Status    string // Aktiv, Deaktiviert
	Role      string // Admin, Vorsitzender, Mitarbeiter, Wartung
	Comments  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidRole verifica que el rol sea uno de los conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleVorsitzender, RoleMitarbeiter, RoleWartung:
		return true
	}
	return false
}

// ValidStatus verifica que el estado sea uno de los conocidos.
func ValidStatus(status string) bool {
	return status == StatusAktiv || status == StatusDeaktiviert
}
