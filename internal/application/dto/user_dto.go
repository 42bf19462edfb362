package dto

// Los campos de usuario van en camelCase porque así los parsea la interfaz
// de administración existente (firstName, lastName, ...).

// CreateUserRequest entrada para crear un usuario del roster.
type CreateUserRequest struct {
	FirstName string `json:"firstName" validate:"required,min=1,max=200"`
	LastName  string `json:"lastName" validate:"required,min=1,max=200"`
	Email     string `json:"email" validate:"omitempty,email"`
	Status    string `json:"status" validate:"required,oneof=Aktiv Deaktiviert"`
	Role      string `json:"role" validate:"required,oneof=Admin Vorsitzender Mitarbeiter Wartung"`
	Comments  string `json:"comments"`
}

// UpdateUserRequest entrada para actualizar un usuario por id (campos opcionales).
type UpdateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Status    *string `json:"status"`
	Role      *string `json:"role"`
	Comments  *string `json:"comments"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	Role      string `json:"role"`
	Comments  string `json:"comments"`
}
