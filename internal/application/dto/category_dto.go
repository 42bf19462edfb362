package dto

// CategoryResponse salida de una categoría (nombre mostrado + descripción).
type CategoryResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryListResponse envoltura de la lista de categorías.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
