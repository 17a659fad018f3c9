package dto

import (
	validation "github.com/jellydator/validation"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name     string   `json:"name"`
	Brand    string   `json:"brand"`
	Model    string   `json:"model"`
	Qty      int      `json:"qty"`
	Min      int      `json:"min"`
	Features []string `json:"features"`
}

// Validate aplica las reglas del dominio: nombre no vacío, qty >= 0, min >= 0.
func (r *CreateProductRequest) Validate() error {
	return WrapValidation(validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required.Error("name es requerido"), notBlank),
		validation.Field(&r.Qty, validation.Min(0).Error("qty no puede ser negativo")),
		validation.Field(&r.Min, validation.Min(0).Error("min no puede ser negativo")),
	))
}

// UpdateProductRequest parche para actualizar un producto. Los campos nil no
// se tocan; Features, si viene, reemplaza la lista completa (no se mezcla).
type UpdateProductRequest struct {
	Name     *string  `json:"name"`
	Brand    *string  `json:"brand"`
	Model    *string  `json:"model"`
	Qty      *int     `json:"qty"`
	Min      *int     `json:"min"`
	Features []string `json:"features"`
}

// Validate aplica las mismas reglas que la creación sobre los campos presentes.
func (r *UpdateProductRequest) Validate() error {
	return WrapValidation(validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.NilOrNotEmpty.Error("name no puede ser vacío"), notBlank),
		validation.Field(&r.Qty, validation.Min(0).Error("qty no puede ser negativo")),
		validation.Field(&r.Min, validation.Min(0).Error("min no puede ser negativo")),
	))
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Brand    string   `json:"brand"`
	Model    string   `json:"model"`
	Qty      int      `json:"qty"`
	Min      int      `json:"min"`
	Features []string `json:"features"`
}
