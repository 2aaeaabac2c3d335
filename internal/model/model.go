// Package model содержит доменные сущности сервиса проверки NIT.
package model

// FieldError описывает одну ошибку валидации номера.
type FieldError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationResult содержит итог валидации одного номера.
type ValidationResult struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors"`
}

// BatchItem содержит итог валидации одного номера из пакетного запроса.
type BatchItem struct {
	NIT    string       `json:"nit"`
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors"`
}
