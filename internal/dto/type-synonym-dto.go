package dto

type CreateTypeSynonymDTO struct {
	Synonym  string `json:"synonym" validate:"required"`
	MainType string `json:"main_type" validate:"required"`
}
