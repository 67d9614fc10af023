package dto

type CreateEquipmentDTO struct {
	InventoryNumber string `json:"inventory_number" validate:"required"`
	Type            string `json:"type"`
	Name            string `json:"name"`
	Model           string `json:"model"`
	SerialNumber    string `json:"serial_number"`
	Room            string `json:"room"`
	Owner           string `json:"owner"`
	WrittenOff      bool   `json:"written_off"`
}

// UpdateEquipmentDTO — полная карточка: форма редактирования всегда
// отправляет все поля.
type UpdateEquipmentDTO struct {
	InventoryNumber string `json:"inventory_number" validate:"required"`
	Type            string `json:"type"`
	Name            string `json:"name"`
	Model           string `json:"model"`
	SerialNumber    string `json:"serial_number"`
	Room            string `json:"room"`
	Owner           string `json:"owner"`
	WrittenOff      bool   `json:"written_off"`
}

// ImportedEquipmentDTO — изменяемые при импорте поля; флаг списания
// импорт не трогает.
type ImportedEquipmentDTO struct {
	Type         string `json:"type"`
	Name         string `json:"name"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
	Room         string `json:"room"`
	Owner        string `json:"owner"`
}

type FilterEquipmentDTO struct {
	Room              string `json:"room"`
	Owner             string `json:"owner"`
	IncludeWrittenOff bool   `json:"include_written_off"`
}
