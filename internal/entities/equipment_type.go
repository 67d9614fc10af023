package entities

type EquipmentType struct {
	ID   uint64 `json:"id"`
	Name string `json:"type_name"`
}
