package entities

// Equipment — учётная единица инвентаря. Type, Room и Owner ссылаются на
// справочники по имени; согласованность поддерживают каскады репозиториев.
type Equipment struct {
	ID              uint64 `json:"id"`
	InventoryNumber string `json:"inventory_number"`
	Type            string `json:"type"`
	Name            string `json:"name"`
	Model           string `json:"model"`
	SerialNumber    string `json:"serial_number"`
	Room            string `json:"room"`
	Owner           string `json:"owner"`
	WrittenOff      bool   `json:"written_off"`
}
