package entities

type Owner struct {
	ID       uint64 `json:"id"`
	FullName string `json:"full_name"`
	Position string `json:"position"`
	PCIP     string `json:"pc_ip"`
	PCName   string `json:"pc_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}
