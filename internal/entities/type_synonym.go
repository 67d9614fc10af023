package entities

// TypeSynonym отображает сырой токен (без учёта регистра) на канонический тип.
type TypeSynonym struct {
	ID       uint64 `json:"id"`
	Synonym  string `json:"synonym"`
	MainType string `json:"main_type"`
}
