package constants

const (
	// UnknownType — канонический тип для нераспознанных токенов.
	UnknownType = "Невідомо"

	// StockRoom — фиксированный кабинет-склад для операции "На склад".
	StockRoom = "Склад"

	// NoFilter — значение-заглушка комбобоксов UI, означает "без фильтра".
	NoFilter = "---"
)
