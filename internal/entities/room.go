package entities

// Room — кабинет с ограничением по числу мест. MaxSeats = 0 значит "без лимита".
type Room struct {
	ID       uint64 `json:"id"`
	Name     string `json:"room_name"`
	MaxSeats int    `json:"max_seats"`
}
