package seeders

// Базовый словарь синонимов типов. Засевается при старте; уже существующие
// пары не дублируются.
var typeSynonymsData = []struct {
	Synonym  string
	MainType string
}{
	{"?", "Невідомо"},
	{"chp", "Checkpoint"},
	{"fil", "Фільтр"},
	{"filter", "Фільтр"},
	{"key", "Клавіатура"},
	{"keyboard", "Клавіатура"},
	{"mon", "Монітор"},
	{"monitor", "Монітор"},
	{"mou", "Миша"},
	{"mouse", "Миша"},
	{"pc", "Комп'ютер"},
	{"pr", "Принтер"},
	{"rout", "Роутер"},
	{"scan", "Сканер"},
	{"sw", "Свіч"},
	{"web", "Вебкамера"},
	{"ups", "Джерело безперебійного живлення"},
	{"uninterruptible power supply", "Джерело безперебійного живлення"},
}
