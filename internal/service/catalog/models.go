package catalog

// CreateRequest данные новой услуги в том виде, в каком их ввел администратор
type CreateRequest struct {
	Name        string
	Description string
	Price       string
	Duration    string
}

// UpdateRequest новые значения полей услуги; пустая строка оставляет поле без изменений
type UpdateRequest struct {
	Name        string
	Description *string
	Price       string
	Duration    string
	Active      *bool
}
