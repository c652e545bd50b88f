package domain

// Customer описывает клиента розничной системы.
type Customer struct {
	// ID назначается хранилищем и неизменяем после регистрации.
	ID int64 `json:"customer_id"`
	// Name — обязательное имя клиента.
	Name string `json:"name"`
	// Email уникален в пределах всей таблицы клиентов.
	Email string `json:"email"`
	// Phone и City опциональны; пустая строка означает отсутствие значения.
	Phone string `json:"phone,omitempty"`
	City  string `json:"city,omitempty"`
}
