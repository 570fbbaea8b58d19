package models

// All lists the table models in dependency order
func All() []interface{} {
	return []interface{}{
		&Address{},
		&User{},
		&Account{},
		&Card{},
		&Invoice{},
		&Loan{},
	}
}
