package handlers

import (
	"bank-backoffice.backend/internal/domain/entities"
	"bank-backoffice.backend/internal/usecases"
	"bank-backoffice.backend/pkg/validation"
)

type (
	UserHandler    = ResourceHandler[entities.CreateUserInput, entities.UpdateUserInput, entities.UserResponse]
	AddressHandler = ResourceHandler[entities.CreateAddressInput, entities.UpdateAddressInput, entities.AddressResponse]
	AccountHandler = ResourceHandler[entities.CreateAccountInput, entities.UpdateAccountInput, entities.AccountResponse]
	CardHandler    = ResourceHandler[entities.CreateCardInput, entities.UpdateCardInput, entities.CardResponse]
	InvoiceHandler = ResourceHandler[entities.CreateInvoiceInput, entities.UpdateInvoiceInput, entities.InvoiceResponse]
	LoanHandler    = ResourceHandler[entities.CreateLoanInput, entities.UpdateLoanInput, entities.LoanResponse]
)

// NewValidator builds the request validator with the role combination rule
func NewValidator() *validation.Validator {
	return validation.New(validation.Rule{Tag: "roles", Check: entities.IsRoleCombination})
}

func NewUserHandler(uc *usecases.UserUsecase, v *validation.Validator) *UserHandler {
	return NewResourceHandler[entities.CreateUserInput, entities.UpdateUserInput, entities.UserResponse]("user", uc, v)
}

func NewAddressHandler(uc *usecases.AddressUsecase, v *validation.Validator) *AddressHandler {
	return NewResourceHandler[entities.CreateAddressInput, entities.UpdateAddressInput, entities.AddressResponse]("address", uc, v)
}

func NewAccountHandler(uc *usecases.AccountUsecase, v *validation.Validator) *AccountHandler {
	return NewResourceHandler[entities.CreateAccountInput, entities.UpdateAccountInput, entities.AccountResponse]("account", uc, v)
}

func NewCardHandler(uc *usecases.CardUsecase, v *validation.Validator) *CardHandler {
	return NewResourceHandler[entities.CreateCardInput, entities.UpdateCardInput, entities.CardResponse]("card", uc, v)
}

func NewInvoiceHandler(uc *usecases.InvoiceUsecase, v *validation.Validator) *InvoiceHandler {
	return NewResourceHandler[entities.CreateInvoiceInput, entities.UpdateInvoiceInput, entities.InvoiceResponse]("invoice", uc, v)
}

func NewLoanHandler(uc *usecases.LoanUsecase, v *validation.Validator) *LoanHandler {
	return NewResourceHandler[entities.CreateLoanInput, entities.UpdateLoanInput, entities.LoanResponse]("loan", uc, v)
}
