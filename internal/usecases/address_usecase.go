package usecases

import (
	"context"

	"bank-backoffice.backend/internal/domain/entities"
	"bank-backoffice.backend/internal/domain/repositories"
)

// AddressUsecase manages postal addresses
type AddressUsecase = ResourceService[entities.Address, entities.CreateAddressInput, entities.UpdateAddressInput, entities.AddressResponse]

// NewAddressUsecase creates a new address usecase
func NewAddressUsecase(addressRepo repositories.AddressRepository) *AddressUsecase {
	return NewResourceService[entities.Address](addressRepo, ResourceDefinition[entities.Address, entities.CreateAddressInput, entities.UpdateAddressInput, entities.AddressResponse]{
		Name:   "address",
		Plural: "addresses",
		Title:  "Address",
		Build: func(_ context.Context, input *entities.CreateAddressInput) (*entities.Address, error) {
			return &entities.Address{
				ID:         newID(),
				Street:     input.Street,
				Number:     input.Number,
				City:       input.City,
				State:      input.State,
				PostalCode: input.PostalCode,
			}, nil
		},
		Merge: func(a *entities.Address, input *entities.UpdateAddressInput) {
			setString(&a.Street, input.Street)
			setString(&a.Number, input.Number)
			setString(&a.City, input.City)
			setString(&a.State, input.State)
			setString(&a.PostalCode, input.PostalCode)
		},
		Project: func(a *entities.Address) *entities.AddressResponse {
			return &entities.AddressResponse{
				ID:         a.ID,
				Street:     a.Street,
				Number:     a.Number,
				City:       a.City,
				State:      a.State,
				PostalCode: a.PostalCode,
			}
		},
		Label:      func(a *entities.Address) string { return a.Street + ", " + a.Number },
		InputLabel: func(in *entities.CreateAddressInput) string { return in.Street + ", " + in.Number },
	})
}
