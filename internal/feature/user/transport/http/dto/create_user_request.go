// Package dto defines the request payloads for the user feature endpoints.
package dto

import "fanbase_backend/internal/feature/user/domain/entity"

// AddressPayload is the structured address of a create request.
// All sub-fields are required except the complement.
type AddressPayload struct {
	Street       string `json:"street" binding:"required"`
	Number       string `json:"number" binding:"required"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood" binding:"required"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required,len=2"`
	ZipCode      string `json:"zipCode" binding:"required,len=8,numeric"`
}

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Name    string          `json:"name" binding:"required,min=3,max=100"`
	Email   string          `json:"email" binding:"required,email"`
	CPF     string          `json:"cpf" binding:"required,len=11,numeric"`
	Address *AddressPayload `json:"address" binding:"required"`
}

// ToEntity converts the request to a user entity.
func (r CreateUserRequest) ToEntity() *entity.User {
	return &entity.User{
		Name:  r.Name,
		Email: r.Email,
		CPF:   r.CPF,
		Address: entity.Address{
			Street:       r.Address.Street,
			Number:       r.Address.Number,
			Complement:   r.Address.Complement,
			Neighborhood: r.Address.Neighborhood,
			City:         r.Address.City,
			State:        r.Address.State,
			ZipCode:      r.Address.ZipCode,
		},
	}
}
