package dto

import (
	"time"

	"fanbase_backend/internal/feature/user/domain/entity"
	"fanbase_backend/internal/feature/user/usecase"
)

// UpdateAddressPayload replaces the stored address wholesale when present.
type UpdateAddressPayload struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state" binding:"omitempty,len=2"`
	ZipCode      string `json:"zipCode" binding:"omitempty,len=8,numeric"`
}

// AttendedEventPayload is one attended-event record.
type AttendedEventPayload struct {
	Name     string    `json:"name" binding:"required"`
	Date     time.Time `json:"date" binding:"required"`
	Location string    `json:"location" binding:"required"`
}

// ActivityPayload is one participated-activity record.
type ActivityPayload struct {
	Name        string    `json:"name" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Description string    `json:"description"`
}

// PurchasePayload is one purchase record.
type PurchasePayload struct {
	Item   string    `json:"item" binding:"required"`
	Date   time.Time `json:"date" binding:"required"`
	Amount float64   `json:"amount" binding:"required,gt=0"`
}

// UpdateUserRequest is the body of PUT /users/:id. Every field is
// optional, but at least one must be present.
type UpdateUserRequest struct {
	Name                   *string                 `json:"name" binding:"omitempty,min=3,max=100"`
	Email                  *string                 `json:"email" binding:"omitempty,email"`
	Address                *UpdateAddressPayload   `json:"address"`
	EsportsInterests       *[]string               `json:"esportsInterests"`
	AttendedEvents         *[]AttendedEventPayload `json:"attendedEvents" binding:"omitempty,dive"`
	ParticipatedActivities *[]ActivityPayload      `json:"participatedActivities" binding:"omitempty,dive"`
	Purchases              *[]PurchasePayload      `json:"purchases" binding:"omitempty,dive"`
}

// ToUserUpdate converts the request into the usecase's partial update.
func (r UpdateUserRequest) ToUserUpdate() usecase.UserUpdate {
	upd := usecase.UserUpdate{
		Name:             r.Name,
		Email:            r.Email,
		EsportsInterests: r.EsportsInterests,
	}
	if r.Address != nil {
		upd.Address = &entity.Address{
			Street:       r.Address.Street,
			Number:       r.Address.Number,
			Complement:   r.Address.Complement,
			Neighborhood: r.Address.Neighborhood,
			City:         r.Address.City,
			State:        r.Address.State,
			ZipCode:      r.Address.ZipCode,
		}
	}
	if r.AttendedEvents != nil {
		events := make([]entity.AttendedEvent, 0, len(*r.AttendedEvents))
		for _, e := range *r.AttendedEvents {
			events = append(events, entity.AttendedEvent{Name: e.Name, Date: e.Date, Location: e.Location})
		}
		upd.AttendedEvents = &events
	}
	if r.ParticipatedActivities != nil {
		acts := make([]entity.Activity, 0, len(*r.ParticipatedActivities))
		for _, a := range *r.ParticipatedActivities {
			acts = append(acts, entity.Activity{Name: a.Name, Date: a.Date, Description: a.Description})
		}
		upd.ParticipatedActivities = &acts
	}
	if r.Purchases != nil {
		purchases := make([]entity.Purchase, 0, len(*r.Purchases))
		for _, p := range *r.Purchases {
			purchases = append(purchases, entity.Purchase{Item: p.Item, Date: p.Date, Amount: p.Amount})
		}
		upd.Purchases = &purchases
	}
	return upd
}
