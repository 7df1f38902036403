// Package entity defines the domain entities for the user feature.
package entity

import "time"

// Document types accepted for identity verification.
const (
	DocumentTypeRG  = "RG"  // Brazilian national identity card
	DocumentTypeCNH = "CNH" // Brazilian driver's license
)

// Verification detail sources. Simulated results are produced when the
// AI collaborator is unavailable and must stay distinguishable from
// genuine ones.
const (
	VerificationSourceGemini    = "gemini"
	VerificationSourceSimulated = "simulated"
)

// Address is the structured postal address stored on the user record.
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

// VerificationDetails holds the raw result of a document verification run.
type VerificationDetails struct {
	NameMatch             bool    `json:"nameMatch"`
	NumberMatch           bool    `json:"numberMatch"`
	AppearsToBeLegitimate bool    `json:"appearsToBeLegitimate"`
	Confidence            float64 `json:"confidence"`
	Source                string  `json:"source"`
}

// Verified reports whether the details amount to a verified document.
func (d VerificationDetails) Verified() bool {
	return d.NameMatch && d.NumberMatch && d.AppearsToBeLegitimate && d.Confidence > 0.8
}

// AttendedEvent is an e-sports event the user attended.
type AttendedEvent struct {
	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	Location string    `json:"location"`
}

// Activity is an activity the user participated in.
type Activity struct {
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
}

// Purchase is a merchandise or ticket purchase.
type Purchase struct {
	Item   string    `json:"item"`
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

// SocialAccount is a linked social media account.
type SocialAccount struct {
	AccountID string `json:"accountId"`
	Connected bool   `json:"connected"`
}

// SocialInteractions holds the engagement numbers fetched for a platform.
type SocialInteractions struct {
	Likes          int       `json:"likes"`
	Comments       int       `json:"comments"`
	Shares         int       `json:"shares"`
	FollowingSince time.Time `json:"followingSince"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

// InteractionSummary is the derived summary of a platform's interactions.
type InteractionSummary struct {
	TotalInteractions     int    `json:"totalInteractions"`
	FollowingDuration     string `json:"followingDuration"`
	LastMonthInteractions int    `json:"lastMonthInteractions"`
}

// ProfileValidation is the result of validating an e-sports profile URL.
type ProfileValidation struct {
	ProfileExists  bool      `json:"profileExists"`
	Confidence     float64   `json:"confidence"`
	DetectedTeams  []string  `json:"detectedTeams"`
	DetectedEvents []string  `json:"detectedEvents"`
	RelevanceScore float64   `json:"relevanceScore"`
	ValidatedAt    time.Time `json:"validatedAt"`
}

// User is the persistent fan record. Structured sub-fields are stored as
// JSON columns via GORM's JSON serializer.
type User struct {
	ID    string  `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string  `gorm:"size:100;not null" json:"name"`
	Email string  `gorm:"uniqueIndex;size:255;not null" json:"email"`
	CPF   string  `gorm:"uniqueIndex;size:11;not null" json:"cpf"`
	Address Address `gorm:"serializer:json" json:"address"`

	// Document verification
	DocumentType                string              `gorm:"size:8" json:"documentType,omitempty"`
	DocumentNumber              string              `gorm:"size:64" json:"documentNumber,omitempty"`
	DocumentImageURL            string              `gorm:"size:512" json:"documentImageUrl,omitempty"`
	DocumentVerified            bool                `json:"documentVerified"`
	DocumentVerificationDetails VerificationDetails `gorm:"serializer:json" json:"documentVerificationDetails"`

	// E-sports interests and behavior
	EsportsInterests        []string        `gorm:"serializer:json" json:"esportsInterests"`
	AttendedEvents          []AttendedEvent `gorm:"serializer:json" json:"attendedEvents"`
	ParticipatedActivities  []Activity      `gorm:"serializer:json" json:"participatedActivities"`
	Purchases               []Purchase      `gorm:"serializer:json" json:"purchases"`

	// Social media integration
	SocialMediaAccounts     map[string]SocialAccount      `gorm:"serializer:json" json:"socialMediaAccounts"`
	SocialMediaInteractions map[string]SocialInteractions `gorm:"serializer:json" json:"socialMediaInteractions"`
	InteractionSummary      map[string]InteractionSummary `gorm:"serializer:json" json:"interactionSummary"`

	// E-sports profile validation
	EsportsProfiles          map[string]string            `gorm:"serializer:json" json:"esportsProfiles"`
	ProfileValidationResults map[string]ProfileValidation `gorm:"serializer:json" json:"profileValidationResults"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName keeps the table name aligned with the original deployment.
func (User) TableName() string { return "users" }
