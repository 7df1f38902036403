package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/google/uuid"

	"fanbase_backend/internal/feature/user/domain/entity"
)

const (
	// MaxImageSize is the maximum accepted document image size (10MB).
	MaxImageSize = 10 * 1024 * 1024

	// defaultCollaboratorTimeout bounds calls to external collaborators
	// (object storage, generative AI) so a slow upstream cannot hold a
	// request open indefinitely.
	defaultCollaboratorTimeout = 30 * time.Second
)

// UserRepository abstracts persistence of user records.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. Returns ErrUserAlreadyExists when the
	// email or CPF is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by id, or ErrUserNotFound.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmailOrCPF retrieves a user matching either value, or
	// ErrUserNotFound when none matches.
	FindByEmailOrCPF(ctx context.Context, email, cpf string) (*entity.User, error)

	// UpdateWithLock loads the user under a write lock, applies mutate and
	// persists the result as a single read-modify-write. Returns
	// ErrUserNotFound when the id does not exist.
	UpdateWithLock(ctx context.Context, id string, mutate func(*entity.User) error) (*entity.User, error)

	// Delete permanently removes a user, or returns ErrUserNotFound.
	Delete(ctx context.Context, id string) error
}

// DocumentStorage abstracts the object-storage collaborator holding
// uploaded document images.
type DocumentStorage interface {
	// Upload stores the image under objectPath and returns its public URL.
	Upload(ctx context.Context, objectPath, contentType string, data []byte) (string, error)
}

// DocumentAnalyzer abstracts the generative-AI collaborator used for
// document verification.
type DocumentAnalyzer interface {
	// Analyze sends the prompt and the inline image to the model and
	// returns the raw text reply.
	Analyze(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}

// SocialMediaGateway fetches engagement data for a linked account.
// The production implementation is simulated; see adapters.
type SocialMediaGateway interface {
	FetchInteractions(ctx context.Context, platform, accountID string) (entity.SocialInteractions, entity.InteractionSummary, error)
}

// ProfileValidator validates an e-sports profile URL.
// The production implementation is simulated; see adapters.
type ProfileValidator interface {
	ValidateProfile(ctx context.Context, platform, profileURL string) (entity.ProfileValidation, error)
}

// UserUpdate carries the optional fields of a partial update.
// Nil fields keep their prior value; a provided address replaces the
// stored address wholesale.
type UserUpdate struct {
	Name                   *string
	Email                  *string
	Address                *entity.Address
	EsportsInterests       *[]string
	AttendedEvents         *[]entity.AttendedEvent
	ParticipatedActivities *[]entity.Activity
	Purchases              *[]entity.Purchase
}

// Empty reports whether no field was provided.
func (u UserUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Address == nil &&
		u.EsportsInterests == nil && u.AttendedEvents == nil &&
		u.ParticipatedActivities == nil && u.Purchases == nil
}

// DocumentStatus is the outcome of a document upload and verification.
type DocumentStatus struct {
	Verified bool                       `json:"verified"`
	Details  entity.VerificationDetails `json:"details"`
}

// userUsecase orchestrates user CRUD and the enrichment flows.
type userUsecase struct {
	users     UserRepository
	storage   DocumentStorage
	analyzer  DocumentAnalyzer
	social    SocialMediaGateway
	validator ProfileValidator
	timeout   time.Duration
}

// NewUserUsecase creates a new userUsecase. A non-positive timeout falls
// back to the default collaborator timeout.
func NewUserUsecase(users UserRepository, storage DocumentStorage, analyzer DocumentAnalyzer,
	social SocialMediaGateway, validator ProfileValidator, timeout time.Duration) *userUsecase {
	if timeout <= 0 {
		timeout = defaultCollaboratorTimeout
	}
	return &userUsecase{
		users:     users,
		storage:   storage,
		analyzer:  analyzer,
		social:    social,
		validator: validator,
		timeout:   timeout,
	}
}

// Create registers a new user. It rejects duplicates by email or CPF
// before persisting; the unique indexes remain as a backstop.
func (u *userUsecase) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	existing, err := u.users.FindByEmailOrCPF(ctx, user.Email, user.CPF)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("duplicate check failed: %w", err)
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	user.ID = uuid.NewString()
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// FindByID retrieves the full user record.
func (u *userUsecase) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// Update merges the provided fields into the stored record. Unspecified
// fields retain their prior value.
func (u *userUsecase) Update(ctx context.Context, id string, changes UserUpdate) (*entity.User, error) {
	if changes.Empty() {
		return nil, ErrEmptyUpdate
	}
	return u.users.UpdateWithLock(ctx, id, func(user *entity.User) error {
		if changes.Name != nil {
			user.Name = *changes.Name
		}
		if changes.Email != nil {
			user.Email = *changes.Email
		}
		if changes.Address != nil {
			user.Address = *changes.Address
		}
		if changes.EsportsInterests != nil {
			user.EsportsInterests = *changes.EsportsInterests
		}
		if changes.AttendedEvents != nil {
			user.AttendedEvents = *changes.AttendedEvents
		}
		if changes.ParticipatedActivities != nil {
			user.ParticipatedActivities = *changes.ParticipatedActivities
		}
		if changes.Purchases != nil {
			user.Purchases = *changes.Purchases
		}
		return nil
	})
}

// Delete permanently removes a user record.
func (u *userUsecase) Delete(ctx context.Context, id string) error {
	return u.users.Delete(ctx, id)
}

// UploadDocument stores the document image, runs verification against the
// AI collaborator and persists the outcome. The record mutation happens in
// a single read-modify-write so a concurrent enrichment on the same user
// cannot lose either write.
func (u *userUsecase) UploadDocument(ctx context.Context, id, docType, docNumber, filename, contentType string, image []byte) (*DocumentStatus, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("image data is empty")
	}
	if len(image) > MaxImageSize {
		return nil, ErrImageTooLarge
	}

	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	objectPath := fmt.Sprintf("documents/%s/%s%s", user.ID, uuid.NewString(), path.Ext(filename))

	storageCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	imageURL, err := u.storage.Upload(storageCtx, objectPath, contentType, image)
	if err != nil {
		return nil, fmt.Errorf("document image upload failed: %w", err)
	}

	details := u.verifyDocument(ctx, user.Name, docType, docNumber, image, contentType)
	verified := details.Verified()

	_, err = u.users.UpdateWithLock(ctx, id, func(user *entity.User) error {
		user.DocumentType = docType
		user.DocumentNumber = docNumber
		user.DocumentImageURL = imageURL
		user.DocumentVerified = verified
		user.DocumentVerificationDetails = details
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DocumentStatus{Verified: verified, Details: details}, nil
}

// verifyDocument asks the AI collaborator whether the document matches the
// user. On any call or parse failure it degrades to a synthetic result
// explicitly marked as simulated and logged, never silently passed off as
// a genuine verification.
func (u *userUsecase) verifyDocument(ctx context.Context, userName, docType, docNumber string, image []byte, mimeType string) entity.VerificationDetails {
	prompt := buildVerificationPrompt(docType, docNumber, userName)

	aiCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	reply, err := u.analyzer.Analyze(aiCtx, prompt, image, mimeType)
	if err != nil {
		slog.Warn("document verification degraded to simulated result", "error", err)
		return simulatedVerification()
	}

	details, err := parseVerificationReply(reply)
	if err != nil {
		slog.Warn("document verification reply unparsable, degraded to simulated result", "error", err)
		return simulatedVerification()
	}
	return details
}

// ConnectSocialMedia links a platform account and records its simulated
// interaction metrics plus the derived summary in one write. Connecting
// the same platform twice overwrites only that platform's entries.
func (u *userUsecase) ConnectSocialMedia(ctx context.Context, id, platform, accountID string) error {
	fetchCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	interactions, summary, err := u.social.FetchInteractions(fetchCtx, platform, accountID)
	if err != nil {
		return fmt.Errorf("fetching %s interactions failed: %w", platform, err)
	}

	_, err = u.users.UpdateWithLock(ctx, id, func(user *entity.User) error {
		if user.SocialMediaAccounts == nil {
			user.SocialMediaAccounts = map[string]entity.SocialAccount{}
		}
		if user.SocialMediaInteractions == nil {
			user.SocialMediaInteractions = map[string]entity.SocialInteractions{}
		}
		if user.InteractionSummary == nil {
			user.InteractionSummary = map[string]entity.InteractionSummary{}
		}
		user.SocialMediaAccounts[platform] = entity.SocialAccount{AccountID: accountID, Connected: true}
		user.SocialMediaInteractions[platform] = interactions
		user.InteractionSummary[platform] = summary
		return nil
	})
	return err
}

// ValidateEsportsProfile records the profile URL and its simulated
// validation result in one write.
func (u *userUsecase) ValidateEsportsProfile(ctx context.Context, id, platform, profileURL string) (*entity.ProfileValidation, error) {
	validateCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	result, err := u.validator.ValidateProfile(validateCtx, platform, profileURL)
	if err != nil {
		return nil, fmt.Errorf("validating %s profile failed: %w", platform, err)
	}

	_, err = u.users.UpdateWithLock(ctx, id, func(user *entity.User) error {
		if user.EsportsProfiles == nil {
			user.EsportsProfiles = map[string]string{}
		}
		if user.ProfileValidationResults == nil {
			user.ProfileValidationResults = map[string]entity.ProfileValidation{}
		}
		user.EsportsProfiles[platform] = profileURL
		user.ProfileValidationResults[platform] = result
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
