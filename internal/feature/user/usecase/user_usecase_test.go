package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fanbase_backend/internal/feature/user/domain/entity"
)

// mockUserRepository is a function-field mock of UserRepository.
type mockUserRepository struct {
	CreateFunc           func(ctx context.Context, user *entity.User) error
	FindByIDFunc         func(ctx context.Context, id string) (*entity.User, error)
	FindByEmailOrCPFFunc func(ctx context.Context, email, cpf string) (*entity.User, error)
	UpdateWithLockFunc   func(ctx context.Context, id string, mutate func(*entity.User) error) (*entity.User, error)
	DeleteFunc           func(ctx context.Context, id string) error
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.CreateFunc(ctx, user)
}
func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return m.FindByIDFunc(ctx, id)
}
func (m *mockUserRepository) FindByEmailOrCPF(ctx context.Context, email, cpf string) (*entity.User, error) {
	return m.FindByEmailOrCPFFunc(ctx, email, cpf)
}
func (m *mockUserRepository) UpdateWithLock(ctx context.Context, id string, mutate func(*entity.User) error) (*entity.User, error) {
	return m.UpdateWithLockFunc(ctx, id, mutate)
}
func (m *mockUserRepository) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

// applyingRepo is a mockUserRepository whose UpdateWithLock applies the
// mutation to a held record, mimicking the real read-modify-write.
func applyingRepo(stored *entity.User) *mockUserRepository {
	return &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*entity.User, error) {
			if stored == nil || stored.ID != id {
				return nil, ErrUserNotFound
			}
			return stored, nil
		},
		UpdateWithLockFunc: func(ctx context.Context, id string, mutate func(*entity.User) error) (*entity.User, error) {
			if stored == nil || stored.ID != id {
				return nil, ErrUserNotFound
			}
			if err := mutate(stored); err != nil {
				return nil, err
			}
			return stored, nil
		},
	}
}

type mockStorage struct {
	UploadFunc func(ctx context.Context, objectPath, contentType string, data []byte) (string, error)
}

func (m *mockStorage) Upload(ctx context.Context, objectPath, contentType string, data []byte) (string, error) {
	return m.UploadFunc(ctx, objectPath, contentType, data)
}

type mockAnalyzer struct {
	AnalyzeFunc func(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}

func (m *mockAnalyzer) Analyze(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	return m.AnalyzeFunc(ctx, prompt, image, mimeType)
}

type mockSocialGateway struct {
	FetchInteractionsFunc func(ctx context.Context, platform, accountID string) (entity.SocialInteractions, entity.InteractionSummary, error)
}

func (m *mockSocialGateway) FetchInteractions(ctx context.Context, platform, accountID string) (entity.SocialInteractions, entity.InteractionSummary, error) {
	return m.FetchInteractionsFunc(ctx, platform, accountID)
}

type mockProfileValidator struct {
	ValidateProfileFunc func(ctx context.Context, platform, profileURL string) (entity.ProfileValidation, error)
}

func (m *mockProfileValidator) ValidateProfile(ctx context.Context, platform, profileURL string) (entity.ProfileValidation, error) {
	return m.ValidateProfileFunc(ctx, platform, profileURL)
}

func newUsecase(repo UserRepository, storage DocumentStorage, analyzer DocumentAnalyzer,
	social SocialMediaGateway, validator ProfileValidator) *userUsecase {
	return NewUserUsecase(repo, storage, analyzer, social, validator, time.Second)
}

func TestUserUsecase_Create(t *testing.T) {
	newUser := func() *entity.User {
		return &entity.User{Name: "Ana Souza", Email: "ana@example.com", CPF: "12345678901"}
	}

	t.Run("assigns an id and persists", func(t *testing.T) {
		var created *entity.User
		repo := &mockUserRepository{
			FindByEmailOrCPFFunc: func(ctx context.Context, email, cpf string) (*entity.User, error) {
				return nil, ErrUserNotFound
			},
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				created = user
				return nil
			},
		}
		uc := newUsecase(repo, nil, nil, nil, nil)

		user, err := uc.Create(context.Background(), newUser())

		require.NoError(t, err)
		assert.NotEmpty(t, user.ID, "id was not assigned")
		require.NotNil(t, created)
		assert.Equal(t, user.ID, created.ID)
	})

	t.Run("rejects duplicate email or CPF without persisting", func(t *testing.T) {
		createCalled := false
		repo := &mockUserRepository{
			FindByEmailOrCPFFunc: func(ctx context.Context, email, cpf string) (*entity.User, error) {
				return &entity.User{ID: "existing"}, nil
			},
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				createCalled = true
				return nil
			},
		}
		uc := newUsecase(repo, nil, nil, nil, nil)

		user, err := uc.Create(context.Background(), newUser())

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
		assert.False(t, createCalled, "Create must not run after a duplicate hit")
	})

	t.Run("propagates duplicate-check failures", func(t *testing.T) {
		repo := &mockUserRepository{
			FindByEmailOrCPFFunc: func(ctx context.Context, email, cpf string) (*entity.User, error) {
				return nil, assert.AnError
			},
		}
		uc := newUsecase(repo, nil, nil, nil, nil)

		_, err := uc.Create(context.Background(), newUser())

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestUserUsecase_Update(t *testing.T) {
	t.Run("empty update is rejected", func(t *testing.T) {
		uc := newUsecase(&mockUserRepository{}, nil, nil, nil, nil)

		_, err := uc.Update(context.Background(), "u1", UserUpdate{})

		assert.ErrorIs(t, err, ErrEmptyUpdate)
	})

	t.Run("only provided fields change", func(t *testing.T) {
		stored := &entity.User{
			ID:               "u1",
			Name:             "Ana Souza",
			Email:            "ana@example.com",
			CPF:              "12345678901",
			EsportsInterests: []string{"CS2"},
		}
		uc := newUsecase(applyingRepo(stored), nil, nil, nil, nil)

		name := "Ana Clara Souza"
		updated, err := uc.Update(context.Background(), "u1", UserUpdate{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, "Ana Clara Souza", updated.Name)
		assert.Equal(t, "ana@example.com", updated.Email, "email must stay untouched")
		assert.Equal(t, []string{"CS2"}, updated.EsportsInterests, "interests must stay untouched")
	})

	t.Run("unknown user returns ErrUserNotFound", func(t *testing.T) {
		uc := newUsecase(applyingRepo(nil), nil, nil, nil, nil)

		name := "x"
		_, err := uc.Update(context.Background(), "missing", UserUpdate{Name: &name})

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserUsecase_UploadDocument(t *testing.T) {
	image := []byte("fake-image-bytes")

	verifiedReply := `{"nameMatch": true, "numberMatch": true, "appearsToBeLegitimate": true, "confidence": 0.95}`

	t.Run("verified document is persisted with the gemini result", func(t *testing.T) {
		stored := &entity.User{ID: "u1", Name: "Ana Souza"}
		var uploadedPath string
		storage := &mockStorage{
			UploadFunc: func(ctx context.Context, objectPath, contentType string, data []byte) (string, error) {
				uploadedPath = objectPath
				return "https://storage.googleapis.com/fanbase-documents/" + objectPath, nil
			},
		}
		analyzer := &mockAnalyzer{
			AnalyzeFunc: func(ctx context.Context, prompt string, img []byte, mimeType string) (string, error) {
				assert.Contains(t, prompt, "Ana Souza")
				assert.Contains(t, prompt, "123456789")
				return verifiedReply, nil
			},
		}
		uc := newUsecase(applyingRepo(stored), storage, analyzer, nil, nil)

		status, err := uc.UploadDocument(context.Background(), "u1", entity.DocumentTypeRG, "123456789", "doc.jpg", "image/jpeg", image)

		require.NoError(t, err)
		assert.True(t, status.Verified)
		assert.Equal(t, entity.VerificationSourceGemini, status.Details.Source)

		assert.True(t, strings.HasPrefix(uploadedPath, "documents/u1/"), "object path %q is not namespaced by user", uploadedPath)
		assert.True(t, strings.HasSuffix(uploadedPath, ".jpg"), "object path %q lost the extension", uploadedPath)

		assert.Equal(t, entity.DocumentTypeRG, stored.DocumentType)
		assert.Equal(t, "123456789", stored.DocumentNumber)
		assert.True(t, stored.DocumentVerified)
		assert.NotEmpty(t, stored.DocumentImageURL)
	})

	t.Run("low confidence is stored but not verified", func(t *testing.T) {
		stored := &entity.User{ID: "u1", Name: "Ana Souza"}
		storage := &mockStorage{UploadFunc: func(ctx context.Context, objectPath, contentType string, data []byte) (string, error) {
			return "https://example.com/doc", nil
		}}
		analyzer := &mockAnalyzer{AnalyzeFunc: func(ctx context.Context, prompt string, img []byte, mimeType string) (string, error) {
			return `{"nameMatch": true, "numberMatch": true, "appearsToBeLegitimate": true, "confidence": 0.5}`, nil
		}}
		uc := newUsecase(applyingRepo(stored), storage, analyzer, nil, nil)

		status, err := uc.UploadDocument(context.Background(), "u1", entity.DocumentTypeCNH, "987", "doc.png", "image/png", image)

		require.NoError(t, err)
		assert.False(t, status.Verified)
		assert.False(t, stored.DocumentVerified)
		assert.Equal(t, 0.5, status.Details.Confidence, "raw details must still be persisted")
	})

	t.Run("analyzer failure degrades to a simulated result", func(t *testing.T) {
		stored := &entity.User{ID: "u1", Name: "Ana Souza"}
		storage := &mockStorage{UploadFunc: func(ctx context.Context, objectPath, contentType string, data []byte) (string, error) {
			return "https://example.com/doc", nil
		}}
		analyzer := &mockAnalyzer{AnalyzeFunc: func(ctx context.Context, prompt string, img []byte, mimeType string) (string, error) {
			return "", fmt.Errorf("model unavailable")
		}}
		uc := newUsecase(applyingRepo(stored), storage, analyzer, nil, nil)

		status, err := uc.UploadDocument(context.Background(), "u1", entity.DocumentTypeRG, "123", "doc.jpg", "image/jpeg", image)

		require.NoError(t, err, "a degraded verification must not fail the upload")
		assert.Equal(t, entity.VerificationSourceSimulated, status.Details.Source)
		assert.Equal(t, entity.VerificationSourceSimulated, stored.DocumentVerificationDetails.Source)
	})

	t.Run("unparsable reply degrades to a simulated result", func(t *testing.T) {
		stored := &entity.User{ID: "u1", Name: "Ana Souza"}
		storage := &mockStorage{UploadFunc: func(ctx context.Context, objectPath, contentType string, data []byte) (string, error) {
			return "https://example.com/doc", nil
		}}
		analyzer := &mockAnalyzer{AnalyzeFunc: func(ctx context.Context, prompt string, img []byte, mimeType string) (string, error) {
			return "I could not read the document, sorry.", nil
		}}
		uc := newUsecase(applyingRepo(stored), storage, analyzer, nil, nil)

		status, err := uc.UploadDocument(context.Background(), "u1", entity.DocumentTypeRG, "123", "doc.jpg", "image/jpeg", image)

		require.NoError(t, err)
		assert.Equal(t, entity.VerificationSourceSimulated, status.Details.Source)
	})

	t.Run("empty image is rejected", func(t *testing.T) {
		uc := newUsecase(&mockUserRepository{}, nil, nil, nil, nil)

		_, err := uc.UploadDocument(context.Background(), "u1", entity.DocumentTypeRG, "123", "doc.jpg", "image/jpeg", nil)

		assert.Error(t, err)
	})

	t.Run("oversized image is rejected", func(t *testing.T) {
		uc := newUsecase(&mockUserRepository{}, nil, nil, nil, nil)

		big := make([]byte, MaxImageSize+1)
		_, err := uc.UploadDocument(context.Background(), "u1", entity.DocumentTypeRG, "123", "doc.jpg", "image/jpeg", big)

		assert.ErrorIs(t, err, ErrImageTooLarge)
	})

	t.Run("unknown user returns ErrUserNotFound before uploading", func(t *testing.T) {
		uploadCalled := false
		storage := &mockStorage{UploadFunc: func(ctx context.Context, objectPath, contentType string, data []byte) (string, error) {
			uploadCalled = true
			return "", nil
		}}
		uc := newUsecase(applyingRepo(nil), storage, nil, nil, nil)

		_, err := uc.UploadDocument(context.Background(), "missing", entity.DocumentTypeRG, "123", "doc.jpg", "image/jpeg", image)

		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.False(t, uploadCalled, "storage must not be touched for an unknown user")
	})

	t.Run("storage failure aborts the flow", func(t *testing.T) {
		stored := &entity.User{ID: "u1", Name: "Ana Souza"}
		storage := &mockStorage{UploadFunc: func(ctx context.Context, objectPath, contentType string, data []byte) (string, error) {
			return "", assert.AnError
		}}
		uc := newUsecase(applyingRepo(stored), storage, nil, nil, nil)

		_, err := uc.UploadDocument(context.Background(), "u1", entity.DocumentTypeRG, "123", "doc.jpg", "image/jpeg", image)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Empty(t, stored.DocumentImageURL, "record must stay untouched after a storage failure")
	})
}

func TestUserUsecase_ConnectSocialMedia(t *testing.T) {
	interactions := entity.SocialInteractions{Likes: 10, Comments: 5, Shares: 2}
	summary := entity.InteractionSummary{TotalInteractions: 17, FollowingDuration: "12 months", LastMonthInteractions: 8}

	gateway := &mockSocialGateway{
		FetchInteractionsFunc: func(ctx context.Context, platform, accountID string) (entity.SocialInteractions, entity.InteractionSummary, error) {
			return interactions, summary, nil
		},
	}

	t.Run("links the account and stores its metrics", func(t *testing.T) {
		stored := &entity.User{ID: "u1"}
		uc := newUsecase(applyingRepo(stored), nil, nil, gateway, nil)

		err := uc.ConnectSocialMedia(context.Background(), "u1", "instagram", "ana.furia")

		require.NoError(t, err)
		assert.Equal(t, entity.SocialAccount{AccountID: "ana.furia", Connected: true}, stored.SocialMediaAccounts["instagram"])
		assert.Equal(t, interactions, stored.SocialMediaInteractions["instagram"])
		assert.Equal(t, summary, stored.InteractionSummary["instagram"])
	})

	t.Run("reconnecting a platform leaves other platforms untouched", func(t *testing.T) {
		stored := &entity.User{
			ID: "u1",
			SocialMediaAccounts: map[string]entity.SocialAccount{
				"twitch": {AccountID: "ana_tv", Connected: true},
			},
			SocialMediaInteractions: map[string]entity.SocialInteractions{
				"twitch": {Likes: 99},
			},
		}
		uc := newUsecase(applyingRepo(stored), nil, nil, gateway, nil)

		err := uc.ConnectSocialMedia(context.Background(), "u1", "instagram", "ana.furia")

		require.NoError(t, err)
		assert.Equal(t, "ana_tv", stored.SocialMediaAccounts["twitch"].AccountID)
		assert.Equal(t, 99, stored.SocialMediaInteractions["twitch"].Likes)
		assert.Equal(t, "ana.furia", stored.SocialMediaAccounts["instagram"].AccountID)
	})

	t.Run("gateway failure leaves the record untouched", func(t *testing.T) {
		stored := &entity.User{ID: "u1"}
		failing := &mockSocialGateway{
			FetchInteractionsFunc: func(ctx context.Context, platform, accountID string) (entity.SocialInteractions, entity.InteractionSummary, error) {
				return entity.SocialInteractions{}, entity.InteractionSummary{}, assert.AnError
			},
		}
		uc := newUsecase(applyingRepo(stored), nil, nil, failing, nil)

		err := uc.ConnectSocialMedia(context.Background(), "u1", "instagram", "ana.furia")

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, stored.SocialMediaAccounts)
	})

	t.Run("unknown user returns ErrUserNotFound", func(t *testing.T) {
		uc := newUsecase(applyingRepo(nil), nil, nil, gateway, nil)

		err := uc.ConnectSocialMedia(context.Background(), "missing", "instagram", "ana.furia")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserUsecase_ValidateEsportsProfile(t *testing.T) {
	result := entity.ProfileValidation{
		ProfileExists:  true,
		Confidence:     0.9,
		DetectedTeams:  []string{"FURIA"},
		DetectedEvents: []string{"IEM Rio Major"},
		RelevanceScore: 0.8,
		ValidatedAt:    time.Now(),
	}

	validator := &mockProfileValidator{
		ValidateProfileFunc: func(ctx context.Context, platform, profileURL string) (entity.ProfileValidation, error) {
			return result, nil
		},
	}

	t.Run("stores the url and validation result", func(t *testing.T) {
		stored := &entity.User{ID: "u1"}
		uc := newUsecase(applyingRepo(stored), nil, nil, nil, validator)

		got, err := uc.ValidateEsportsProfile(context.Background(), "u1", "hltv", "https://www.hltv.org/profile/1")

		require.NoError(t, err)
		assert.Equal(t, result, *got)
		assert.Equal(t, "https://www.hltv.org/profile/1", stored.EsportsProfiles["hltv"])
		assert.Equal(t, result, stored.ProfileValidationResults["hltv"])
	})

	t.Run("validator failure leaves the record untouched", func(t *testing.T) {
		stored := &entity.User{ID: "u1"}
		failing := &mockProfileValidator{
			ValidateProfileFunc: func(ctx context.Context, platform, profileURL string) (entity.ProfileValidation, error) {
				return entity.ProfileValidation{}, assert.AnError
			},
		}
		uc := newUsecase(applyingRepo(stored), nil, nil, nil, failing)

		_, err := uc.ValidateEsportsProfile(context.Background(), "u1", "hltv", "https://www.hltv.org/profile/1")

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, stored.EsportsProfiles)
	})

	t.Run("unknown user returns ErrUserNotFound", func(t *testing.T) {
		uc := newUsecase(applyingRepo(nil), nil, nil, nil, validator)

		_, err := uc.ValidateEsportsProfile(context.Background(), "missing", "hltv", "https://www.hltv.org/profile/1")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
