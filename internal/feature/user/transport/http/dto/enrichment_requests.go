package dto

// UploadDocumentRequest carries the form fields of the multipart document
// upload. The image itself arrives as the "documentImage" file part.
type UploadDocumentRequest struct {
	DocumentType   string `form:"documentType" binding:"required,oneof=RG CNH"`
	DocumentNumber string `form:"documentNumber" binding:"required"`
}

// ConnectSocialMediaRequest is the body of POST /users/:id/social-media.
// The access token is accepted for forward compatibility; the simulated
// interaction fetch never uses it.
type ConnectSocialMediaRequest struct {
	Platform    string `json:"platform" binding:"required,oneof=instagram twitter twitch facebook"`
	AccountID   string `json:"accountId" binding:"required"`
	AccessToken string `json:"accessToken"`
}

// EsportsProfileRequest is the body of POST /users/:id/esports-profile.
type EsportsProfileRequest struct {
	Platform   string `json:"platform" binding:"required,oneof=liquipedia hltv vlr octane"`
	ProfileURL string `json:"profileUrl" binding:"required,url"`
}
