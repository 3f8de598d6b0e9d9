package submission

// Fields of the multipart submission form. Images arrive as file parts under
// the "images" field and are validated separately.
type SubmitRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Email       string `json:"email" validate:"required,email"`
	Description string `json:"description" validate:"max=2000"`
}

// SubmitResponse acknowledges an accepted submission.
type SubmitResponse struct {
	ID     string      `json:"id"`
	Images []ImageInfo `json:"images"`
}
