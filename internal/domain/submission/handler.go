package submission

import (
	"errors"
	"io"
	"net/http"

	"github.com/biras/biras-api/internal/pkg/response"
	"github.com/biras/biras-api/internal/pkg/validator"
)

// Handler handles artist submission HTTP requests.
type Handler struct {
	service *Service
}

// NewHandler creates a new submission handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Submit handles POST /api/v1/submissions (multipart/form-data).
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	// One extra MB on top of the per-file cap for the form fields.
	maxMemory := h.service.maxFileSize + 1<<20
	r.Body = http.MaxBytesReader(w, r.Body, maxMemory*maxImagesPerSubmission)
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	req := SubmitRequest{
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		Description: r.FormValue("description"),
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	var files []File
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["images"] {
			part, err := header.Open()
			if err != nil {
				response.BadRequest(w, "Could not read uploaded file")
				return
			}
			content, err := io.ReadAll(part)
			part.Close()
			if err != nil {
				response.BadRequest(w, "Could not read uploaded file")
				return
			}
			files = append(files, File{Filename: header.Filename, Content: content})
		}
	}

	sub, err := h.service.Accept(req.Name, req.Email, req.Description, files)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoImages),
			errors.Is(err, ErrTooManyImages),
			errors.Is(err, ErrFileTooLarge),
			errors.Is(err, ErrUnsupportedImageType),
			errors.Is(err, ErrNotAnImage):
			response.ValidationError(w, map[string]string{"images": err.Error()})
		default:
			response.InternalError(w)
		}
		return
	}

	response.Created(w, SubmitResponse{
		ID:     sub.ID.String(),
		Images: sub.Images,
	})
}
