package submission

import (
	"bytes"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// allowedImageTypes for artwork uploads. Matches what the validation decode
// below can actually open.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

const maxImagesPerSubmission = 10

// Service validates and accepts artist submissions. Accepted submissions
// live in memory for the process lifetime.
type Service struct {
	mu          sync.Mutex
	submissions []Submission
	maxFileSize int64
	acceptDelay time.Duration
	now         func() time.Time
}

// NewService creates a submission service. acceptDelay stands in for the
// review hand-off a real backend would do.
func NewService(maxFileSize int64, acceptDelay time.Duration) *Service {
	return &Service{
		maxFileSize: maxFileSize,
		acceptDelay: acceptDelay,
		now:         time.Now,
	}
}

// Accept validates every image and records the submission. The content type
// is sniffed from the bytes, not trusted from the upload, and each file must
// decode as a real image.
func (s *Service) Accept(name, email, description string, files []File) (Submission, error) {
	if len(files) == 0 {
		return Submission{}, ErrNoImages
	}
	if len(files) > maxImagesPerSubmission {
		return Submission{}, ErrTooManyImages
	}

	images := make([]ImageInfo, 0, len(files))
	for _, f := range files {
		info, err := s.inspect(f)
		if err != nil {
			return Submission{}, fmt.Errorf("image %q: %w", f.Filename, err)
		}
		images = append(images, info)
	}

	// Stand-in for the real review hand-off.
	time.Sleep(s.acceptDelay)

	sub := Submission{
		ID:          uuid.New(),
		Name:        name,
		Email:       email,
		Description: description,
		Images:      images,
		SubmittedAt: s.now(),
	}

	s.mu.Lock()
	s.submissions = append(s.submissions, sub)
	s.mu.Unlock()

	log.Info().
		Str("submission_id", sub.ID.String()).
		Str("artist", sub.Name).
		Int("images", len(sub.Images)).
		Msg("Artist submission accepted")
	return sub, nil
}

func (s *Service) inspect(f File) (ImageInfo, error) {
	size := int64(len(f.Content))
	if size > s.maxFileSize {
		return ImageInfo{}, ErrFileTooLarge
	}

	contentType := http.DetectContentType(f.Content)
	if !allowedImageTypes[contentType] {
		return ImageInfo{}, ErrUnsupportedImageType
	}

	img, err := imaging.Decode(bytes.NewReader(f.Content))
	if err != nil {
		return ImageInfo{}, ErrNotAnImage
	}

	bounds := img.Bounds()
	return ImageInfo{
		Filename:    f.Filename,
		ContentType: contentType,
		Size:        size,
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
	}, nil
}

// Count returns how many submissions have been accepted since startup.
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.submissions)
}
