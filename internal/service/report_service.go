package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mihirp/lostfound/internal/ai"
	"github.com/mihirp/lostfound/internal/model"
	"github.com/mihirp/lostfound/internal/repository"
	"github.com/mihirp/lostfound/internal/storage"
)

// Tagger assigns a category label to a report. Errors mean "unavailable";
// the service substitutes the fallback label and carries on.
type Tagger interface {
	Classify(ctx context.Context, name, description string) (string, error)
}

// ValidationError lists the form fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid fields: %s", strings.Join(e.Fields, ", "))
}

type SubmitInput struct {
	ItemType    string
	ItemName    string
	Description string
	Location    string
	ContactInfo string

	Image            []byte
	ImageContentType string
}

type ReportService interface {
	Submit(ctx context.Context, in SubmitInput) (*model.Item, error)
}

type reportService struct {
	repo     repository.ItemRepository
	uploader storage.Uploader
	tagger   Tagger
}

// NewReportService wires the submission pipeline. uploader may be nil when
// no image hosting is configured; submissions then proceed without images.
func NewReportService(repo repository.ItemRepository, uploader storage.Uploader, tagger Tagger) ReportService {
	return &reportService{repo: repo, uploader: uploader, tagger: tagger}
}

func (s *reportService) Submit(ctx context.Context, in SubmitInput) (*model.Item, error) {
	in.ItemType = strings.TrimSpace(in.ItemType)
	in.ItemName = strings.TrimSpace(in.ItemName)
	in.Description = strings.TrimSpace(in.Description)
	in.Location = strings.TrimSpace(in.Location)
	in.ContactInfo = strings.TrimSpace(in.ContactInfo)

	if verr := validate(in); verr != nil {
		return nil, verr
	}

	item := &model.Item{
		ItemType:    in.ItemType,
		ItemName:    in.ItemName,
		Description: in.Description,
		Location:    in.Location,
		ContactInfo: in.ContactInfo,
	}

	// Image hosting is best-effort: a failed upload drops the image, not
	// the report.
	if len(in.Image) > 0 {
		if s.uploader == nil {
			log.Printf("image upload skipped: no storage bucket configured")
		} else if url, err := s.uploader.Upload(ctx, in.Image, in.ImageContentType); err != nil {
			log.Printf("image upload failed: %v", err)
		} else {
			item.ImagePath = &url
		}
	}

	// Tagging is best-effort enrichment, never a submission blocker.
	tag, err := s.tagger.Classify(ctx, in.ItemName, in.Description)
	if err != nil {
		log.Printf("classification failed, using fallback label: %v", err)
		tag = ai.FallbackLabel
	}
	item.Tag = tag

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("store report: %w", err)
	}
	return item, nil
}

func validate(in SubmitInput) *ValidationError {
	var fields []string
	if in.ItemType != model.ItemTypeLost && in.ItemType != model.ItemTypeFound {
		fields = append(fields, "item_type")
	}
	if l := len(in.ItemName); l < 2 || l > 100 {
		fields = append(fields, "item_name")
	}
	if len(in.Description) > 500 {
		fields = append(fields, "description")
	}
	if l := len(in.Location); l < 2 || l > 255 {
		fields = append(fields, "location")
	}
	if l := len(in.ContactInfo); l == 0 || l > 100 {
		fields = append(fields, "contact_info")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
