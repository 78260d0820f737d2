package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/la121/consultants-api/internal/dto"
	"github.com/la121/consultants-api/internal/entity"
	"github.com/la121/consultants-api/internal/repository"
)

// ErrCheckoutUnavailable marks a checkout session that failed at the payment
// provider rather than through caller input.
var ErrCheckoutUnavailable = errors.New("checkout provider unavailable")

// CheckoutCreator opens a hosted checkout session for a price identifier and
// returns the URL the client should be sent to.
type CheckoutCreator interface {
	CreateSession(ctx context.Context, priceID string) (string, error)
}

// EbooksService covers the catalogue and the purchase flow.
type EbooksService struct {
	repo     repository.EbooksRepository
	checkout CheckoutCreator
}

// NewEbooksService builds a new EbooksService. checkout may be nil when
// purchases are disabled.
func NewEbooksService(repo repository.EbooksRepository, checkout CheckoutCreator) *EbooksService {
	return &EbooksService{repo: repo, checkout: checkout}
}

// List returns the catalogue.
func (s *EbooksService) List(ctx context.Context) ([]entity.Ebook, error) {
	return s.repo.List(ctx)
}

// Checkout opens a hosted checkout session for a paid e-book.
func (s *EbooksService) Checkout(ctx context.Context, id string) (string, error) {
	ebookID, err := uuid.Parse(id)
	if err != nil {
		return "", ValidationError{Message: "invalid ebook id"}
	}

	ebook, err := s.repo.FindByID(ctx, ebookID)
	if err != nil {
		return "", err
	}
	if ebook.AccessType != entity.EbookAccessPaid || ebook.StripePriceID == nil || *ebook.StripePriceID == "" {
		return "", ValidationError{Message: "ebook is not available for purchase"}
	}
	if s.checkout == nil {
		return "", ValidationError{Message: "checkout is not configured"}
	}

	url, err := s.checkout.CreateSession(ctx, *ebook.StripePriceID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCheckoutUnavailable, err)
	}
	return url, nil
}

// Create provisions a catalogue product.
func (s *EbooksService) Create(ctx context.Context, req dto.CreateEbookRequest) (*entity.Ebook, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ValidationError{Message: "title is required"}
	}
	accessType := strings.TrimSpace(req.AccessType)
	if accessType == "" {
		accessType = entity.EbookAccessFree
	}
	if accessType != entity.EbookAccessFree && accessType != entity.EbookAccessPaid {
		return nil, ValidationError{Message: "access_type must be free or paid"}
	}
	if req.Price < 0 {
		return nil, ValidationError{Message: "price must not be negative"}
	}

	return s.repo.Create(ctx, repository.CreateEbookInput{
		Title:         strings.TrimSpace(req.Title),
		Description:   optionalString(req.Description),
		Price:         req.Price,
		AccessType:    accessType,
		StripePriceID: optionalString(req.StripePriceID),
		CoverURL:      optionalString(req.CoverURL),
		FileURL:       optionalString(req.FileURL),
	})
}

// Update patches a catalogue product.
func (s *EbooksService) Update(ctx context.Context, id string, req dto.UpdateEbookRequest) (*entity.Ebook, error) {
	ebookID, err := uuid.Parse(id)
	if err != nil {
		return nil, ValidationError{Message: "invalid ebook id"}
	}
	if req.AccessType != nil && *req.AccessType != entity.EbookAccessFree && *req.AccessType != entity.EbookAccessPaid {
		return nil, ValidationError{Message: "access_type must be free or paid"}
	}
	if req.Price != nil && *req.Price < 0 {
		return nil, ValidationError{Message: "price must not be negative"}
	}

	return s.repo.Update(ctx, ebookID, repository.UpdateEbookInput{
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		AccessType:    req.AccessType,
		StripePriceID: req.StripePriceID,
		CoverURL:      req.CoverURL,
		FileURL:       req.FileURL,
	})
}

// Delete removes a catalogue product.
func (s *EbooksService) Delete(ctx context.Context, id string) error {
	ebookID, err := uuid.Parse(id)
	if err != nil {
		return ValidationError{Message: "invalid ebook id"}
	}
	return s.repo.Delete(ctx, ebookID)
}
