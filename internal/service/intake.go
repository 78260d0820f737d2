package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/la121/consultants-api/internal/dto"
	"github.com/la121/consultants-api/internal/entity"
	"github.com/la121/consultants-api/internal/mailer"
	"github.com/la121/consultants-api/internal/repository"
)

// PartnershipNotifier sends the partnership enquiry email. Delivery is
// best-effort: a failure is logged, never rolled back into the submission.
type PartnershipNotifier interface {
	SendPartnership(ctx context.Context, n mailer.PartnershipNotification) ([]byte, error)
}

// IntakeService implements the form collector, profile resolver and
// submission writer for all public intake forms.
type IntakeService struct {
	profiles    repository.ProfilesRepository
	submissions repository.SubmissionsRepository
	notifier    PartnershipNotifier
	phoneRegion string
}

// NewIntakeService wires the intake pipeline. notifier may be nil to disable
// partnership notifications.
func NewIntakeService(profiles repository.ProfilesRepository, submissions repository.SubmissionsRepository, notifier PartnershipNotifier, phoneRegion string) *IntakeService {
	region := strings.ToUpper(strings.TrimSpace(phoneRegion))
	if region == "" {
		region = defaultPhoneRegion
	}
	return &IntakeService{
		profiles:    profiles,
		submissions: submissions,
		notifier:    notifier,
		phoneRegion: region,
	}
}

// SubmitBookCall validates and persists a call-booking submission.
func (s *IntakeService) SubmitBookCall(ctx context.Context, req dto.BookCallRequest) (*entity.Submission, error) {
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Phone) == "" || strings.TrimSpace(req.ServiceInterest) == "" ||
		strings.TrimSpace(req.PreferredDatetime) == "" {
		return nil, ValidationError{Message: "full_name, email, phone, service_interest and preferred_datetime are required"}
	}

	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	phone, err := normalizePhone(req.Phone, s.phoneRegion)
	if err != nil {
		return nil, err
	}
	linkedin, err := normalizeURL(req.LinkedinURL)
	if err != nil {
		return nil, err
	}
	preferred, err := parseDatetime(req.PreferredDatetime)
	if err != nil {
		return nil, err
	}

	profileID, err := s.resolveProfile(ctx, repository.CreateProfileInput{
		FullName:    strings.TrimSpace(req.FullName),
		Email:       email,
		Phone:       optionalString(phone),
		LinkedinURL: optionalString(linkedin),
		HowFoundUs:  optionalString(req.HowFoundUs),
	})
	if err != nil {
		return nil, err
	}

	service := strings.TrimSpace(req.ServiceInterest)
	return s.submissions.Insert(ctx, repository.InsertSubmissionInput{
		ProfileID:         profileID,
		FormType:          entity.FormTypeClientCall,
		ServiceSelected:   &service,
		PreferredDatetime: &preferred,
		AdditionalNotes:   optionalString(req.AdditionalNotes),
	})
}

// SubmitServiceOrder validates and persists a service-order submission.
func (s *IntakeService) SubmitServiceOrder(ctx context.Context, req dto.ServiceOrderRequest) (*entity.Submission, error) {
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Phone) == "" || strings.TrimSpace(req.ServiceSelected) == "" {
		return nil, ValidationError{Message: "full_name, email, phone and service_selected are required"}
	}

	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	phone, err := normalizePhone(req.Phone, s.phoneRegion)
	if err != nil {
		return nil, err
	}
	linkedin, err := normalizeURL(req.LinkedinURL)
	if err != nil {
		return nil, err
	}

	profileID, err := s.resolveProfile(ctx, repository.CreateProfileInput{
		FullName:    strings.TrimSpace(req.FullName),
		Email:       email,
		Phone:       optionalString(phone),
		LinkedinURL: optionalString(linkedin),
		HowFoundUs:  optionalString(req.HowFoundUs),
	})
	if err != nil {
		return nil, err
	}

	service := strings.TrimSpace(req.ServiceSelected)
	return s.submissions.Insert(ctx, repository.InsertSubmissionInput{
		ProfileID:       profileID,
		FormType:        entity.FormTypeServiceOrder,
		ServiceSelected: &service,
		AdditionalNotes: optionalString(req.AdditionalNotes),
	})
}

// SubmitPartnership validates and persists a partnership inquiry, then sends
// the notification email best-effort.
func (s *IntakeService) SubmitPartnership(ctx context.Context, req dto.PartnershipRequest) (*entity.Submission, error) {
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.CompanyName) == "" || strings.TrimSpace(req.PartnershipInterest) == "" {
		return nil, ValidationError{Message: "full_name, email, company_name and partnership_interest are required"}
	}

	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	phone, err := normalizePhone(req.Phone, s.phoneRegion)
	if err != nil {
		return nil, err
	}
	linkedin, err := normalizeURL(req.LinkedinURL)
	if err != nil {
		return nil, err
	}

	profileID, err := s.resolveProfile(ctx, repository.CreateProfileInput{
		FullName:    strings.TrimSpace(req.FullName),
		Email:       email,
		Phone:       optionalString(phone),
		LinkedinURL: optionalString(linkedin),
		HowFoundUs:  optionalString(req.HowFoundUs),
	})
	if err != nil {
		return nil, err
	}

	service := "Partnership Inquiry"
	notes := fmt.Sprintf("Company: %s\n\n%s", strings.TrimSpace(req.CompanyName), strings.TrimSpace(req.PartnershipInterest))
	submission, err := s.submissions.Insert(ctx, repository.InsertSubmissionInput{
		ProfileID:       profileID,
		FormType:        entity.FormTypePartnership,
		ServiceSelected: &service,
		AdditionalNotes: &notes,
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		notification := mailer.PartnershipNotification{
			FullName:       strings.TrimSpace(req.FullName),
			Email:          email,
			CompanyName:    strings.TrimSpace(req.CompanyName),
			AdditionalInfo: strings.TrimSpace(req.PartnershipInterest),
		}
		if _, err := s.notifier.SendPartnership(ctx, notification); err != nil {
			log.Printf("partnership notification failed for submission %s: %v", submission.ID, err)
		}
	}

	return submission, nil
}

// ListSubmissions returns joined submissions for the admin view.
func (s *IntakeService) ListSubmissions(ctx context.Context, filter dto.SubmissionFilter) ([]entity.Submission, error) {
	if filter.FormType != "" {
		switch filter.FormType {
		case entity.FormTypeClientCall, entity.FormTypeServiceOrder, entity.FormTypePartnership:
		default:
			return nil, ValidationError{Message: "unknown form_type"}
		}
	}
	if filter.Status != "" && !entity.IsValidSubmissionStatus(filter.Status) {
		return nil, ValidationError{Message: "unknown status"}
	}
	return s.submissions.List(ctx, filter)
}

// UpdateSubmissionStatus overwrites a submission's status. The value must be
// a member of the status enum; there are no transition guards.
func (s *IntakeService) UpdateSubmissionStatus(ctx context.Context, id, status string) (*entity.Submission, error) {
	submissionID, err := uuid.Parse(id)
	if err != nil {
		return nil, ValidationError{Message: "invalid submission id"}
	}
	if !entity.IsValidSubmissionStatus(status) {
		return nil, ValidationError{Message: "status must be one of new, in_progress, completed, cancelled"}
	}
	return s.submissions.UpdateStatus(ctx, submissionID, status)
}

// DeleteSubmission force-removes a submission.
func (s *IntakeService) DeleteSubmission(ctx context.Context, id string) error {
	submissionID, err := uuid.Parse(id)
	if err != nil {
		return ValidationError{Message: "invalid submission id"}
	}
	return s.submissions.Delete(ctx, submissionID)
}

// resolveProfile finds the contact record for the email or creates one.
// Lookup-then-insert: two concurrent first-time submissions can both miss
// the lookup and insert duplicate profiles. A profile created here is not
// compensated if the subsequent submission insert fails.
func (s *IntakeService) resolveProfile(ctx context.Context, input repository.CreateProfileInput) (uuid.UUID, error) {
	existing, err := s.profiles.FindByEmail(ctx, input.Email)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return uuid.Nil, err
	}

	created, err := s.profiles.Create(ctx, input)
	if err != nil {
		return uuid.Nil, err
	}
	return created.ID, nil
}
