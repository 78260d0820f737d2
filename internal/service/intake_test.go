package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/la121/consultants-api/internal/dto"
	"github.com/la121/consultants-api/internal/entity"
	"github.com/la121/consultants-api/internal/mailer"
	"github.com/la121/consultants-api/internal/repository"
)

type mockProfilesRepository struct {
	findByEmail func(ctx context.Context, email string) (*entity.Profile, error)
	findByID    func(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	create      func(ctx context.Context, input repository.CreateProfileInput) (*entity.Profile, error)
	list        func(ctx context.Context) ([]entity.Profile, error)
	count       func(ctx context.Context) (int, error)
}

func (m *mockProfilesRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	if m.findByEmail != nil {
		return m.findByEmail(ctx, email)
	}
	return nil, errors.New("findByEmail not implemented")
}

func (m *mockProfilesRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	if m.findByID != nil {
		return m.findByID(ctx, id)
	}
	return nil, errors.New("FindByID not implemented")
}

func (m *mockProfilesRepository) Create(ctx context.Context, input repository.CreateProfileInput) (*entity.Profile, error) {
	if m.create != nil {
		return m.create(ctx, input)
	}
	return nil, errors.New("create not implemented")
}

func (m *mockProfilesRepository) List(ctx context.Context) ([]entity.Profile, error) {
	if m.list != nil {
		return m.list(ctx)
	}
	return nil, errors.New("List not implemented")
}

func (m *mockProfilesRepository) Count(ctx context.Context) (int, error) {
	if m.count != nil {
		return m.count(ctx)
	}
	return 0, errors.New("Count not implemented")
}

type mockSubmissionsRepository struct {
	insert        func(ctx context.Context, input repository.InsertSubmissionInput) (*entity.Submission, error)
	list          func(ctx context.Context, filter dto.SubmissionFilter) ([]entity.Submission, error)
	updateStatus  func(ctx context.Context, id uuid.UUID, status string) (*entity.Submission, error)
	deleteFn      func(ctx context.Context, id uuid.UUID) error
	countByStatus func(ctx context.Context, status string) (int, error)
}

func (m *mockSubmissionsRepository) Insert(ctx context.Context, input repository.InsertSubmissionInput) (*entity.Submission, error) {
	if m.insert != nil {
		return m.insert(ctx, input)
	}
	return nil, errors.New("insert not implemented")
}

func (m *mockSubmissionsRepository) List(ctx context.Context, filter dto.SubmissionFilter) ([]entity.Submission, error) {
	if m.list != nil {
		return m.list(ctx, filter)
	}
	return nil, errors.New("list not implemented")
}

func (m *mockSubmissionsRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Submission, error) {
	if m.updateStatus != nil {
		return m.updateStatus(ctx, id, status)
	}
	return nil, errors.New("updateStatus not implemented")
}

func (m *mockSubmissionsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return errors.New("delete not implemented")
}

func (m *mockSubmissionsRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	if m.countByStatus != nil {
		return m.countByStatus(ctx, status)
	}
	return 0, errors.New("countByStatus not implemented")
}

type mockNotifier struct {
	sent []mailer.PartnershipNotification
	err  error
}

func (m *mockNotifier) SendPartnership(ctx context.Context, n mailer.PartnershipNotification) ([]byte, error) {
	m.sent = append(m.sent, n)
	if m.err != nil {
		return nil, m.err
	}
	return []byte(`{"id":"email-1"}`), nil
}

func bookCallRequest() dto.BookCallRequest {
	return dto.BookCallRequest{
		FullName:          "Jane Doe",
		Email:             "Jane@Example.com",
		Phone:             "+44 7911 123456",
		ServiceInterest:   "CV Review",
		PreferredDatetime: "2025-03-01T10:00",
	}
}

func TestIntakeService_SubmitBookCall_RequiredFields(t *testing.T) {
	profileCalls := 0
	insertCalls := 0
	profiles := &mockProfilesRepository{
		findByEmail: func(ctx context.Context, email string) (*entity.Profile, error) {
			profileCalls++
			return nil, repository.ErrProfileNotFound
		},
	}
	submissions := &mockSubmissionsRepository{
		insert: func(ctx context.Context, input repository.InsertSubmissionInput) (*entity.Submission, error) {
			insertCalls++
			return &entity.Submission{}, nil
		},
	}
	svc := NewIntakeService(profiles, submissions, nil, "GB")

	tests := map[string]func(r *dto.BookCallRequest){
		"missing full_name":          func(r *dto.BookCallRequest) { r.FullName = " " },
		"missing email":              func(r *dto.BookCallRequest) { r.Email = "" },
		"missing phone":              func(r *dto.BookCallRequest) { r.Phone = "" },
		"missing service_interest":   func(r *dto.BookCallRequest) { r.ServiceInterest = "" },
		"missing preferred_datetime": func(r *dto.BookCallRequest) { r.PreferredDatetime = "" },
		"malformed email":            func(r *dto.BookCallRequest) { r.Email = "not-an-email" },
		"malformed phone":            func(r *dto.BookCallRequest) { r.Phone = "12" },
		"malformed datetime":         func(r *dto.BookCallRequest) { r.PreferredDatetime = "tomorrow" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			req := bookCallRequest()
			mutate(&req)

			_, err := svc.SubmitBookCall(context.Background(), req)
			var validation ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}

	if insertCalls != 0 {
		t.Fatalf("expected no submission writes on invalid payloads, got %d", insertCalls)
	}
}

func TestIntakeService_SubmitBookCall_NewProfile(t *testing.T) {
	profileID := uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	var created *repository.CreateProfileInput
	var inserted *repository.InsertSubmissionInput

	profiles := &mockProfilesRepository{
		findByEmail: func(ctx context.Context, email string) (*entity.Profile, error) {
			return nil, repository.ErrProfileNotFound
		},
		create: func(ctx context.Context, input repository.CreateProfileInput) (*entity.Profile, error) {
			created = &input
			return &entity.Profile{ID: profileID, FullName: input.FullName, Email: input.Email}, nil
		},
	}
	submissions := &mockSubmissionsRepository{
		insert: func(ctx context.Context, input repository.InsertSubmissionInput) (*entity.Submission, error) {
			inserted = &input
			return &entity.Submission{ID: uuid.New(), ProfileID: input.ProfileID, FormType: input.FormType, Status: "new"}, nil
		},
	}

	svc := NewIntakeService(profiles, submissions, nil, "GB")
	submission, err := svc.SubmitBookCall(context.Background(), bookCallRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created == nil {
		t.Fatal("expected a profile to be created")
	}
	if created.Email != "jane@example.com" {
		t.Fatalf("expected lowercased email, got %q", created.Email)
	}
	if inserted == nil || inserted.ProfileID != profileID {
		t.Fatalf("expected submission linked to new profile, got %+v", inserted)
	}
	if inserted.FormType != entity.FormTypeClientCall {
		t.Fatalf("expected form type client_call, got %q", inserted.FormType)
	}
	if inserted.PreferredDatetime == nil {
		t.Fatal("expected preferred datetime to be parsed")
	}
	if submission.Status != "new" {
		t.Fatalf("expected new submission, got %+v", submission)
	}
}

func TestIntakeService_ProfileReuseAcrossSubmissions(t *testing.T) {
	profileID := uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	createCalls := 0
	insertCalls := 0
	known := false

	profiles := &mockProfilesRepository{
		findByEmail: func(ctx context.Context, email string) (*entity.Profile, error) {
			if known {
				return &entity.Profile{ID: profileID, Email: email}, nil
			}
			return nil, repository.ErrProfileNotFound
		},
		create: func(ctx context.Context, input repository.CreateProfileInput) (*entity.Profile, error) {
			createCalls++
			known = true
			return &entity.Profile{ID: profileID, Email: input.Email}, nil
		},
	}
	submissions := &mockSubmissionsRepository{
		insert: func(ctx context.Context, input repository.InsertSubmissionInput) (*entity.Submission, error) {
			insertCalls++
			if input.ProfileID != profileID {
				t.Fatalf("expected submissions to share profile %s, got %s", profileID, input.ProfileID)
			}
			return &entity.Submission{ID: uuid.New(), ProfileID: input.ProfileID}, nil
		},
	}

	svc := NewIntakeService(profiles, submissions, nil, "GB")

	if _, err := svc.SubmitBookCall(context.Background(), bookCallRequest()); err != nil {
		t.Fatalf("unexpected error on first submission: %v", err)
	}
	if _, err := svc.SubmitServiceOrder(context.Background(), dto.ServiceOrderRequest{
		FullName:        "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "+44 7911 123456",
		ServiceSelected: "LinkedIn Optimisation",
	}); err != nil {
		t.Fatalf("unexpected error on second submission: %v", err)
	}

	if createCalls != 1 {
		t.Fatalf("expected exactly one profile create, got %d", createCalls)
	}
	if insertCalls != 2 {
		t.Fatalf("expected two submissions, got %d", insertCalls)
	}
}

func TestIntakeService_SubmitPartnership(t *testing.T) {
	profileID := uuid.New()
	var inserted *repository.InsertSubmissionInput
	notifier := &mockNotifier{}

	profiles := &mockProfilesRepository{
		findByEmail: func(ctx context.Context, email string) (*entity.Profile, error) {
			return &entity.Profile{ID: profileID, Email: email}, nil
		},
	}
	submissions := &mockSubmissionsRepository{
		insert: func(ctx context.Context, input repository.InsertSubmissionInput) (*entity.Submission, error) {
			inserted = &input
			return &entity.Submission{ID: uuid.New(), ProfileID: input.ProfileID, FormType: input.FormType}, nil
		},
	}

	svc := NewIntakeService(profiles, submissions, notifier, "GB")
	_, err := svc.SubmitPartnership(context.Background(), dto.PartnershipRequest{
		FullName:            "Jane Doe",
		Email:               "jane@example.com",
		CompanyName:         "Acme Ltd",
		PartnershipInterest: "Bulk CV reviews for our alumni.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if inserted.FormType != entity.FormTypePartnership {
		t.Fatalf("expected partnership form type, got %q", inserted.FormType)
	}
	if inserted.ServiceSelected == nil || *inserted.ServiceSelected != "Partnership Inquiry" {
		t.Fatalf("expected Partnership Inquiry service, got %v", inserted.ServiceSelected)
	}
	if inserted.AdditionalNotes == nil || !strings.HasPrefix(*inserted.AdditionalNotes, "Company: Acme Ltd\n\n") {
		t.Fatalf("expected company folded into notes, got %v", inserted.AdditionalNotes)
	}
	if len(notifier.sent) != 1 || notifier.sent[0].CompanyName != "Acme Ltd" {
		t.Fatalf("expected one notification for Acme Ltd, got %+v", notifier.sent)
	}
}

func TestIntakeService_SubmitPartnership_NotifierFailureNonFatal(t *testing.T) {
	profiles := &mockProfilesRepository{
		findByEmail: func(ctx context.Context, email string) (*entity.Profile, error) {
			return &entity.Profile{ID: uuid.New(), Email: email}, nil
		},
	}
	submissions := &mockSubmissionsRepository{
		insert: func(ctx context.Context, input repository.InsertSubmissionInput) (*entity.Submission, error) {
			return &entity.Submission{ID: uuid.New(), ProfileID: input.ProfileID}, nil
		},
	}
	notifier := &mockNotifier{err: errors.New("provider down")}

	svc := NewIntakeService(profiles, submissions, notifier, "GB")
	submission, err := svc.SubmitPartnership(context.Background(), dto.PartnershipRequest{
		FullName:            "Jane Doe",
		Email:               "jane@example.com",
		CompanyName:         "Acme Ltd",
		PartnershipInterest: "Bulk CV reviews.",
	})
	if err != nil {
		t.Fatalf("expected submission to survive notifier failure, got %v", err)
	}
	if submission == nil {
		t.Fatal("expected submission to be returned")
	}
}

func TestIntakeService_ListSubmissions_InvalidFilter(t *testing.T) {
	svc := NewIntakeService(&mockProfilesRepository{}, &mockSubmissionsRepository{}, nil, "GB")

	if _, err := svc.ListSubmissions(context.Background(), dto.SubmissionFilter{FormType: "newsletter"}); err == nil {
		t.Fatal("expected error for unknown form_type")
	}
	if _, err := svc.ListSubmissions(context.Background(), dto.SubmissionFilter{Status: "archived"}); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestIntakeService_UpdateSubmissionStatus(t *testing.T) {
	id := uuid.New()
	submissions := &mockSubmissionsRepository{
		updateStatus: func(ctx context.Context, gotID uuid.UUID, status string) (*entity.Submission, error) {
			if gotID != id || status != "completed" {
				t.Fatalf("unexpected update: %s %s", gotID, status)
			}
			return &entity.Submission{ID: gotID, Status: status}, nil
		},
	}
	svc := NewIntakeService(&mockProfilesRepository{}, submissions, nil, "GB")

	if _, err := svc.UpdateSubmissionStatus(context.Background(), id.String(), "completed"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.UpdateSubmissionStatus(context.Background(), id.String(), "archived"); err == nil {
		t.Fatal("expected error for unknown status")
	}
	if _, err := svc.UpdateSubmissionStatus(context.Background(), "not-a-uuid", "completed"); err == nil {
		t.Fatal("expected error for malformed id")
	}
}
