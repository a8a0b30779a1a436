package services

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/scop/resourcehub/internal/app/models"
	"github.com/scop/resourcehub/internal/app/models/dto"
	"github.com/scop/resourcehub/internal/app/repositories"
	"github.com/scop/resourcehub/internal/pkg/apperrors"
	"github.com/scop/resourcehub/internal/pkg/filestorage"
)

// mockResourceStore records calls and serves canned results.
type mockResourceStore struct {
	resources    []models.Resource
	createdWith  *models.Resource
	nextID       int64
	deleteCalled bool
	deletedID    int64
	filePath     *string
	thumbPath    *string
	errToReturn  error
	lastFilter   repositories.ResourceFilter
}

var _ ResourceStore = (*mockResourceStore)(nil)

func (m *mockResourceStore) List(ctx context.Context, filter repositories.ResourceFilter) ([]models.Resource, error) {
	m.lastFilter = filter
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	return m.resources, nil
}

func (m *mockResourceStore) Create(ctx context.Context, resource *models.Resource) (int64, error) {
	if m.errToReturn != nil {
		return 0, m.errToReturn
	}
	m.createdWith = resource
	if m.nextID == 0 {
		m.nextID = 1
	}
	return m.nextID, nil
}

func (m *mockResourceStore) Delete(ctx context.Context, id int64) (*string, *string, error) {
	m.deleteCalled = true
	m.deletedID = id
	if m.errToReturn != nil {
		return nil, nil, m.errToReturn
	}
	return m.filePath, m.thumbPath, nil
}

func (m *mockResourceStore) CountAll(ctx context.Context) (int64, error) {
	if m.errToReturn != nil {
		return 0, m.errToReturn
	}
	return int64(len(m.resources)), nil
}

type mockSubjectStore struct {
	subjects map[int][]models.Subject
}

var _ SubjectStore = (*mockSubjectStore)(nil)

func (m *mockSubjectStore) GetByYear(ctx context.Context, yearID int) ([]models.Subject, error) {
	return m.subjects[yearID], nil
}

// mockStorage fakes FileStorage without touching disk.
type mockStorage struct {
	savedSubdirs []string
	deleted      []string
	errToReturn  error
}

var _ filestorage.FileStorage = (*mockStorage)(nil)

func (m *mockStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error) {
	if m.errToReturn != nil {
		return "", m.errToReturn
	}
	m.savedSubdirs = append(m.savedSubdirs, path)
	return "uploads/" + path + "/" + fileHeader.Filename, nil
}

func (m *mockStorage) DeleteFile(filePath string) error {
	m.deleted = append(m.deleted, filePath)
	return nil
}

// testFileHeader builds a real multipart.FileHeader around in-memory content.
func testFileHeader(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	writer.Close()

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(int64(buf.Len()) + 1024)
	if err != nil {
		t.Fatalf("failed to read form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File[field][0]
}

func strPtr(s string) *string { return &s }

func TestCreateResourceValidation(t *testing.T) {
	svc := NewResourceService(&mockResourceStore{}, &mockSubjectStore{}, &mockStorage{})

	cases := []struct {
		name string
		req  dto.CreateResourceRequest
	}{
		{"missing title", dto.CreateResourceRequest{ResourceType: "book"}},
		{"whitespace title", dto.CreateResourceRequest{Title: "   ", ResourceType: "book"}},
		{"missing type", dto.CreateResourceRequest{Title: "Anatomy"}},
		{"unknown type", dto.CreateResourceRequest{Title: "Anatomy", ResourceType: "movie"}},
		{"year out of range", dto.CreateResourceRequest{Title: "Anatomy", ResourceType: "book", YearID: "9"}},
		{"year not a number", dto.CreateResourceRequest{Title: "Anatomy", ResourceType: "book", YearID: "two"}},
		{"subject not a number", dto.CreateResourceRequest{Title: "Anatomy", ResourceType: "book", SubjectID: "x"}},
		{"bad deadline", dto.CreateResourceRequest{Title: "Intern", ResourceType: "career", DeadlineDate: strPtr("31-12-2026")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := tc.req
			_, err := svc.Create(context.Background(), &req, nil, nil)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateResourceTrimsAndNormalizes(t *testing.T) {
	store := &mockResourceStore{nextID: 7}
	svc := NewResourceService(store, &mockSubjectStore{}, &mockStorage{})

	req := dto.CreateResourceRequest{
		Title:        "  Human Anatomy  ",
		ResourceType: "book",
		Description:  strPtr("   "),
		CardColor:    strPtr(" blue "),
	}
	id, err := svc.Create(context.Background(), &req, nil, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if id != 7 {
		t.Errorf("id = %d, want 7", id)
	}

	created := store.createdWith
	if created.Title != "Human Anatomy" {
		t.Errorf("title not trimmed: %q", created.Title)
	}
	if created.Description != nil {
		t.Error("blank description should normalize to nil")
	}
	if created.CardColor == nil || *created.CardColor != "blue" {
		t.Errorf("card color not trimmed: %v", created.CardColor)
	}
	if created.Career != nil {
		t.Error("non-career resource must not carry a career variant")
	}
}

func TestCreateResourceEmptyNumericFieldsAreAbsent(t *testing.T) {
	store := &mockResourceStore{}
	svc := NewResourceService(store, &mockSubjectStore{}, &mockStorage{})

	// The dashboard posts every form field, so unfilled selects arrive as
	// empty strings rather than missing keys.
	req := dto.CreateResourceRequest{
		Title:        "General Notes",
		ResourceType: "resource",
		SubjectID:    "",
		YearID:       "",
	}
	if _, err := svc.Create(context.Background(), &req, nil, nil); err != nil {
		t.Fatalf("empty optional fields must not fail the create: %v", err)
	}
	if store.createdWith.SubjectID != nil {
		t.Errorf("empty subject_id should be absent, got %v", *store.createdWith.SubjectID)
	}
	if store.createdWith.YearID != nil {
		t.Errorf("empty year_id should be absent, got %v", *store.createdWith.YearID)
	}
}

func TestCreateResourceParsesNumericFields(t *testing.T) {
	store := &mockResourceStore{}
	svc := NewResourceService(store, &mockSubjectStore{}, &mockStorage{})

	req := dto.CreateResourceRequest{
		Title:        "Pathophysiology Notes",
		ResourceType: "book",
		SubjectID:    "5",
		YearID:       "2",
	}
	if _, err := svc.Create(context.Background(), &req, nil, nil); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if store.createdWith.SubjectID == nil || *store.createdWith.SubjectID != 5 {
		t.Errorf("subject_id = %v, want 5", store.createdWith.SubjectID)
	}
	if store.createdWith.YearID == nil || *store.createdWith.YearID != 2 {
		t.Errorf("year_id = %v, want 2", store.createdWith.YearID)
	}
}

func TestCreateCareerResource(t *testing.T) {
	store := &mockResourceStore{}
	svc := NewResourceService(store, &mockSubjectStore{}, &mockStorage{})

	req := dto.CreateResourceRequest{
		Title:        "Clinical Pharmacist",
		ResourceType: "career",
		CompanyName:  strPtr("Apollo"),
		DeadlineDate: strPtr("2026-12-31"),
	}
	if _, err := svc.Create(context.Background(), &req, nil, nil); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	career := store.createdWith.Career
	if career == nil {
		t.Fatal("career variant missing")
	}
	if career.CompanyName == nil || *career.CompanyName != "Apollo" {
		t.Errorf("company name: %v", career.CompanyName)
	}
	if career.DeadlineDate == nil || career.DeadlineDate.Format("2006-01-02") != "2026-12-31" {
		t.Errorf("deadline: %v", career.DeadlineDate)
	}
}

func TestCreateResourceSavesUploads(t *testing.T) {
	store := &mockResourceStore{}
	storage := &mockStorage{}
	svc := NewResourceService(store, &mockSubjectStore{}, storage)

	file := testFileHeader(t, "file", "notes.pdf", "pdf-bytes")
	thumb := testFileHeader(t, "thumbnail", "cover.png", "png-bytes")

	req := dto.CreateResourceRequest{Title: "Notes", ResourceType: "resource"}
	if _, err := svc.Create(context.Background(), &req, file, thumb); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if len(storage.savedSubdirs) != 2 ||
		storage.savedSubdirs[0] != filestorage.SubdirResources ||
		storage.savedSubdirs[1] != filestorage.SubdirThumbnails {
		t.Errorf("unexpected save subdirs: %v", storage.savedSubdirs)
	}
	if store.createdWith.FilePath == nil || !strings.HasSuffix(*store.createdWith.FilePath, "notes.pdf") {
		t.Errorf("file path: %v", store.createdWith.FilePath)
	}
	if store.createdWith.ThumbnailPath == nil {
		t.Error("thumbnail path missing")
	}
}

func TestCreateResourceStorageFailure(t *testing.T) {
	store := &mockResourceStore{}
	storage := &mockStorage{errToReturn: errors.New("disk full")}
	svc := NewResourceService(store, &mockSubjectStore{}, storage)

	file := testFileHeader(t, "file", "notes.pdf", "pdf-bytes")
	req := dto.CreateResourceRequest{Title: "Notes", ResourceType: "resource"}

	_, err := svc.Create(context.Background(), &req, file, nil)
	if !errors.Is(err, apperrors.ErrStorageFailed) {
		t.Errorf("expected ErrStorageFailed, got %v", err)
	}
	if store.createdWith != nil {
		t.Error("row must not be inserted after a failed upload")
	}
}

func TestCreateResourceInsertFailureDiscardsUploads(t *testing.T) {
	store := &mockResourceStore{errToReturn: errors.New("insert failed")}
	storage := &mockStorage{}
	svc := NewResourceService(store, &mockSubjectStore{}, storage)

	file := testFileHeader(t, "file", "notes.pdf", "pdf-bytes")
	thumb := testFileHeader(t, "thumbnail", "cover.png", "png-bytes")
	req := dto.CreateResourceRequest{Title: "Notes", ResourceType: "resource"}

	if _, err := svc.Create(context.Background(), &req, file, thumb); err == nil {
		t.Fatal("expected the insert error to surface")
	}
	if len(storage.deleted) != 2 {
		t.Errorf("both saved files should be removed after a failed insert, deleted %v", storage.deleted)
	}
}

func TestDeleteResourcePassesThroughNotFound(t *testing.T) {
	store := &mockResourceStore{errToReturn: apperrors.ErrResourceNotFound}
	svc := NewResourceService(store, &mockSubjectStore{}, &mockStorage{})

	err := svc.Delete(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("expected ErrResourceNotFound, got %v", err)
	}
}

func TestDeleteResourceLeavesFiles(t *testing.T) {
	store := &mockResourceStore{filePath: strPtr("uploads/resources/a.pdf")}
	svc := NewResourceService(store, &mockSubjectStore{}, &mockStorage{})

	if err := svc.Delete(context.Background(), 3); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !store.deleteCalled || store.deletedID != 3 {
		t.Errorf("delete not forwarded: called=%v id=%d", store.deleteCalled, store.deletedID)
	}
}

func TestListRejectsBadFilters(t *testing.T) {
	svc := NewResourceService(&mockResourceStore{}, &mockSubjectStore{}, &mockStorage{})

	badYear := 0
	if _, err := svc.List(context.Background(), repositories.ResourceFilter{YearID: &badYear}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("bad year: expected validation error, got %v", err)
	}

	badType := models.ResourceType("movie")
	if _, err := svc.List(context.Background(), repositories.ResourceFilter{ResourceType: &badType}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("bad type: expected validation error, got %v", err)
	}
}

func TestListByYearRequiresValidInput(t *testing.T) {
	store := &mockResourceStore{}
	svc := NewResourceService(store, &mockSubjectStore{}, &mockStorage{})

	if _, err := svc.ListByYear(context.Background(), 7, models.ResourceTypeQuestion); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected validation error, got %v", err)
	}

	if _, err := svc.ListByYear(context.Background(), 2, models.ResourceTypeQuestion); err != nil {
		t.Fatalf("ListByYear failed: %v", err)
	}
	if store.lastFilter.YearID == nil || *store.lastFilter.YearID != 2 {
		t.Errorf("year filter not forwarded: %v", store.lastFilter.YearID)
	}
	if store.lastFilter.ResourceType == nil || *store.lastFilter.ResourceType != models.ResourceTypeQuestion {
		t.Errorf("type filter not forwarded: %v", store.lastFilter.ResourceType)
	}
	if store.lastFilter.SubjectID != nil {
		t.Error("subject filter must stay unset")
	}
}

func TestListSubjectsValidatesYear(t *testing.T) {
	subjects := &mockSubjectStore{subjects: map[int][]models.Subject{
		2: {{ID: 1, Name: "Pathophysiology", YearID: 2}},
	}}
	svc := NewResourceService(&mockResourceStore{}, subjects, &mockStorage{})

	if _, err := svc.ListSubjects(context.Background(), 0); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected validation error, got %v", err)
	}

	got, err := svc.ListSubjects(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListSubjects failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Pathophysiology" {
		t.Errorf("unexpected subjects: %+v", got)
	}
}
