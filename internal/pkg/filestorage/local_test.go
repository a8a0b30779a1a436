package filestorage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
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
	return form.File["file"][0]
}

func TestSaveFileWithPath(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalStorage(base, "")
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	header := testFileHeader(t, "notes.pdf", "pdf-bytes")
	accessible, err := storage.SaveFileWithPath(header, SubdirResources)
	if err != nil {
		t.Fatalf("SaveFileWithPath failed: %v", err)
	}

	if !strings.HasPrefix(accessible, "uploads/"+SubdirResources+"/") {
		t.Errorf("accessible path = %q", accessible)
	}
	if !strings.HasSuffix(accessible, ".pdf") {
		t.Errorf("extension not preserved: %q", accessible)
	}
	if strings.Contains(accessible, "notes") {
		t.Errorf("original filename should be replaced: %q", accessible)
	}

	onDisk := filepath.Join(base, SubdirResources, filepath.Base(accessible))
	data, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
	if string(data) != "pdf-bytes" {
		t.Errorf("content mismatch: %q", data)
	}
}

func TestSaveFileNilHeader(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "")
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	accessible, err := storage.SaveFileWithPath(nil, SubdirResources)
	if err != nil {
		t.Errorf("nil header should be a no-op, got %v", err)
	}
	if accessible != "" {
		t.Errorf("nil header should yield empty path, got %q", accessible)
	}
}

func TestSaveFileWithBaseURL(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads/")
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	header := testFileHeader(t, "cover.png", "png-bytes")
	accessible, err := storage.SaveFileWithPath(header, SubdirThumbnails)
	if err != nil {
		t.Fatalf("SaveFileWithPath failed: %v", err)
	}
	if !strings.HasPrefix(accessible, "http://localhost:8080/uploads/"+SubdirThumbnails+"/") {
		t.Errorf("accessible path = %q", accessible)
	}
}

func TestDeleteFileIdempotent(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalStorage(base, "")
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	header := testFileHeader(t, "notes.pdf", "pdf-bytes")
	accessible, err := storage.SaveFileWithPath(header, SubdirResources)
	if err != nil {
		t.Fatalf("SaveFileWithPath failed: %v", err)
	}

	if err := storage.DeleteFile(accessible); err != nil {
		t.Fatalf("DeleteFile failed: %v", err)
	}
	onDisk := filepath.Join(base, SubdirResources, filepath.Base(accessible))
	if _, err := os.Stat(onDisk); !os.IsNotExist(err) {
		t.Error("file still exists after delete")
	}

	// A second delete and an empty path are both no-ops.
	if err := storage.DeleteFile(accessible); err != nil {
		t.Errorf("repeat delete should be idempotent: %v", err)
	}
	if err := storage.DeleteFile(""); err != nil {
		t.Errorf("empty path should be a no-op: %v", err)
	}
}
