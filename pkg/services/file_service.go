package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/llimit/gateway/ent"
	"github.com/llimit/gateway/ent/file"
	"github.com/llimit/gateway/pkg/llm"
	"github.com/llimit/gateway/pkg/models"
	"github.com/llimit/gateway/pkg/pricing"
)

// FileService stores uploaded files on disk and their metadata in the
// database, and converts stored files to LLM attachments.
type FileService struct {
	client     *ent.Client
	uploadsDir string
}

// NewFileService creates a new FileService writing blobs under
// uploadsDir.
func NewFileService(client *ent.Client, uploadsDir string) (*FileService, error) {
	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &FileService{client: client, uploadsDir: uploadsDir}, nil
}

// Upload validates and stores an uploaded file. PDFs get their page
// count probed so cost estimation can price them later.
func (s *FileService) Upload(ctx context.Context, userID, filename, contentType, description string, content []byte) (*ent.File, error) {
	if filename == "" {
		return nil, NewValidationError("filename", "required")
	}
	if !models.SupportedContentType(contentType) {
		return nil, NewValidationError("content_type", fmt.Sprintf("unsupported content type: %s", contentType))
	}
	if len(content) == 0 {
		return nil, NewValidationError("content", "empty file")
	}

	id := uuid.New().String()
	storagePath := filepath.Join(s.uploadsDir, id)
	if err := os.WriteFile(storagePath, content, 0o600); err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	create := s.client.File.Create().
		SetID(id).
		SetUserID(userID).
		SetFilename(filename).
		SetContentType(contentType).
		SetSizeBytes(int64(len(content))).
		SetStoragePath(storagePath)
	if description != "" {
		create.SetDescription(description)
	}
	if models.IsPDFContentType(contentType) {
		if pages := countPDFPages(content); pages > 0 {
			create.SetPageCount(pages)
		}
	}

	f, err := create.Save(ctx)
	if err != nil {
		if rmErr := os.Remove(storagePath); rmErr != nil {
			return nil, fmt.Errorf("failed to save file metadata: %w (orphaned blob: %v)", err, rmErr)
		}
		return nil, fmt.Errorf("failed to save file metadata: %w", err)
	}
	return f, nil
}

// RegisterURL records a remote file by reference without fetching it.
func (s *FileService) RegisterURL(ctx context.Context, userID, filename, contentType, url, description string) (*ent.File, error) {
	if filename == "" {
		return nil, NewValidationError("filename", "required")
	}
	if !models.SupportedContentType(contentType) {
		return nil, NewValidationError("content_type", fmt.Sprintf("unsupported content type: %s", contentType))
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, NewValidationError("url", "must be an http(s) URL")
	}

	create := s.client.File.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetFilename(filename).
		SetContentType(contentType).
		SetURL(url)
	if description != "" {
		create.SetDescription(description)
	}

	f, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to register file URL: %w", err)
	}
	return f, nil
}

// GetFile returns the file, enforcing ownership.
func (s *FileService) GetFile(ctx context.Context, fileID, userID string) (*ent.File, error) {
	f, err := s.client.File.Get(ctx, fileID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}
	if f.UserID != userID {
		return nil, ErrForbidden
	}
	return f, nil
}

// ListFiles returns the user's files, newest first.
func (s *FileService) ListFiles(ctx context.Context, userID string) ([]*ent.File, error) {
	files, err := s.client.File.Query().
		Where(file.UserID(userID)).
		Order(ent.Desc(file.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	return files, nil
}

// PricingInfo projects a file row to the slice pricing needs.
func PricingInfo(f *ent.File) pricing.FileInfo {
	return pricing.FileInfo{
		ContentType: f.ContentType,
		SizeBytes:   f.SizeBytes,
		PageCount:   f.PageCount,
	}
}

// LoadAttachment converts a stored file to an LLM attachment, reading
// the blob for uploaded files and passing the reference through for
// URL-registered ones.
func (s *FileService) LoadAttachment(ctx context.Context, f *ent.File) (llm.File, error) {
	if f.URL != nil {
		return urlAttachment(f)
	}
	if f.StoragePath == nil {
		return nil, fmt.Errorf("file %s has neither blob nor URL", f.ID)
	}

	content, err := os.ReadFile(*f.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read stored file %s: %w", f.ID, err)
	}

	ct := f.ContentType
	switch {
	case models.IsPDFContentType(ct):
		return llm.PDF{Name: f.Filename, Content: content}, nil
	case models.IsTextContentType(ct):
		return llm.TextFile{Name: f.Filename, Content: content}, nil
	case models.ImageTypeFor(ct) != "":
		return llm.Image{ContentType: ct, Content: content}, nil
	case models.AudioTypeFor(ct) != "":
		return llm.Audio{Format: string(models.AudioTypeFor(ct)), Content: content}, nil
	case models.VideoTypeFor(ct) != "":
		return llm.Video{ContentType: ct, Content: content}, nil
	}
	return nil, fmt.Errorf("unsupported content type for attachment: %s", ct)
}

func urlAttachment(f *ent.File) (llm.File, error) {
	ct := f.ContentType
	switch {
	case models.IsPDFContentType(ct):
		return llm.PDFURL{Name: f.Filename, URL: *f.URL}, nil
	case models.ImageTypeFor(ct) != "":
		return llm.ImageURL{URL: *f.URL}, nil
	case models.VideoTypeFor(ct) != "":
		return llm.VideoURL{URL: *f.URL}, nil
	}
	return nil, fmt.Errorf("content type %s cannot be attached by URL", ct)
}

// pdfPagePattern matches page object type markers. The negative check
// on the trailing "s" excludes the /Pages tree nodes.
var pdfPagePattern = regexp.MustCompile(`/Type\s*/Page[s]?`)

// countPDFPages counts page objects in raw PDF data. Zero means the
// probe found nothing useful (compressed object streams).
func countPDFPages(content []byte) int {
	count := 0
	for _, m := range pdfPagePattern.FindAll(content, -1) {
		if m[len(m)-1] != 's' {
			count++
		}
	}
	return count
}
