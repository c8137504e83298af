package services

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llimit/gateway/pkg/llm"
)

// minimalPDF is a two-page uncompressed PDF skeleton, enough for the
// page probe.
const minimalPDF = `%PDF-1.4
1 0 obj << /Type /Catalog /Pages 2 0 R >> endobj
2 0 obj << /Type /Pages /Kids [3 0 R 4 0 R] /Count 2 >> endobj
3 0 obj << /Type /Page /Parent 2 0 R >> endobj
4 0 obj << /Type /Page /Parent 2 0 R >> endobj
%%EOF`

func newTestFileService(t *testing.T) (*FileService, string) {
	t.Helper()
	client := newTestClient(t)
	svc, err := NewFileService(client, t.TempDir())
	require.NoError(t, err)
	return svc, newTestUser(t, client)
}

func TestUploadStoresBlobAndMetadata(t *testing.T) {
	svc, userID := newTestFileService(t)
	ctx := context.Background()

	f, err := svc.Upload(ctx, userID, "notes.txt", "text/plain", "my notes", []byte("hello world"))
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", f.Filename)
	require.NotNil(t, f.SizeBytes)
	assert.Equal(t, int64(11), *f.SizeBytes)
	require.NotNil(t, f.Description)
	assert.Equal(t, "my notes", *f.Description)
	require.NotNil(t, f.StoragePath)

	stored, err := os.ReadFile(*f.StoragePath)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(stored))

	got, err := svc.GetFile(ctx, f.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, f.ID, got.ID)
}

func TestUploadValidation(t *testing.T) {
	svc, userID := newTestFileService(t)
	ctx := context.Background()

	_, err := svc.Upload(ctx, userID, "", "text/plain", "", []byte("x"))
	assert.True(t, IsValidationError(err))

	_, err = svc.Upload(ctx, userID, "a.bin", "application/octet-stream", "", []byte("x"))
	assert.True(t, IsValidationError(err))

	_, err = svc.Upload(ctx, userID, "a.txt", "text/plain", "", nil)
	assert.True(t, IsValidationError(err))
}

func TestUploadProbesPDFPageCount(t *testing.T) {
	svc, userID := newTestFileService(t)

	f, err := svc.Upload(context.Background(), userID, "doc.pdf", "application/pdf", "", []byte(minimalPDF))
	require.NoError(t, err)
	require.NotNil(t, f.PageCount)
	assert.Equal(t, 2, *f.PageCount)
}

func TestRegisterURL(t *testing.T) {
	svc, userID := newTestFileService(t)
	ctx := context.Background()

	f, err := svc.RegisterURL(ctx, userID, "paper.pdf", "application/pdf", "https://example.com/paper.pdf", "")
	require.NoError(t, err)
	require.NotNil(t, f.URL)
	assert.Nil(t, f.StoragePath)

	_, err = svc.RegisterURL(ctx, userID, "paper.pdf", "application/pdf", "ftp://example.com/paper.pdf", "")
	assert.True(t, IsValidationError(err))
}

func TestGetFileEnforcesOwnership(t *testing.T) {
	client := newTestClient(t)
	svc, err := NewFileService(client, t.TempDir())
	require.NoError(t, err)
	owner := newTestUser(t, client)
	other := newTestUser(t, client)
	ctx := context.Background()

	f, err := svc.Upload(ctx, owner, "notes.txt", "text/plain", "", []byte("private"))
	require.NoError(t, err)

	_, err = svc.GetFile(ctx, f.ID, other)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.GetFile(ctx, "no-such-file", owner)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadAttachment(t *testing.T) {
	svc, userID := newTestFileService(t)
	ctx := context.Background()

	text, err := svc.Upload(ctx, userID, "notes.txt", "text/plain", "", []byte("hello"))
	require.NoError(t, err)
	attachment, err := svc.LoadAttachment(ctx, text)
	require.NoError(t, err)
	textFile, ok := attachment.(llm.TextFile)
	require.True(t, ok)
	assert.Equal(t, "notes.txt", textFile.Name)
	assert.Equal(t, "hello", string(textFile.Content))

	remote, err := svc.RegisterURL(ctx, userID, "paper.pdf", "application/pdf", "https://example.com/paper.pdf", "")
	require.NoError(t, err)
	attachment, err = svc.LoadAttachment(ctx, remote)
	require.NoError(t, err)
	pdfURL, ok := attachment.(llm.PDFURL)
	require.True(t, ok)
	assert.Equal(t, "https://example.com/paper.pdf", pdfURL.URL)
}

func TestListFiles(t *testing.T) {
	svc, userID := newTestFileService(t)
	ctx := context.Background()

	_, err := svc.Upload(ctx, userID, "one.txt", "text/plain", "", []byte("1"))
	require.NoError(t, err)
	_, err = svc.Upload(ctx, userID, "two.txt", "text/plain", "", []byte("2"))
	require.NoError(t, err)

	files, err := svc.ListFiles(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, files, 2)
}
