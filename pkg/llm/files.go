package llm

import (
	"encoding/base64"
	"fmt"

	"github.com/llimit/gateway/pkg/models"
)

// File is an attachment translated to the provider's content-part wire
// shape. Validate reports human-readable reasons the given model cannot
// accept the file; an empty slice means the file is acceptable.
type File interface {
	Validate(model models.ModelDescription) []string
	wirePart() map[string]any
}

// PDF is an inline PDF document.
type PDF struct {
	Name    string
	Content []byte
}

// Validate always accepts: PDFs work with every model, natively or via
// an extraction engine.
func (PDF) Validate(models.ModelDescription) []string { return nil }

func (f PDF) wirePart() map[string]any {
	return map[string]any{
		"type": "file",
		"file": map[string]any{
			"filename":  f.Name,
			"file_data": "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(f.Content),
		},
	}
}

// PDFURL references a remote PDF document.
type PDFURL struct {
	Name string
	URL  string
}

// Validate always accepts.
func (PDFURL) Validate(models.ModelDescription) []string { return nil }

func (f PDFURL) wirePart() map[string]any {
	return map[string]any{
		"type": "file",
		"file": map[string]any{
			"filename":  f.Name,
			"file_data": f.URL,
		},
	}
}

// Image is an inline image; ContentType is the full MIME type, e.g.
// "image/png".
type Image struct {
	ContentType string
	Content     []byte
}

// Validate checks the content type and the model's image support.
func (f Image) Validate(model models.ModelDescription) []string {
	var errs []string
	if models.ImageTypeFor(f.ContentType) == "" {
		errs = append(errs, fmt.Sprintf("Unsupported image type: %s", f.ContentType))
	}
	if !model.Architecture.SupportsInput("image") {
		errs = append(errs, "Model does not support image input")
	}
	return errs
}

func (f Image) wirePart() map[string]any {
	return map[string]any{
		"type": "image_url",
		"image_url": map[string]any{
			"url": "data:" + f.ContentType + ";base64," + base64.StdEncoding.EncodeToString(f.Content),
		},
	}
}

// ImageURL references a remote image.
type ImageURL struct {
	URL string
}

// Validate checks the model's image support.
func (ImageURL) Validate(model models.ModelDescription) []string {
	if !model.Architecture.SupportsInput("image") {
		return []string{"Model does not support image input"}
	}
	return nil
}

func (f ImageURL) wirePart() map[string]any {
	return map[string]any{
		"type":      "image_url",
		"image_url": map[string]any{"url": f.URL},
	}
}

// Audio is an inline audio clip; Format is the codec name ("wav" or
// "mp3").
type Audio struct {
	Format  string
	Content []byte
}

// Validate checks the codec and the model's audio support.
func (f Audio) Validate(model models.ModelDescription) []string {
	var errs []string
	if f.Format != "wav" && f.Format != "mp3" {
		errs = append(errs, fmt.Sprintf("Unsupported audio type: %s", f.Format))
	}
	if !model.Architecture.SupportsInput("audio") {
		errs = append(errs, "Model does not support audio input")
	}
	return errs
}

func (f Audio) wirePart() map[string]any {
	return map[string]any{
		"type": "input_audio",
		"input_audio": map[string]any{
			"data":   base64.StdEncoding.EncodeToString(f.Content),
			"format": f.Format,
		},
	}
}

// Video is an inline video clip; ContentType is the full MIME type.
type Video struct {
	ContentType string
	Content     []byte
}

// Validate checks the content type and the model's video support.
func (f Video) Validate(model models.ModelDescription) []string {
	var errs []string
	if models.VideoTypeFor(f.ContentType) == "" {
		errs = append(errs, fmt.Sprintf("Unsupported video type: %s", f.ContentType))
	}
	if !model.Architecture.SupportsInput("video") {
		errs = append(errs, "Model does not support video input")
	}
	return errs
}

func (f Video) wirePart() map[string]any {
	return map[string]any{
		"type": "video_url",
		"video_url": map[string]any{
			"url": "data:" + f.ContentType + ";base64," + base64.StdEncoding.EncodeToString(f.Content),
		},
	}
}

// VideoURL references a remote video.
type VideoURL struct {
	URL string
}

// Validate checks the model's video support.
func (VideoURL) Validate(model models.ModelDescription) []string {
	if !model.Architecture.SupportsInput("video") {
		return []string{"Model does not support video input"}
	}
	return nil
}

func (f VideoURL) wirePart() map[string]any {
	return map[string]any{
		"type":      "video_url",
		"video_url": map[string]any{"url": f.URL},
	}
}

// TextFile is an inline plain-text attachment. It is sent as an extra
// text part so its tokens are billed as ordinary prompt tokens.
type TextFile struct {
	Name    string
	Content []byte
}

// Validate always accepts; every model takes text input.
func (TextFile) Validate(models.ModelDescription) []string { return nil }

func (f TextFile) wirePart() map[string]any {
	return map[string]any{
		"type": "text",
		"text": fmt.Sprintf("File %s:\n%s", f.Name, f.Content),
	}
}
