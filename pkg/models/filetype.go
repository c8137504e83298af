package models

// Content types accepted for uploads and URL registrations, and the
// input modality each one demands from a model.

// ImageType identifies a supported image content type.
type ImageType string

// AudioType identifies a supported audio content type.
type AudioType string

// VideoType identifies a supported video content type.
type VideoType string

// Supported image types.
const (
	ImageJPEG ImageType = "jpeg"
	ImagePNG  ImageType = "png"
	ImageGIF  ImageType = "gif"
	ImageWebP ImageType = "webp"
)

// Supported audio types.
const (
	AudioWAV AudioType = "wav"
	AudioMP3 AudioType = "mp3"
)

// Supported video types.
const (
	VideoMP4  VideoType = "mp4"
	VideoMOV  VideoType = "mov"
	VideoMPEG VideoType = "mpeg"
	VideoWebM VideoType = "webm"
)

var imageContentTypes = map[string]ImageType{
	"image/jpeg": ImageJPEG,
	"image/jpg":  ImageJPEG,
	"image/png":  ImagePNG,
	"image/gif":  ImageGIF,
	"image/webp": ImageWebP,
}

var audioContentTypes = map[string]AudioType{
	"audio/wav":  AudioWAV,
	"audio/wave": AudioWAV,
	"audio/mpeg": AudioMP3,
	"audio/mp3":  AudioMP3,
}

var videoContentTypes = map[string]VideoType{
	"video/mp4":       VideoMP4,
	"video/quicktime": VideoMOV,
	"video/mpeg":      VideoMPEG,
	"video/webm":      VideoWebM,
}

// IsPDFContentType reports whether ct is a PDF.
func IsPDFContentType(ct string) bool {
	return ct == "application/pdf"
}

// IsTextContentType reports whether ct is a plain-text type.
func IsTextContentType(ct string) bool {
	switch ct {
	case "text/plain", "text/markdown", "text/csv":
		return true
	}
	return false
}

// ImageTypeFor returns the image type for ct, or "" if ct is not a
// supported image content type.
func ImageTypeFor(ct string) ImageType { return imageContentTypes[ct] }

// AudioTypeFor returns the audio type for ct, or "".
func AudioTypeFor(ct string) AudioType { return audioContentTypes[ct] }

// VideoTypeFor returns the video type for ct, or "".
func VideoTypeFor(ct string) VideoType { return videoContentTypes[ct] }

// SupportedContentType reports whether ct is accepted by the file
// surface at all.
func SupportedContentType(ct string) bool {
	if IsPDFContentType(ct) || IsTextContentType(ct) {
		return true
	}
	if _, ok := imageContentTypes[ct]; ok {
		return true
	}
	if _, ok := audioContentTypes[ct]; ok {
		return true
	}
	_, ok := videoContentTypes[ct]
	return ok
}

// ModalityForContentType maps a content type to the input modality a
// model must support to receive it directly. PDFs return "" because
// every engine has a non-native fallback; the native_pdf capability
// adds the "file" modality requirement instead.
func ModalityForContentType(ct string) string {
	switch {
	case IsTextContentType(ct):
		return "text"
	case IsPDFContentType(ct):
		return ""
	}
	if _, ok := imageContentTypes[ct]; ok {
		return "image"
	}
	if _, ok := audioContentTypes[ct]; ok {
		return "audio"
	}
	if _, ok := videoContentTypes[ct]; ok {
		return "video"
	}
	return ""
}
