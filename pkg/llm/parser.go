package llm

import (
	"regexp"
	"strings"
)

// Additional-data segments are embedded in model output as
// <additional_data key=NAME>VALUE</additional_data>.
const (
	openTagPrefix = "<additional_data"
	closeTag      = "</additional_data>"
	closeTagOpen  = "</additional_data"
)

var tagPattern = regexp.MustCompile(`(?s)<additional_data key=([^>]+)>(.*?)</additional_data>`)
var openTagPattern = regexp.MustCompile(`<additional_data key=([^>]+)>`)

// ParseAdditionalData strips all additional-data segments from content
// and collects them into a map. When the same key appears more than
// once, the last segment wins. Keys and values are whitespace-trimmed,
// as is the cleaned content.
func ParseAdditionalData(content string) (string, map[string]string) {
	data := map[string]string{}
	for _, m := range tagPattern.FindAllStringSubmatch(content, -1) {
		data[strings.TrimSpace(m[1])] = strings.TrimSpace(m[2])
	}
	cleaned := strings.TrimSpace(tagPattern.ReplaceAllString(content, ""))
	return cleaned, data
}

// Chunk is one unit of streamed output. AdditionalDataKey is nil for
// plain content and set to the tag key for tag bodies. Err is set on
// the final chunk when the upstream stream failed.
type Chunk struct {
	Content           string
	AdditionalDataKey *string
	Err               error
}

// ContentChunk builds a plain-content chunk.
func ContentChunk(content string) Chunk {
	return Chunk{Content: content}
}

// TagChunk builds a chunk carrying a tag body for the given key.
func TagChunk(content, key string) Chunk {
	return Chunk{Content: content, AdditionalDataKey: &key}
}

// StreamParser incrementally splits streamed model output into plain
// content and additional-data segments. Tags are never split across
// chunks: on each arriving delta the parser finds the rightmost cut
// that cannot be the start of an opening or closing tag literal and
// defers any trailing prefix until more input arrives.
type StreamParser struct {
	buf     string
	inTag   bool
	tagName string
	tagBody string
}

// Feed appends a delta and returns all chunks that became complete.
func (p *StreamParser) Feed(delta string) []Chunk {
	p.buf += delta
	var out []Chunk
	for p.buf != "" {
		if !p.inTag {
			done, chunks := p.scanOutside()
			out = append(out, chunks...)
			if done {
				return out
			}
			continue
		}
		done, chunks := p.scanInside()
		out = append(out, chunks...)
		if done {
			return out
		}
	}
	return out
}

// Flush drains whatever the parser still holds at end of stream. A
// dangling tag body (no closing tag seen) is emitted under its key;
// a dangling tag prefix is emitted as plain content.
func (p *StreamParser) Flush() []Chunk {
	var out []Chunk
	if p.inTag {
		if body := p.tagBody + p.buf; body != "" {
			out = append(out, TagChunk(body, p.tagName))
		}
	} else if p.buf != "" {
		out = append(out, ContentChunk(p.buf))
	}
	p.buf, p.inTag, p.tagName, p.tagBody = "", false, "", ""
	return out
}

// scanOutside consumes buffered text while not inside a tag. It returns
// done=true when the parser must wait for more input.
func (p *StreamParser) scanOutside() (bool, []Chunk) {
	var out []Chunk
	if loc := openTagPattern.FindStringSubmatchIndex(p.buf); loc != nil {
		if before := p.buf[:loc[0]]; before != "" {
			out = append(out, ContentChunk(before))
		}
		p.tagName = strings.TrimSpace(p.buf[loc[2]:loc[3]])
		p.tagBody = ""
		p.inTag = true
		p.buf = p.buf[loc[1]:]
		return false, out
	}

	if i := strings.Index(p.buf, openTagPrefix); i >= 0 {
		// An opening tag has started but its ">" has not arrived yet.
		if i > 0 {
			out = append(out, ContentChunk(p.buf[:i]))
			p.buf = p.buf[i:]
		}
		return true, out
	}

	safe := safeContentEnd(p.buf, openTagPrefix)
	if safe == len(p.buf) {
		// No tag prefix at the end; everything is plain content.
		out = append(out, ContentChunk(p.buf))
		p.buf = ""
		return true, out
	}
	if safe > 0 {
		out = append(out, ContentChunk(p.buf[:safe]))
		p.buf = p.buf[safe:]
	}
	// The remainder may still become an opening tag.
	return true, out
}

// scanInside consumes buffered text while inside a tag.
func (p *StreamParser) scanInside() (bool, []Chunk) {
	var out []Chunk
	if i := strings.Index(p.buf, closeTag); i >= 0 {
		out = append(out, TagChunk(p.tagBody+p.buf[:i], p.tagName))
		p.buf = p.buf[i+len(closeTag):]
		p.inTag = false
		p.tagName, p.tagBody = "", ""
		return false, out
	}

	safe := safeContentEnd(p.buf, closeTagOpen)
	p.tagBody += p.buf[:safe]
	p.buf = p.buf[safe:]
	return true, out
}

// safeContentEnd returns the largest index up to which buf cannot be
// part of tagPrefix, i.e. the rightmost cut that does not split a
// potential tag.
func safeContentEnd(buf, tagPrefix string) int {
	max := len(tagPrefix)
	if len(buf) < max {
		max = len(buf)
	}
	for i := 1; i <= max; i++ {
		if strings.HasSuffix(buf, tagPrefix[:i]) {
			return len(buf) - i
		}
	}
	return len(buf)
}
