package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAdditionalData(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantCleaned string
		wantData    map[string]string
	}{
		{
			name:        "no tags",
			content:     "plain text only",
			wantCleaned: "plain text only",
			wantData:    map[string]string{},
		},
		{
			name:        "single tag",
			content:     "before <additional_data key=title>My Title</additional_data> after",
			wantCleaned: "before  after",
			wantData:    map[string]string{"title": "My Title"},
		},
		{
			name:        "multiple keys",
			content:     "<additional_data key=title>T</additional_data>body<additional_data key=steps>[1,2]</additional_data>",
			wantCleaned: "body",
			wantData:    map[string]string{"title": "T", "steps": "[1,2]"},
		},
		{
			name:        "duplicate key last wins",
			content:     "<additional_data key=k>first</additional_data><additional_data key=k>second</additional_data>",
			wantCleaned: "",
			wantData:    map[string]string{"k": "second"},
		},
		{
			name:        "multiline value",
			content:     "x<additional_data key=out>line one\nline two</additional_data>",
			wantCleaned: "x",
			wantData:    map[string]string{"out": "line one\nline two"},
		},
		{
			name:        "value and key trimmed",
			content:     "<additional_data key= k >  padded  </additional_data>",
			wantCleaned: "",
			wantData:    map[string]string{"k": "padded"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaned, data := ParseAdditionalData(tt.content)
			assert.Equal(t, tt.wantCleaned, cleaned)
			assert.Equal(t, tt.wantData, data)
		})
	}
}

// Re-embedding parsed segments into the cleaned content must parse back
// to the same result, wherever the segments are placed.
func TestParseAdditionalDataIdempotent(t *testing.T) {
	original := "intro <additional_data key=a>one</additional_data> middle <additional_data key=b>two</additional_data> outro"
	cleaned, data := ParseAdditionalData(original)

	embed := func(prefix bool) string {
		var b strings.Builder
		if prefix {
			for k, v := range data {
				b.WriteString("<additional_data key=" + k + ">" + v + "</additional_data>")
			}
			b.WriteString(cleaned)
		} else {
			b.WriteString(cleaned)
			for k, v := range data {
				b.WriteString("<additional_data key=" + k + ">" + v + "</additional_data>")
			}
		}
		return b.String()
	}

	for _, variant := range []string{embed(true), embed(false)} {
		gotCleaned, gotData := ParseAdditionalData(variant)
		assert.Equal(t, cleaned, gotCleaned)
		assert.Equal(t, data, gotData)
	}
}

// feedPartitioned streams text through a parser in fixed-size deltas
// and groups the resulting chunk contents by key.
func feedPartitioned(text string, size int) (string, map[string]string) {
	var p StreamParser
	var chunks []Chunk
	for i := 0; i < len(text); i += size {
		end := i + size
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, p.Feed(text[i:end])...)
	}
	chunks = append(chunks, p.Flush()...)

	var content strings.Builder
	data := map[string]string{}
	for _, c := range chunks {
		if c.AdditionalDataKey == nil {
			content.WriteString(c.Content)
		} else {
			data[*c.AdditionalDataKey] += c.Content
		}
	}
	return content.String(), data
}

// Any partition of the stream must reassemble to the non-streaming
// parse of the whole text.
func TestStreamParserMatchesNonStreaming(t *testing.T) {
	texts := []string{
		"plain text with no tags at all",
		"before <additional_data key=title>My Title</additional_data> after",
		"<additional_data key=a>one</additional_data><additional_data key=b>two</additional_data>",
		"text < with a stray angle bracket and <additional_data key=out>multi\nline body</additional_data> tail",
		"ends in a tag <additional_data key=k>v</additional_data>",
	}
	for _, text := range texts {
		wantCleaned, wantData := ParseAdditionalData(text)
		for _, size := range []int{1, 2, 3, 7, len(text)} {
			gotContent, gotData := feedPartitioned(text, size)
			assert.Equal(t, wantCleaned, strings.TrimSpace(gotContent),
				"content mismatch for %q at delta size %d", text, size)
			require.Len(t, gotData, len(wantData))
			for k, v := range wantData {
				assert.Equal(t, v, strings.TrimSpace(gotData[k]),
					"data mismatch for %q key %q at delta size %d", text, k, size)
			}
		}
	}
}

// A streamed chunk must never contain a split tag literal.
func TestStreamParserNeverSplitsTags(t *testing.T) {
	text := "before <additional_data key=title>My Title</additional_data> after"
	var p StreamParser
	var chunks []Chunk
	for _, r := range text {
		chunks = append(chunks, p.Feed(string(r))...)
	}
	chunks = append(chunks, p.Flush()...)

	for _, c := range chunks {
		assert.NotContains(t, c.Content, "<additional_data")
		assert.NotContains(t, c.Content, "</additional_data")
	}
}

func TestStreamParserFlushDanglingTagBody(t *testing.T) {
	var p StreamParser
	chunks := p.Feed("<additional_data key=out>partial body")
	assert.Empty(t, chunks)

	flushed := p.Flush()
	require.Len(t, flushed, 1)
	require.NotNil(t, flushed[0].AdditionalDataKey)
	assert.Equal(t, "out", *flushed[0].AdditionalDataKey)
	assert.Equal(t, "partial body", flushed[0].Content)
}

func TestStreamParserFlushDanglingPrefixAsContent(t *testing.T) {
	var p StreamParser
	chunks := p.Feed("hello <additional_da")
	require.Len(t, chunks, 1)
	assert.Equal(t, "hello ", chunks[0].Content)
	assert.Nil(t, chunks[0].AdditionalDataKey)

	flushed := p.Flush()
	require.Len(t, flushed, 1)
	assert.Equal(t, "<additional_da", flushed[0].Content)
	assert.Nil(t, flushed[0].AdditionalDataKey)
}
