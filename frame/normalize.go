package frame

import (
	"strings"

	"github.com/bogem/id3v2/v2"

	"github.com/sv4u/tagdump/probe"
)

// Placeholder values for frames whose payload is not text.
const (
	AttachedPicturePlaceholder = "[Attached Picture Frame]"
	UnknownFramePlaceholder    = "-UNKNOWN FRAME TYPE-"
)

// privateFrameID is the ID3v2 private-data frame. Its payload is opaque
// binary owned by whoever wrote it; it is shown as lossy ASCII.
const privateFrameID = "PRIV"

// FromID3v2 normalizes a parsed ID3v2 frame sequence. The mapping is
// total: every frame produces exactly one record, with unrecognized frame
// types collapsing to a placeholder value.
func FromID3v2(frames []probe.ID3Frame) []Record {
	records := make([]Record, 0, len(frames))
	for _, fr := range frames {
		records = append(records, normalize(fr))
	}
	return records
}

func normalize(fr probe.ID3Frame) Record {
	switch f := fr.Frame.(type) {
	case id3v2.TextFrame:
		return Record{ID: fr.ID, Values: splitTextList(f.Text)}
	case id3v2.CommentFrame:
		return Record{ID: fr.ID, Values: []string{f.Text}}
	case id3v2.PictureFrame:
		return Record{ID: fr.ID, Values: []string{AttachedPicturePlaceholder}}
	case id3v2.UserDefinedTextFrame:
		return Record{
			ID:     fr.ID + " (" + f.Description + ")",
			Values: []string{f.Value},
		}
	case id3v2.UnknownFrame:
		if fr.ID == privateFrameID {
			return Record{ID: fr.ID, Values: []string{asciiLossy(f.Body)}}
		}
		return Record{ID: fr.ID, Values: []string{UnknownFramePlaceholder}}
	default:
		return Record{ID: fr.ID, Values: []string{UnknownFramePlaceholder}}
	}
}

// splitTextList splits an ID3v2.4 null-separated text list. A frame with a
// single value comes back as a one-element list.
func splitTextList(text string) []string {
	return strings.Split(strings.TrimRight(text, "\x00"), "\x00")
}

// asciiLossy decodes bytes as ASCII; anything outside the 7-bit range
// degrades to '?'.
func asciiLossy(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		if c > 0x7F {
			c = '?'
		}
		out[i] = c
	}
	return string(out)
}
