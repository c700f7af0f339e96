// Package probe opens a media file and extracts whatever tag containers it
// carries. Xiph comments and ID3v2 frames are parsed in full; ID3v1, ASF,
// Ogg and MP4 containers are detected but their contents are not dumped.
package probe

import (
	"io"
	"os"

	"github.com/bogem/id3v2/v2"
	"github.com/dhowden/tag"
)

// Kind identifies one on-disk tag system.
type Kind string

const (
	KindXiph  Kind = "Xiph Comment"
	KindID3v2 Kind = "ID3v2 Tag"
	KindID3v1 Kind = "ID3v1 Tag"
	KindASF   Kind = "ASF Tag"
	KindOgg   Kind = "Ogg Container"
	KindMP4   Kind = "MP4 Atoms"
)

// XiphComment is a multi-value string field map from a VORBIS_COMMENT block.
type XiphComment struct {
	Vendor string
	Fields map[string][]string
}

// ID3Frame is one ID3v2 frame together with its 4-character identifier.
// The Frame value keeps the parser's concrete type so the normalizer can
// dispatch on it.
type ID3Frame struct {
	ID    string
	Frame id3v2.Framer
}

// ID3v2Tag holds the parsed ID3v2 frame sequence.
type ID3v2Tag struct {
	Version byte
	Frames  []ID3Frame
}

// File is the probe result for one media file.
type File struct {
	Path string

	Kinds             []Kind
	PossiblyCorrupt   bool
	CorruptionReasons []string

	Xiph  *XiphComment
	ID3v2 *ID3v2Tag

	// recognized is set when the container format itself was identified,
	// even if no tag data could be salvaged from it.
	recognized bool
}

// Has reports whether the given tag kind was detected.
func (f *File) Has(k Kind) bool {
	for _, kind := range f.Kinds {
		if kind == k {
			return true
		}
	}
	return false
}

func (f *File) addKind(k Kind) {
	if !f.Has(k) {
		f.Kinds = append(f.Kinds, k)
	}
}

func (f *File) addCorruption(reason string) {
	f.PossiblyCorrupt = true
	f.CorruptionReasons = append(f.CorruptionReasons, reason)
}

// asfHeaderGUID is the leading GUID of an ASF container.
var asfHeaderGUID = []byte{
	0x30, 0x26, 0xB2, 0x75, 0x8E, 0x66, 0xCF, 0x11,
	0xA6, 0xD9, 0x00, 0xAA, 0x00, 0x62, 0xCE, 0x6C,
}

// Open probes the media file at path. The file handle is scoped to this
// call and closed on every return path. A nil error does not mean tags were
// found: a recognized container with no readable tags yields a File whose
// Kinds is empty.
func Open(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, &ProbeError{
			Message:  "Failed to open file: " + path,
			Original: err,
		}
	}
	defer func() { _ = fh.Close() }()

	pf := &File{Path: path}

	format, fileType, err := tag.Identify(fh)
	if err != nil {
		// Too short for any container signature; a bare ID3v1 trailer
		// needs at least 128 bytes anyway.
		return nil, &UnsupportedFormatError{Path: path, Original: err}
	}

	switch {
	case format == tag.VORBIS && fileType == tag.FLAC:
		pf.recognized = true
		pf.readFLAC(path)
	case format == tag.VORBIS:
		// Ogg stream; presence reported, contents not dumped.
		pf.recognized = true
		pf.addKind(KindOgg)
	case format == tag.ID3v2_2 || format == tag.ID3v2_3 || format == tag.ID3v2_4:
		pf.recognized = true
		pf.readID3v2(fh)
		pf.readID3v1(fh)
	case format == tag.MP4:
		pf.recognized = true
		pf.addKind(KindMP4)
	default:
		if sniffASF(fh) {
			pf.recognized = true
			pf.addKind(KindASF)
			break
		}
		pf.readID3v1(fh)
		pf.recognized = pf.Has(KindID3v1)
	}

	if !pf.recognized {
		return nil, &UnsupportedFormatError{Path: path}
	}
	return pf, nil
}

// readID3v2 parses the ID3v2 tag at the start of the stream. A parse
// failure after the header was identified marks the file possibly corrupt.
func (pf *File) readID3v2(fh *os.File) {
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		pf.addCorruption("ID3v2 tag could not be read: " + err.Error())
		return
	}
	t, err := id3v2.ParseReader(fh, id3v2.Options{Parse: true})
	if err != nil {
		pf.addCorruption("ID3v2 tag could not be parsed: " + err.Error())
		return
	}

	parsed := &ID3v2Tag{Version: t.Version()}
	for id, frames := range t.AllFrames() {
		for _, fr := range frames {
			parsed.Frames = append(parsed.Frames, ID3Frame{ID: id, Frame: fr})
		}
	}

	pf.ID3v2 = parsed
	pf.addKind(KindID3v2)
}

// readID3v1 checks for the 128-byte ID3v1 trailer.
func (pf *File) readID3v1(fh *os.File) {
	if _, err := tag.ReadID3v1Tags(fh); err == nil {
		pf.addKind(KindID3v1)
	}
}

// sniffASF reports whether the stream starts with the ASF header GUID.
func sniffASF(fh *os.File) bool {
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		return false
	}
	header := make([]byte, len(asfHeaderGUID))
	if _, err := io.ReadFull(fh, header); err != nil {
		return false
	}
	for i, b := range header {
		if b != asfHeaderGUID[i] {
			return false
		}
	}
	return true
}
