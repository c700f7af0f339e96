package probe

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
)

// writeMP3WithID3v2 writes a file containing only an ID3v2 tag with a few
// frames and returns its path.
func writeMP3WithID3v2(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "test.mp3")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	tg, err := id3v2.Open(path, id3v2.Options{Parse: false})
	if err != nil {
		t.Fatalf("Failed to open tag: %v", err)
	}
	tg.SetTitle("Song")
	tg.SetArtist("A")
	tg.AddCommentFrame(id3v2.CommentFrame{
		Encoding:    id3v2.EncodingUTF8,
		Language:    "eng",
		Description: "note",
		Text:        "hello",
	})
	if err := tg.Save(); err != nil {
		t.Fatalf("Failed to save tag: %v", err)
	}
	if err := tg.Close(); err != nil {
		t.Fatalf("Failed to close tag: %v", err)
	}
	return path
}

// appendID3v1Trailer appends a minimal 128-byte ID3v1 block.
func appendID3v1Trailer(t *testing.T, path string) {
	t.Helper()
	trailer := make([]byte, 128)
	copy(trailer, "TAG")
	copy(trailer[3:], "Song")

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		t.Fatalf("Failed to open file for append: %v", err)
	}
	defer func() { _ = f.Close() }()
	if _, err := f.Write(trailer); err != nil {
		t.Fatalf("Failed to append ID3v1 trailer: %v", err)
	}
}

// buildFLAC writes a minimal FLAC stream: marker, zeroed STREAMINFO and a
// VORBIS_COMMENT block holding the given entries.
func buildFLAC(t *testing.T, dir, vendor string, comments []string) string {
	t.Helper()

	var payload bytes.Buffer
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], uint32(len(vendor)))
	payload.Write(tmp[:])
	payload.WriteString(vendor)
	binary.LittleEndian.PutUint32(tmp[:], uint32(len(comments)))
	payload.Write(tmp[:])
	for _, c := range comments {
		binary.LittleEndian.PutUint32(tmp[:], uint32(len(c)))
		payload.Write(tmp[:])
		payload.WriteString(c)
	}

	var buf bytes.Buffer
	buf.WriteString("fLaC")
	buf.Write([]byte{0x00, 0x00, 0x00, 34})
	buf.Write(make([]byte, 34))
	n := payload.Len()
	buf.Write([]byte{0x80 | 0x04, byte(n >> 16), byte(n >> 8), byte(n)})
	buf.Write(payload.Bytes())

	path := filepath.Join(dir, "test.flac")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write FLAC fixture: %v", err)
	}
	return path
}

func TestOpenID3v2(t *testing.T) {
	path := writeMP3WithID3v2(t, t.TempDir())

	pf, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if !pf.Has(KindID3v2) {
		t.Fatal("Expected ID3v2 kind to be detected")
	}
	if pf.Has(KindID3v1) {
		t.Error("Did not expect ID3v1 kind without trailer")
	}
	if pf.ID3v2 == nil {
		t.Fatal("Expected parsed ID3v2 tag")
	}

	ids := make(map[string]int)
	for _, fr := range pf.ID3v2.Frames {
		ids[fr.ID]++
	}
	for _, want := range []string{"TIT2", "TPE1", "COMM"} {
		if ids[want] == 0 {
			t.Errorf("Expected frame %s in parsed tag, got %v", want, ids)
		}
	}
}

func TestOpenID3v1Trailer(t *testing.T) {
	path := writeMP3WithID3v2(t, t.TempDir())
	appendID3v1Trailer(t, path)

	pf, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if !pf.Has(KindID3v2) {
		t.Error("Expected ID3v2 kind")
	}
	if !pf.Has(KindID3v1) {
		t.Error("Expected ID3v1 kind from trailer")
	}
}

func TestOpenID3v1Only(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "old.mp3")

	body := make([]byte, 64)
	for i := range body {
		body[i] = 0xFF
	}
	if err := os.WriteFile(path, body, 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	appendID3v1Trailer(t, path)

	pf, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if !pf.Has(KindID3v1) {
		t.Error("Expected ID3v1 kind")
	}
	if pf.Has(KindID3v2) {
		t.Error("Did not expect ID3v2 kind")
	}
}

func TestOpenFLACXiph(t *testing.T) {
	path := buildFLAC(t, t.TempDir(), "test vendor", []string{
		"ARTIST=A",
		"ARTIST=B",
		"TITLE=Song",
	})

	pf, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if !pf.Has(KindXiph) {
		t.Fatal("Expected Xiph kind to be detected")
	}
	if pf.Xiph == nil {
		t.Fatal("Expected parsed Xiph comment")
	}
	if pf.Xiph.Vendor != "test vendor" {
		t.Errorf("Expected vendor 'test vendor', got '%s'", pf.Xiph.Vendor)
	}
	if got := pf.Xiph.Fields["ARTIST"]; len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("Expected ARTIST [A B], got %v", got)
	}
	if got := pf.Xiph.Fields["TITLE"]; len(got) != 1 || got[0] != "Song" {
		t.Errorf("Expected TITLE [Song], got %v", got)
	}
	if pf.PossiblyCorrupt {
		t.Errorf("Did not expect corruption flag, reasons: %v", pf.CorruptionReasons)
	}
}

func TestOpenFLACMalformedEntry(t *testing.T) {
	path := buildFLAC(t, t.TempDir(), "v", []string{
		"TITLE=Song",
		"NOEQUALSSIGN",
	})

	pf, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if !pf.Has(KindXiph) {
		t.Fatal("Expected Xiph kind despite malformed entry")
	}
	if !pf.PossiblyCorrupt {
		t.Error("Expected corruption flag for malformed entry")
	}
	if len(pf.CorruptionReasons) == 0 {
		t.Error("Expected at least one corruption reason")
	}
	if got := pf.Xiph.Fields["TITLE"]; len(got) != 1 || got[0] != "Song" {
		t.Errorf("Expected TITLE [Song] to be salvaged, got %v", got)
	}
}

func TestOpenASFPresence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.wma")

	data := append(append([]byte{}, asfHeaderGUID...), make([]byte, 64)...)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	pf, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if !pf.Has(KindASF) {
		t.Error("Expected ASF kind from header GUID")
	}
	if pf.Xiph != nil || pf.ID3v2 != nil {
		t.Error("ASF detection must not produce tag contents")
	}
}

func TestOpenUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("just some plain text"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	_, err := Open(path)
	if err == nil {
		t.Fatal("Expected error for unsupported format")
	}
	var unsupported *UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Errorf("Expected *UnsupportedFormatError, got %T: %v", err, err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.mp3"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	var probeErr *ProbeError
	if !errors.As(err, &probeErr) {
		t.Errorf("Expected *ProbeError, got %T: %v", err, err)
	}
}
