package probe

import (
	"strings"

	"github.com/go-flac/flacvorbis"
	flac "github.com/go-flac/go-flac"
)

// readFLAC parses the FLAC metadata blocks and collects every
// VORBIS_COMMENT block into a single multi-value field map. Blocks that
// fail to decode are recorded as corruption reasons and skipped.
func (pf *File) readFLAC(path string) {
	f, err := flac.ParseFile(path)
	if err != nil {
		pf.addCorruption("FLAC stream could not be parsed: " + err.Error())
		return
	}

	var xiph *XiphComment
	for _, block := range f.Meta {
		if block.Type != flac.VorbisComment {
			continue
		}
		cmt, err := flacvorbis.ParseFromMetaDataBlock(*block)
		if err != nil {
			pf.addCorruption("Vorbis comment block could not be parsed: " + err.Error())
			continue
		}
		if xiph == nil {
			xiph = &XiphComment{Fields: make(map[string][]string)}
		}
		if xiph.Vendor == "" {
			xiph.Vendor = cmt.Vendor
		}
		for _, raw := range cmt.Comments {
			name, value, ok := strings.Cut(raw, "=")
			if !ok || name == "" {
				pf.addCorruption("Malformed Vorbis comment entry: " + raw)
				continue
			}
			xiph.Fields[name] = append(xiph.Fields[name], value)
		}
	}

	if xiph != nil {
		pf.Xiph = xiph
		pf.addKind(KindXiph)
	}
}
