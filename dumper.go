// Package tagdump turns a probed media file into a human-readable dump of
// its tag containers.
package tagdump

import (
	"github.com/sv4u/tagdump/frame"
	"github.com/sv4u/tagdump/logging"
	"github.com/sv4u/tagdump/probe"
	"github.com/sv4u/tagdump/render"
)

// Dumper renders every tag container found in a probed file. Containers
// are processed independently; output is their concatenation.
type Dumper struct {
	out *render.Renderer
	log *logging.Logger
}

// NewDumper creates a dumper writing through out. log may be nil.
func NewDumper(out *render.Renderer, log *logging.Logger) *Dumper {
	return &Dumper{out: out, log: log}
}

// Dump prints the corruption advisory (if any) followed by one section per
// detected tag kind. Xiph and ID3v2 sections list normalized, sorted
// records; the remaining kinds are presence-only.
func (d *Dumper) Dump(f *probe.File) {
	if f.PossiblyCorrupt {
		d.log.Warnf("file possibly corrupt: %d reason(s)", len(f.CorruptionReasons))
		d.out.CorruptionWarning(f.CorruptionReasons)
	}

	if f.Has(probe.KindXiph) && f.Xiph != nil {
		d.out.Section(string(probe.KindXiph))
		d.renderRecords(frame.FromXiph(f.Xiph.Fields))
	}

	if f.Has(probe.KindID3v2) && f.ID3v2 != nil {
		d.out.Section(string(probe.KindID3v2))
		d.renderRecords(frame.FromID3v2(f.ID3v2.Frames))
	}

	// Presence-only kinds: detected, contents not dumped.
	for _, kind := range []probe.Kind{probe.KindID3v1, probe.KindASF, probe.KindOgg, probe.KindMP4} {
		if f.Has(kind) {
			d.out.Section(string(kind))
		}
	}

	d.log.InfoWithOperation("dump", "dump complete")
}

func (d *Dumper) renderRecords(records []frame.Record) {
	frame.SortRecords(records)
	d.log.Debugf("rendering %d record(s)", len(records))
	for _, rec := range records {
		d.out.Record(rec)
	}
}
