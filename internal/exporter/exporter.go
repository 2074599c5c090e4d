// Package exporter is the top-level orchestrator: it parses a project
// file, resolves every clip's assets, drives the scheduler, and
// serializes the resulting packet-slot array into a CD+G byte stream.
package exporter

import (
	"fmt"
	"os"

	"cdgmagic/internal/bmpasset"
	"cdgmagic/internal/config"
	"cdgmagic/internal/diag"
	"cdgmagic/internal/fontblock"
	"cdgmagic/internal/glyph"
	"cdgmagic/internal/packet"
	"cdgmagic/internal/palette"
	"cdgmagic/internal/project"
	"cdgmagic/internal/scheduler"
	"cdgmagic/internal/transition"
)

// Result is everything an export run produces: the serialized byte
// stream plus every diagnostic collected along the way.
type Result struct {
	Bytes       []byte
	Diagnostics []diag.Diagnostic
}

// Exporter builds one CD+G file from one project file. It is a pure
// function of its inputs: no process-wide state survives between
// calls.
type Exporter struct {
	cfg              config.Config
	logger           *diag.Logger
	excludeTextClips bool
}

// New creates an Exporter bound to cfg, logging an export-complete
// summary through logger (may be nil to disable logging). Scheduling
// and asset problems are returned as diagnostics, not logged.
func New(cfg config.Config, logger *diag.Logger) *Exporter {
	return &Exporter{cfg: cfg, logger: logger}
}

// ExcludeTextClips, when set, drops text clips from scheduling
// entirely — used to isolate transition behavior from font
// rendering when diagnosing a mismatch.
func (e *Exporter) ExcludeTextClips(exclude bool) {
	e.excludeTextClips = exclude
}

// ExportFile reads projectPath, builds every clip, runs the
// scheduler, and serializes the result.
func (e *Exporter) ExportFile(projectPath string) (Result, error) {
	data, err := os.ReadFile(projectPath)
	if err != nil {
		return Result{}, fmt.Errorf("exporter: read project file: %w", err)
	}
	return e.Export(data)
}

// Export builds the export from already-loaded project-file bytes.
func (e *Exporter) Export(projectData []byte) (Result, error) {
	proj, err := project.Parse(projectData)
	if err != nil {
		return Result{}, fmt.Errorf("exporter: parse project: %w", err)
	}

	var diagnostics []diag.Diagnostic
	total := e.totalDuration(proj)

	sched := scheduler.New(total, e.cfg.ReservedPreludeLen)
	for _, c := range proj.Clips {
		if e.excludeTextClips && c.Variant == project.ClipText {
			continue
		}
		clips, ds := e.resolveClip(c)
		diagnostics = append(diagnostics, ds...)
		for _, clip := range clips {
			sched.RegisterClip(clip)
		}
	}

	packets := sched.Run()
	diagnostics = append(diagnostics, sched.Diagnostics()...)
	diagnostics = append(diagnostics, e.validate(packets, proj)...)
	if diag.HasErrors(diagnostics) {
		return Result{Diagnostics: diagnostics}, &diag.MultiError{Diagnostics: diagnostics}
	}

	out := make([]byte, 0, len(packets)*packet.Size)
	for _, p := range packets {
		frame := p.Marshal()
		out = append(out, frame[:]...)
	}

	if e.logger != nil {
		e.logger.Log(diag.ComponentProject, diag.LevelInfo, "export complete", map[string]any{
			"packets": len(packets),
			"bytes":   len(out),
		})
	}

	return Result{Bytes: out, Diagnostics: diagnostics}, nil
}

func (e *Exporter) totalDuration(proj *project.Project) int {
	highest := 0
	for _, c := range proj.Clips {
		end := int(c.StartPacket + c.DurationPackets)
		if end > highest {
			highest = end
		}
	}
	if highest == 0 {
		highest = e.cfg.ReservedPreludeLen
	}
	return highest
}

func (e *Exporter) validate(packets []packet.Packet, proj *project.Project) []diag.Diagnostic {
	var ds []diag.Diagnostic
	if len(packets) == 0 {
		ds = append(ds, diag.New(diag.CategoryValidationFailure, diag.StageValidation, diag.SeverityError,
			"export produced zero packets"))
	}
	if len(proj.Clips) == 0 {
		ds = append(ds, diag.New(diag.CategoryValidationFailure, diag.StageValidation, diag.SeverityWarning,
			"no clips were scheduled"))
	}
	return ds
}

// resolveClip expands one parsed project.Clip into zero or more
// scheduler.Clip registrations. A clip may carry multiple events, each
// firing at an offset within the clip; BMP, Scroll, and PaletteGlobal
// events have no explicit per-event time field on the wire, so each
// event becomes its own scheduler.Clip sharing the parent's Track,
// Start, and Duration — the scheduler's existing per-start-packet
// stagger (RegisterClip order plus its startOffsets advance) then
// serializes same-start events in registration order exactly as it
// already does for distinct clips sharing a start packet. Text clips
// carry an explicit LineIndex per event, so resolveTextClip instead
// folds every event's rendered blocks into a single scheduler.Clip,
// each block individually stamped with its own packet offset.
func (e *Exporter) resolveClip(c project.Clip) ([]scheduler.Clip, []diag.Diagnostic) {
	switch c.Variant {
	case project.ClipBMP:
		return e.resolveBMPClip(c)
	case project.ClipText:
		return e.resolveTextClip(c)
	case project.ClipScroll:
		return e.resolveScrollClip(c)
	case project.ClipPaletteGlobal:
		return e.resolvePaletteClip(c)
	default:
		return nil, nil
	}
}

func (e *Exporter) resolveScrollClip(c project.Clip) ([]scheduler.Clip, []diag.Diagnostic) {
	clips := make([]scheduler.Clip, 0, len(c.ScrollEvents))
	for _, ev := range c.ScrollEvents {
		clips = append(clips, scheduler.Clip{
			Kind:        scheduler.KindScroll,
			Track:       int(c.Track),
			Start:       int(c.StartPacket),
			Duration:    int(c.DurationPackets),
			ScrollColor: uint8(ev.Color),
			HDirection:  uint8(ev.HDirection),
			HOffset:     uint8(ev.HOffset),
			VDirection:  uint8(ev.VDirection),
			VOffset:     uint8(ev.VOffset),
			ScrollCopy:  ev.Copy,
		})
	}
	return clips, nil
}

func (e *Exporter) resolvePaletteClip(c project.Clip) ([]scheduler.Clip, []diag.Diagnostic) {
	clips := make([]scheduler.Clip, 0, len(c.PaletteEvents))
	for _, pe := range c.PaletteEvents {
		pal := palette.Default()
		var colors [palette.Size]packet.RGB24
		for i, rgb := range pe.Colors {
			colors[i] = packet.RGB24{R: rgb.R, G: rgb.G, B: rgb.B}
		}
		pal.ReplaceFrom(colors)
		clips = append(clips, scheduler.Clip{
			Kind:          scheduler.KindPaletteGlobal,
			Track:         int(c.Track),
			Start:         int(c.StartPacket),
			Duration:      int(c.DurationPackets),
			GlobalPalette: &pal,
		})
	}
	return clips, nil
}

func (e *Exporter) resolveBMPClip(c project.Clip) ([]scheduler.Clip, []diag.Diagnostic) {
	var clips []scheduler.Clip
	var diagnostics []diag.Diagnostic

	for _, ev := range c.BMPEvents {
		clip, ds := e.resolveBMPEvent(c, ev)
		diagnostics = append(diagnostics, ds...)
		if clip != nil {
			clips = append(clips, *clip)
		}
	}
	return clips, diagnostics
}

func (e *Exporter) resolveBMPEvent(c project.Clip, ev project.BMPEvent) (*scheduler.Clip, []diag.Diagnostic) {
	path := project.NormalizePath(ev.SourcePath, e.cfg.AssetsRoot, e.cfg.NormalizePaths)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, []diag.Diagnostic{
			diag.New(diag.CategoryAssetNotFound, diag.StageAsset, diag.SeverityWarning,
				fmt.Sprintf("bmp asset not found: %s", path)).WithClip(int(c.Track), int(c.StartPacket)),
		}
	}

	img, err := bmpasset.Decode(raw)
	if err != nil {
		return nil, []diag.Diagnostic{
			diag.New(diag.CategoryMalformedInput, diag.StageAsset, diag.SeverityWarning,
				fmt.Sprintf("malformed bmp %s: %v", path, err)).WithClip(int(c.Track), int(c.StartPacket)),
		}
	}

	var order transition.Order
	if ev.TransitionPath != "" {
		tdata, err := os.ReadFile(project.NormalizePath(ev.TransitionPath, e.cfg.AssetsRoot, e.cfg.NormalizePaths))
		if err == nil {
			if loaded, lerr := transition.LoadFile(tdata); lerr == nil {
				order = loaded
			}
		}
	}
	if order == nil {
		order = transition.DefaultOrder()
	}

	blocks := img.ToBlocks(bmpasset.ConvertOptions{
		StartPacket: int(c.StartPacket) + scheduler.BMPPreludePacketCount,
		Order:       order,
		Layer:       int(c.Track) % compositorLayers,
		Channel:     int(c.Track),
	})

	pal := palette.Default()
	var colors [palette.Size]packet.RGB24
	for i, rgb := range img.PaletteEntries() {
		colors[i] = packet.RGB24{R: rgb.R, G: rgb.G, B: rgb.B}
	}
	pal.ReplaceFrom(colors)

	return &scheduler.Clip{
		Kind:        scheduler.KindBMP,
		Track:       int(c.Track),
		Start:       int(c.StartPacket),
		Duration:    int(c.DurationPackets),
		BMPPalette:  &pal,
		BorderColor: uint8(ev.BorderColor),
		FillColor:   uint8(ev.FillColor),
		Blocks:      blocks,
	}, nil
}

const compositorLayers = 8

func (e *Exporter) resolveTextClip(c project.Clip) ([]scheduler.Clip, []diag.Diagnostic) {
	if c.TextClip == nil || len(c.TextClip.Events) == 0 {
		return nil, nil
	}
	data := c.TextClip

	var blocks []fontblock.FontBlock
	for _, ev := range data.Events {
		box := glyph.Box{Left: int(ev.BoxLeft), Top: int(ev.BoxTop), Width: int(ev.BoxWidth), Height: int(ev.BoxHeight)}
		rendered := glyph.RenderLine(data.Text, glyph.RenderOptions{
			Box:         box,
			LineIndex:   int(ev.LineIndex),
			Foreground:  uint8(data.Foreground),
			Background:  uint8(data.Background),
			StartPacket: int(c.StartPacket) + int(ev.LineIndex),
			Layer:       int(c.Track) % compositorLayers,
			Channel:     int(c.Track),
		})
		blocks = append(blocks, rendered...)
	}

	clip := scheduler.Clip{
		Kind:        scheduler.KindText,
		Track:       int(c.Track),
		Start:       int(c.StartPacket),
		Duration:    int(c.DurationPackets),
		TextBlocks:  blocks,
		LoadPalette: data.DefaultPalette != 0,
		BGColor:     uint8(data.Background),
	}
	return []scheduler.Clip{clip}, nil
}
