// Package scheduler implements the clip scheduler: the central
// orchestrator that assigns every clip's packets to absolute slots in
// a fixed-length packet array, resolving start-packet collisions the
// way the original tool did.
package scheduler

import (
	"cdgmagic/internal/compositor"
	"cdgmagic/internal/diag"
	"cdgmagic/internal/fontblock"
	"cdgmagic/internal/packet"
	"cdgmagic/internal/tileenc"
	"cdgmagic/internal/vram"
)

// preludeAnchorPacket is the absolute packet index of the synthetic
// scroll-copy anchor every export carries, matching the historical
// tool regardless of clip content.
const preludeAnchorPacket = 250

// maxStartOffsetAdvance bounds how far same-start-packet clips are
// staggered from one another.
const maxStartOffsetAdvance = 1024

// localSearchWindow bounds the +1,-1,+2,-2,... probe before falling
// back to a larger forward scan.
const localSearchWindow = 32

// BMPPreludePacketCount is the number of packets processBMPClip places
// before block encoding begins: two palette-load packets, one
// border-preset packet, and sixteen memory-preset packets, occupying
// start..start+BMPPreludePacketCount-1. Callers that schedule BMP
// block packets independently of the scheduler (the exporter's
// bitmap-to-block conversion) must start past this prelude.
const BMPPreludePacketCount = 19

// Scheduler owns one export's VRAM, compositor, and packet-slot array.
type Scheduler struct {
	slots         []packet.Packet
	vram          *vram.VRAM
	compositor    *compositor.Compositor
	reservedStart int
	startOffsets  map[int]int
	diagnostics   []diag.Diagnostic
	clips         []Clip
}

// New creates a scheduler for an export of totalPackets length, with
// reservedStart marking the leading region ordinary clip placement
// must not intrude on.
func New(totalPackets, reservedStart int) *Scheduler {
	return &Scheduler{
		slots:         make([]packet.Packet, totalPackets),
		vram:          vram.New(),
		compositor:    compositor.New(),
		reservedStart: reservedStart,
		startOffsets:  make(map[int]int),
	}
}

// RegisterClip appends clip to the timeline. Clips are immutable once
// registered and are processed in registration order at Run time,
// ordered by Start (stable, so same-start clips keep registration
// order).
func (s *Scheduler) RegisterClip(clip Clip) {
	s.clips = append(s.clips, clip)
}

// Diagnostics returns every diagnostic collected during the most
// recent Run.
func (s *Scheduler) Diagnostics() []diag.Diagnostic {
	return s.diagnostics
}

// Run executes the 8-step scheduling algorithm and returns the
// finished packet-slot array.
func (s *Scheduler) Run() []packet.Packet {
	s.placeAt(preludeAnchorPacket, packet.ScrollCommand(true, 0, 0, 0, 0, 0), 0, true)

	ordered := stableSortByStart(s.clips)
	for _, clip := range ordered {
		s.processClip(clip)
	}

	s.finalize()
	return s.slots
}

func stableSortByStart(clips []Clip) []Clip {
	out := make([]Clip, len(clips))
	copy(out, clips)
	for i := 1; i < len(out); i++ {
		j := i
		for j > 0 && out[j-1].Start > out[j].Start {
			out[j-1], out[j] = out[j], out[j-1]
			j--
		}
	}
	return out
}

func (s *Scheduler) processClip(clip Clip) {
	effectiveStart := clip.Start + s.startOffsets[clip.Start]
	emitted := 0

	switch clip.Kind {
	case KindBMP:
		emitted = s.processBMPClip(clip, effectiveStart)
	case KindText:
		emitted = s.processTextClip(clip, effectiveStart)
	case KindScroll:
		emitted = s.processScrollClip(clip, effectiveStart)
	case KindPaletteGlobal:
		emitted = s.processPaletteClip(clip, effectiveStart)
	}

	advance := emitted
	if advance > maxStartOffsetAdvance {
		advance = maxStartOffsetAdvance
	}
	s.startOffsets[clip.Start] += advance
}

func (s *Scheduler) processBMPClip(clip Clip, start int) int {
	count := 0
	if clip.BMPPalette != nil {
		low, high := clip.BMPPalette.LoadPackets()
		s.placeAt(start, low, clip.Duration, false)
		s.placeAt(start+1, high, clip.Duration, false)
		count += 2
	}
	s.placeAt(start+2, packet.BorderPreset(clip.BorderColor), clip.Duration, false)
	count++

	for i, p := range packet.MemoryPresetSequence(clip.FillColor) {
		s.placeAt(start+3+i, p, clip.Duration, false)
		count++
	}

	count += s.encodeAndPlaceBlocks(clip.Blocks, 0, clip.Duration)
	return count
}

func (s *Scheduler) processTextClip(clip Clip, start int) int {
	count := 0
	if clip.LoadPalette {
		// Text clips reuse the current global palette; no-op placeholder
		// kept for symmetry with BMP clips that always load one.
	}
	s.placeAt(start+2, packet.MemoryPreset(clip.BGColor, 0), clip.Duration, false)
	count++

	count += s.encodeAndPlaceBlocks(clip.TextBlocks, 0, clip.Duration)
	return count
}

func (s *Scheduler) processScrollClip(clip Clip, start int) int {
	preset := packet.ScrollCommand(false, clip.ScrollColor, scrollDir(clip.HDirection), clip.HOffset, scrollDir(clip.VDirection), clip.VOffset)
	s.placeAt(start, preset, clip.Duration, false)
	if clip.ScrollCopy {
		cp := packet.ScrollCommand(true, clip.ScrollColor, scrollDir(clip.HDirection), clip.HOffset, scrollDir(clip.VDirection), clip.VOffset)
		s.placeAt(start+1, cp, clip.Duration, false)
		return 2
	}
	return 1
}

func scrollDir(v uint8) packet.ScrollDirection {
	return packet.ScrollDirection(v)
}

func (s *Scheduler) processPaletteClip(clip Clip, start int) int {
	if clip.GlobalPalette == nil {
		return 0
	}
	low, high := clip.GlobalPalette.LoadPackets()
	s.placeAt(start, low, clip.Duration, false)
	s.placeAt(start+1, high, clip.Duration, false)
	return 2
}

// encodeAndPlaceBlocks writes each block into the compositor, reads
// back the composited result, and invokes the tile encoder, placing
// every block's resulting packet group as a single contiguous,
// order-preserving unit starting at the block's scheduled packet.
func (s *Scheduler) encodeAndPlaceBlocks(blocks []fontblock.FontBlock, presetIndex uint8, window int) int {
	count := 0
	for _, b := range blocks {
		s.compositor.WriteBlock(b.BX, b.BY, b.Layer, b.Pixels)
		composited := s.compositor.ReadCompositedBlock(b.BX, b.BY, presetIndex)
		current := s.vram.ReadBlock(b.BX, b.BY)

		pkts := tileenc.Encode(b.Pixels, composited, current, b.BX, b.BY)
		if len(pkts) == 0 {
			continue
		}
		s.placeGroup(b.Packet, pkts, window, false)
		count += len(pkts)
	}
	return count
}

// placeAt assigns pkt to absolute packet p, or the nearest available
// slot within the clip's allocated window, per the scheduler's
// collision-resolution ladder: exact slot, local +1/-1/+2/-2... probe,
// larger forward scan, then last-resort overwrite (logged). reserved
// bypasses the reserved-prelude guard for the scheduler's own
// synthetic anchor packet.
func (s *Scheduler) placeAt(p int, pkt packet.Packet, window int, reserved bool) {
	if len(s.slots) == 0 {
		return
	}
	if !reserved && p < s.reservedStart {
		p = s.reservedStart
	}
	p = clampToRange(p, 0, len(s.slots)-1)

	if s.slots[p].Empty() {
		s.slots[p] = pkt
		return
	}

	if win := s.probeLocal(p, pkt, window, reserved); win {
		return
	}

	if win := s.probeForward(p, pkt, window, reserved); win {
		return
	}

	s.diagnostics = append(s.diagnostics, diag.New(
		diag.CategorySlotCollision, diag.StageScheduling, diag.SeverityWarning,
		"overwriting occupied slot: no free slot found within window",
	).WithOffset(p))
	s.slots[p] = pkt
}

func (s *Scheduler) probeLocal(target int, pkt packet.Packet, window int, reserved bool) bool {
	limit := localSearchWindow
	if window > 0 && window < limit {
		limit = window
	}
	for d := 1; d <= limit; d++ {
		for _, cand := range [2]int{target + d, target - d} {
			if cand < 0 || cand >= len(s.slots) {
				continue
			}
			if !reserved && cand < s.reservedStart {
				continue
			}
			if s.slots[cand].Empty() {
				s.slots[cand] = pkt
				return true
			}
		}
	}
	return false
}

func (s *Scheduler) probeForward(target int, pkt packet.Packet, window int, reserved bool) bool {
	start := target + localSearchWindow + 1
	end := len(s.slots)
	if window > 0 && target+window < end {
		end = target + window
	}
	for cand := start; cand < end; cand++ {
		if !reserved && cand < s.reservedStart {
			continue
		}
		if s.slots[cand].Empty() {
			s.slots[cand] = pkt
			return true
		}
	}
	return false
}

func clampToRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// placeGroup places pkts as a contiguous, order-preserving run
// starting at p, or the nearest available contiguous run within the
// clip's allocated window. A multi-packet tile encode (three-color
// copy+XOR, bit-plane sequences) must land in increasing slot order
// with no other packet interleaved between its members, since a
// decoder applies slots in index order and an out-of-order COPY/XOR
// pair would corrupt the block. Collision resolution therefore moves
// the whole group together: exact run, then local +1/-1/+2/-2...
// probe for a same-length empty run, then a larger forward scan, then
// last-resort overwrite (logged).
func (s *Scheduler) placeGroup(p int, pkts []packet.Packet, window int, reserved bool) {
	if len(s.slots) == 0 || len(pkts) == 0 {
		return
	}
	if !reserved && p < s.reservedStart {
		p = s.reservedStart
	}
	hi := len(s.slots) - len(pkts)
	if hi < 0 {
		hi = 0
	}
	p = clampToRange(p, 0, hi)

	if run := s.findEmptyRun(p, len(pkts), reserved); run >= 0 {
		s.writeGroup(run, pkts)
		return
	}
	if run := s.probeLocalRun(p, len(pkts), window, reserved); run >= 0 {
		s.writeGroup(run, pkts)
		return
	}
	if run := s.probeForwardRun(p, len(pkts), window, reserved); run >= 0 {
		s.writeGroup(run, pkts)
		return
	}

	s.diagnostics = append(s.diagnostics, diag.New(
		diag.CategorySlotCollision, diag.StageScheduling, diag.SeverityWarning,
		"overwriting occupied slots: no free contiguous run found within window",
	).WithOffset(p))
	s.writeGroup(p, pkts)
}

func (s *Scheduler) writeGroup(run int, pkts []packet.Packet) {
	for i, pkt := range pkts {
		s.slots[run+i] = pkt
		s.vram.Apply(pkt)
	}
}

// runFits reports whether a length-long run starting at start lies
// within slot bounds and (unless reserved) past the reserved prelude.
func (s *Scheduler) runFits(start, length int, reserved bool) bool {
	if start < 0 || start+length > len(s.slots) {
		return false
	}
	if !reserved && start < s.reservedStart {
		return false
	}
	return true
}

func (s *Scheduler) findEmptyRun(start, length int, reserved bool) int {
	if !s.runFits(start, length, reserved) {
		return -1
	}
	for i := 0; i < length; i++ {
		if !s.slots[start+i].Empty() {
			return -1
		}
	}
	return start
}

func (s *Scheduler) probeLocalRun(target, length, window int, reserved bool) int {
	limit := localSearchWindow
	if window > 0 && window < limit {
		limit = window
	}
	for d := 1; d <= limit; d++ {
		for _, cand := range [2]int{target + d, target - d} {
			if run := s.findEmptyRun(cand, length, reserved); run >= 0 {
				return run
			}
		}
	}
	return -1
}

func (s *Scheduler) probeForwardRun(target, length, window int, reserved bool) int {
	start := target + localSearchWindow + 1
	end := len(s.slots) - length + 1
	if window > 0 && target+window < end {
		end = target + window
	}
	for cand := start; cand < end; cand++ {
		if run := s.findEmptyRun(cand, length, reserved); run >= 0 {
			return run
		}
	}
	return -1
}

// finalize pads every remaining empty slot with a no-op and, per the
// duration-visibility invariant, copies the last non-empty packet
// into the final slot if it is otherwise empty.
func (s *Scheduler) finalize() {
	lastNonEmpty := -1
	for i := range s.slots {
		if !s.slots[i].Empty() {
			lastNonEmpty = i
		}
	}

	n := len(s.slots)
	if n == 0 {
		return
	}
	if s.slots[n-1].Empty() && lastNonEmpty >= 0 {
		s.slots[n-1] = s.slots[lastNonEmpty]
	}

	for i := range s.slots {
		if s.slots[i].Empty() && i != n-1 {
			s.slots[i] = packet.NoOp()
		}
	}
	if s.slots[n-1].Empty() {
		s.slots[n-1] = packet.NoOp()
	}
}
