package vram

import "cdgmagic/internal/packet"

// snapshotInterval is the packet-count granularity K at which the
// Replayer checkpoints full VRAM state, bounding replay cost to at
// most snapshotInterval packets applied per Seek.
const snapshotInterval = 512

// Replayer reconstructs VRAM state at an arbitrary packet index by
// applying an externally supplied packet stream, using periodic
// snapshots so Seek never replays more than snapshotInterval packets.
type Replayer struct {
	stream    []packet.Packet
	snapshots map[int]*VRAM // packet index -> VRAM state *after* that index
}

// NewReplayer prepares a replayer over a packet stream, snapshotting
// every snapshotInterval packets as it goes.
func NewReplayer(stream []packet.Packet) *Replayer {
	r := &Replayer{
		stream:    stream,
		snapshots: make(map[int]*VRAM),
	}

	v := New()
	for i, p := range stream {
		v.Apply(p)
		if (i+1)%snapshotInterval == 0 {
			snap := *v
			r.snapshots[i] = &snap
		}
	}
	return r
}

// Seek returns the VRAM state after applying packets [0, index], by
// replaying forward from the nearest prior snapshot.
func (r *Replayer) Seek(index int) *VRAM {
	if index < 0 {
		return New()
	}
	if index >= len(r.stream) {
		index = len(r.stream) - 1
	}

	start := -1
	v := New()
	for snapIdx := range r.snapshots {
		if snapIdx <= index && snapIdx > start {
			start = snapIdx
		}
	}
	if start >= 0 {
		snap := *r.snapshots[start]
		v = &snap
	}

	for i := start + 1; i <= index; i++ {
		v.Apply(r.stream[i])
	}
	return v
}

// Apply mutates v to reflect the effect of a single packet, the
// subset of subcommands that touch VRAM state. Used both by the
// Replayer and by the scheduler as it places tile-block packet groups
// (the scheduler's single-packet placements are not applied).
func (v *VRAM) Apply(p packet.Packet) {
	if !p.IsGraphics() {
		return
	}
	switch p.Subcommand {
	case packet.SubMemoryPreset:
		v.Clear(p.Payload[0] & 0x0F)
	case packet.SubTileBlockCopy, packet.SubTileBlockXOR:
		color0, color1, bx, by, rows := packet.TileBlockFields(p)
		var block Block
		for row := 0; row < TileHeight; row++ {
			for col := 0; col < TileWidth; col++ {
				bit := rows[row]&(1<<(5-col)) != 0
				if bit {
					block[row][col] = color1
				} else {
					block[row][col] = color0
				}
			}
		}
		if p.Subcommand == packet.SubTileBlockXOR {
			v.XORBlock(bx, by, block)
		} else {
			v.WriteBlock(bx, by, block)
		}
	}
}
