package palette

import "cdgmagic/internal/packet"

// Status classifies a Lease's current lifecycle state.
type Status int

const (
	StatusActive Status = iota
	StatusExpired
	StatusReleased
)

// Infinite marks a lease with no end packet.
const Infinite = -1

// Lease records one time-bounded assignment of a palette index to a
// color. Leases for the same index chain chronologically via Next.
type Lease struct {
	Index       int
	Color       packet.RGB24
	StartPacket int
	EndPacket   int // Infinite if unbounded
	Status      Status
	Label       string
	Next        *Lease
}

// activeAt reports whether this lease covers packet p and is active.
func (l *Lease) activeAt(p int) bool {
	if l.Status != StatusActive {
		return false
	}
	if p < l.StartPacket {
		return false
	}
	if l.EndPacket != Infinite && p >= l.EndPacket {
		return false
	}
	return true
}

// ChangeEvent records a palette update an emitter must turn into
// palette-load packets: which half(s) of the table changed at a given
// packet.
type ChangeEvent struct {
	Packet           int
	LowerHalfChanged bool
	UpperHalfChanged bool
}

// Manager allocates and tracks palette-index leases. Indices 0..7 are
// reserved for unlimited leases, 8..15 for time-limited ones, falling
// back to any free index otherwise.
type Manager struct {
	chains [Size]*Lease // head of each index's lease chain, oldest first
	events []ChangeEvent
}

// NewManager creates an empty lease manager.
func NewManager() *Manager {
	return &Manager{}
}

// IsFree reports whether index has no active lease at packet p.
func (m *Manager) IsFree(index int, atPacket int) bool {
	return m.ActiveLease(index, atPacket) == nil
}

// ActiveLease returns the first chained lease at index active at
// packet p, the system's one notion of "the current occupant".
func (m *Manager) ActiveLease(index int, atPacket int) *Lease {
	if index < 0 || index >= Size {
		return nil
	}
	for l := m.chains[index]; l != nil; l = l.Next {
		if l.activeAt(atPacket) {
			return l
		}
	}
	return nil
}

// LeaseColor allocates a palette index for rgb spanning
// [startPacket, startPacket+duration), or forever if duration is
// Infinite. preferredIndex, if >= 0, is tried first. Returns -1 if no
// index is free for the whole span.
func (m *Manager) LeaseColor(rgb packet.RGB24, startPacket, duration int, preferredIndex int) int {
	endPacket := Infinite
	if duration != Infinite {
		endPacket = startPacket + duration
	}

	candidates := m.candidateOrder(duration, preferredIndex)
	for _, idx := range candidates {
		if m.freeForSpan(idx, startPacket, endPacket) {
			m.addLease(idx, rgb, startPacket, endPacket, "")
			return idx
		}
	}
	return -1
}

// Release marks every lease active at atPacket on index as released,
// returning the manager to its prior observable state for future
// ActiveLease queries at that packet (the chain still records history,
// but no lease there reports active any more).
func (m *Manager) Release(index int, atPacket int) {
	l := m.ActiveLease(index, atPacket)
	if l != nil {
		l.Status = StatusReleased
	}
}

// Events returns the recorded palette-change events, consecutive
// identical-packet events already merged.
func (m *Manager) Events() []ChangeEvent {
	return m.events
}

func (m *Manager) candidateOrder(duration int, preferredIndex int) []int {
	var order []int
	if preferredIndex >= 0 && preferredIndex < Size {
		order = append(order, preferredIndex)
	}
	if duration == Infinite {
		for i := 0; i < 8; i++ {
			order = append(order, i)
		}
		for i := 8; i < Size; i++ {
			order = append(order, i)
		}
	} else {
		for i := 8; i < Size; i++ {
			order = append(order, i)
		}
		for i := 0; i < 8; i++ {
			order = append(order, i)
		}
	}
	return order
}

func (m *Manager) freeForSpan(index int, start, end int) bool {
	for l := m.chains[index]; l != nil; l = l.Next {
		if l.Status != StatusActive {
			continue
		}
		if spansOverlap(l.StartPacket, l.EndPacket, start, end) {
			return false
		}
	}
	return true
}

func spansOverlap(aStart, aEnd, bStart, bEnd int) bool {
	aOpen := aEnd == Infinite
	bOpen := bEnd == Infinite
	if aOpen && bOpen {
		return true
	}
	if aOpen {
		return bEnd > aStart
	}
	if bOpen {
		return aEnd > bStart
	}
	return aStart < bEnd && bStart < aEnd
}

func (m *Manager) addLease(index int, rgb packet.RGB24, start, end int, label string) {
	lease := &Lease{
		Index:       index,
		Color:       rgb,
		StartPacket: start,
		EndPacket:   end,
		Status:      StatusActive,
		Label:       label,
	}

	if m.chains[index] == nil {
		m.chains[index] = lease
	} else {
		tail := m.chains[index]
		for tail.Next != nil {
			tail = tail.Next
		}
		tail.Next = lease
	}

	m.recordChange(start, index)
}

func (m *Manager) recordChange(atPacket int, index int) {
	lower := index < 8
	upper := !lower

	if n := len(m.events); n > 0 && m.events[n-1].Packet == atPacket {
		if lower {
			m.events[n-1].LowerHalfChanged = true
		} else {
			m.events[n-1].UpperHalfChanged = true
		}
		return
	}

	m.events = append(m.events, ChangeEvent{
		Packet:           atPacket,
		LowerHalfChanged: lower,
		UpperHalfChanged: upper,
	})
}
