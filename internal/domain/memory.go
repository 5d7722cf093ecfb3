package domain

import (
	"strings"
	"time"
)

// MemoryWindow is the number of recent commands the ring keeps and consults.
const MemoryWindow = 3

type CommandRecord struct {
	Utterance  string
	Seq        uint64
	ReceivedAt time.Time
}

// MemoryRing is the bounded history of recognized commands. The zero value
// is ready to use. It is not safe for concurrent use; the router owns it.
type MemoryRing struct {
	records [MemoryWindow]CommandRecord
	next    int
	size    int
	seq     uint64
}

func (m *MemoryRing) Remember(utterance string, receivedAt time.Time) CommandRecord {
	m.seq++
	record := CommandRecord{Utterance: utterance, Seq: m.seq, ReceivedAt: receivedAt}

	m.records[m.next] = record
	m.next = (m.next + 1) % MemoryWindow
	if m.size < MemoryWindow {
		m.size++
	}

	return record
}

// RecentContains reports whether any remembered utterance is a substring of
// candidate.
func (m *MemoryRing) RecentContains(candidate string) bool {
	for _, record := range m.Records() {
		if strings.Contains(candidate, record.Utterance) {
			return true
		}
	}
	return false
}

// Latest returns the most recently remembered record.
func (m *MemoryRing) Latest() (CommandRecord, bool) {
	if m.size == 0 {
		return CommandRecord{}, false
	}
	return m.records[(m.next+MemoryWindow-1)%MemoryWindow], true
}

func (m *MemoryRing) Len() int {
	return m.size
}

// Records returns the remembered commands oldest first.
func (m *MemoryRing) Records() []CommandRecord {
	records := make([]CommandRecord, 0, m.size)
	start := (m.next + MemoryWindow - m.size) % MemoryWindow
	for i := 0; i < m.size; i++ {
		records = append(records, m.records[(start+i)%MemoryWindow])
	}
	return records
}
