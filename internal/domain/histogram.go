package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// HistogramEntry is one slot and the number of participants available at it.
type HistogramEntry struct {
	Key   string
	Count int
}

// Histogram counts slot keys and remembers the order in which each key was
// first seen. It encodes to a JSON object whose keys keep that order.
// The zero value is ready to use.
type Histogram struct {
	entries []HistogramEntry
	index   map[string]int
}

// NewHistogram returns an empty histogram.
func NewHistogram() *Histogram {
	return &Histogram{index: make(map[string]int)}
}

// Inc adds one to key, appending it if unseen.
func (h *Histogram) Inc(key string) {
	if h.index == nil {
		h.index = make(map[string]int)
	}
	if i, ok := h.index[key]; ok {
		h.entries[i].Count++
		return
	}
	h.index[key] = len(h.entries)
	h.entries = append(h.entries, HistogramEntry{Key: key, Count: 1})
}

// Count returns the count for key, 0 if absent.
func (h *Histogram) Count(key string) int {
	if i, ok := h.index[key]; ok {
		return h.entries[i].Count
	}
	return 0
}

// Len returns the number of distinct keys.
func (h *Histogram) Len() int {
	return len(h.entries)
}

// Keys returns the keys in first-occurrence order.
func (h *Histogram) Keys() []string {
	keys := make([]string, len(h.entries))
	for i, e := range h.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the entries in first-occurrence order.
func (h *Histogram) Entries() []HistogramEntry {
	out := make([]HistogramEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *Histogram) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range h.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", e.Count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (h *Histogram) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("histogram: expected object, got %v", tok)
	}
	h.entries = nil
	h.index = make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("histogram: expected string key, got %v", tok)
		}
		var count int
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("histogram: count for %q: %w", key, err)
		}
		h.index[key] = len(h.entries)
		h.entries = append(h.entries, HistogramEntry{Key: key, Count: count})
	}
	_, err = dec.Token()
	return err
}
