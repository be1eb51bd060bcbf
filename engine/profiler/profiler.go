// Package profiler records nested timing spans into a fixed-size ring and
// writes them out as a speedscope "evented" profile
// (https://www.speedscope.app).
//
// A nil *Recorder is valid and records nothing, so call sites can keep
// their scopes unconditionally:
//
//	defer e.Profiler.Start("LayerEditor.OnRender")()
//
// A Recorder is not safe for concurrent use; the engine records from the
// main thread only.
package profiler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

const DefaultCapacity = 1 << 16

// ErrEmpty is returned when there is nothing to write.
var ErrEmpty = errors.New("profiler: no spans recorded")

type mark struct {
	at    int64 // unix nanos
	frame int
	open  bool
}

type Recorder struct {
	ring  []mark
	next  uint64 // total marks ever pushed
	names []string
	ids   map[string]int
	now   func() time.Time
}

// New returns a recorder keeping the last capacity marks (two per span).
// A capacity <= 0 selects DefaultCapacity.
func New(capacity int) *Recorder {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Recorder{
		ring: make([]mark, capacity),
		ids:  map[string]int{},
		now:  time.Now,
	}
}

func noop() {}

// Start opens a span and returns the func that closes it.
func (r *Recorder) Start(name string) func() {
	if r == nil {
		return noop
	}
	id := r.intern(name)
	begin := r.now().UnixNano()
	r.push(mark{at: begin, frame: id, open: true})
	return func() {
		end := r.now().UnixNano()
		if end < begin {
			end = begin
		}
		r.push(mark{at: end, frame: id})
	}
}

// Len is the number of marks currently held.
func (r *Recorder) Len() int {
	if r == nil {
		return 0
	}
	return int(min(r.next, uint64(len(r.ring))))
}

func (r *Recorder) intern(name string) int {
	if id, ok := r.ids[name]; ok {
		return id
	}
	id := len(r.names)
	r.ids[name] = id
	r.names = append(r.names, name)
	return id
}

func (r *Recorder) push(m mark) {
	r.ring[r.next%uint64(len(r.ring))] = m
	r.next++
}

// marks returns the held marks oldest first.
func (r *Recorder) marks() []mark {
	n := uint64(r.Len())
	out := make([]mark, 0, n)
	for i := r.next - n; i < r.next; i++ {
		out = append(out, r.ring[i%uint64(len(r.ring))])
	}
	return out
}

// speedscope file format, evented profile
type (
	ssFile struct {
		Schema   string      `json:"$schema"`
		Shared   ssShared    `json:"shared"`
		Profiles []ssProfile `json:"profiles"`
		Name     string      `json:"name,omitempty"`
		Exporter string      `json:"exporter,omitempty"`
	}
	ssShared struct {
		Frames []ssFrame `json:"frames"`
	}
	ssFrame struct {
		Name string `json:"name"`
	}
	ssProfile struct {
		Type       string    `json:"type"`
		Name       string    `json:"name"`
		Unit       string    `json:"unit"`
		StartValue int64     `json:"startValue"`
		EndValue   int64     `json:"endValue"`
		Events     []ssEvent `json:"events"`
	}
	ssEvent struct {
		Type  string `json:"type"` // "O" or "C"
		At    int64  `json:"at"`   // microseconds since the first mark
		Frame int    `json:"frame"`
	}
)

// events converts the held marks into balanced open/close events. Closes
// whose open was overwritten by the ring are dropped; spans still open
// are closed at the last timestamp.
func (r *Recorder) events() ([]ssEvent, int64) {
	ms := r.marks()
	if len(ms) == 0 {
		return nil, 0
	}
	base := ms[0].at
	out := make([]ssEvent, 0, len(ms))
	var stack []int
	last := int64(0)
	for _, m := range ms {
		at := max((m.at-base)/1000, last)
		if m.open {
			stack = append(stack, m.frame)
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != m.frame {
				continue
			}
			stack = stack[:len(stack)-1]
		}
		typ := "C"
		if m.open {
			typ = "O"
		}
		out = append(out, ssEvent{Type: typ, At: at, Frame: m.frame})
		last = at
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: last, Frame: stack[i]})
	}
	return out, last
}

// WriteSpeedscope encodes the held spans as a speedscope JSON document.
func (r *Recorder) WriteSpeedscope(w io.Writer, name string) error {
	if r == nil {
		return ErrEmpty
	}
	evs, end := r.events()
	if len(evs) == 0 {
		return ErrEmpty
	}
	frames := make([]ssFrame, len(r.names))
	for i, n := range r.names {
		frames[i] = ssFrame{Name: n}
	}
	doc := ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     name,
			Unit:     "microseconds",
			EndValue: end,
			Events:   evs,
		}},
		Name:     name,
		Exporter: "vista-profiler",
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&doc)
}

// Dump writes the profile to path through a temp file so a reader never
// sees a partial document.
func (r *Recorder) Dump(path, name string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	if err := r.WriteSpeedscope(f, name); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("profiler: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	return nil
}
