package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

// Stats is what the overlay reports about the simulation.
type Stats struct {
	Bodies   int
	Contacts int
	Ticks    uint64
	Zoom     float32
}

// Overlay draws runtime statistics in the top-right corner. All lines are off by default.
type Overlay struct {
	ShowFPS    bool
	ShowMem    bool
	ShowWorld  bool
	frameCount uint32
	lines      []string
	memStats   runtime.MemStats
}

// New returns an overlay with every line hidden.
func New() *Overlay {
	return &Overlay{}
}

// Toggle flips all lines on or off together.
func (o *Overlay) Toggle() {
	on := !(o.ShowFPS || o.ShowMem || o.ShowWorld)
	o.ShowFPS, o.ShowMem, o.ShowWorld = on, on, on
	o.lines = nil
}

// Lines formats the enabled lines from s, the frame rate and the heap size in bytes.
func (o *Overlay) Lines(s Stats, fps int32, heap uint64) []string {
	var lines []string
	if o.ShowFPS {
		lines = append(lines, fmt.Sprintf("FPS: %d", fps))
	}
	if o.ShowMem {
		lines = append(lines, fmt.Sprintf("Mem: %.2f MiB", float64(heap)/(1024*1024)))
	}
	if o.ShowWorld {
		lines = append(lines,
			fmt.Sprintf("Bodies: %d", s.Bodies),
			fmt.Sprintf("Contacts: %d", s.Contacts),
			fmt.Sprintf("Tick: %d", s.Ticks),
			fmt.Sprintf("Zoom: %.2fx", s.Zoom),
		)
	}
	return lines
}

// Draw renders the enabled lines right-aligned at the top of the screen. The text is
// only recomputed every updateInterval frames.
func (o *Overlay) Draw(s Stats) {
	o.frameCount++
	if o.lines == nil || o.frameCount%updateInterval == 0 {
		runtime.ReadMemStats(&o.memStats)
		o.lines = o.Lines(s, rl.GetFPS(), o.memStats.Alloc)
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range o.lines {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.DarkGreen)
		y += lineHeight
	}
}
