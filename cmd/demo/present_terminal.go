package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/tilecast/raster"
)

// terminalPresenter mirrors the teacher's TerminalRenderer
// (renderer_terminal.go): enter the alternate screen buffer, hide the
// cursor, and on each Present write one ANSI-colored rune per pixel,
// batching the escape code only when the color actually changes.
// Where the teacher tracked its own ZBuffer/Surface/ColorBuffer, this
// presenter just reads the core Renderer's framebuffer straight off.
type terminalPresenter struct {
	w *bufio.Writer
}

func newTerminalPresenter(w *bufio.Writer) *terminalPresenter {
	return &terminalPresenter{w: w}
}

func (p *terminalPresenter) open() {
	p.w.WriteString("\033[?1049h")
	p.w.WriteString("\033[?25l")
	p.w.WriteString("\033[2J\033[H")
	p.w.Flush()
}

func (p *terminalPresenter) close() {
	p.w.WriteString("\033[?25h")
	p.w.WriteString("\033[?1049l")
	p.w.Flush()
}

// shadingRamp mirrors the teacher's SHADING_RAMP (constants.go): a
// small run of glyphs from sparse to dense, indexed by channel
// brightness rather than an explicit lighting intensity since the
// pixel color already carries the shaded result.
const shadingRamp = " .:-=+*#%@"

func glyphFor(c raster.Color) rune {
	r, g, b, _ := raster.UnpackColor(c)
	brightness := (int(r) + int(g) + int(b)) / 3
	idx := brightness * (len(shadingRamp) - 1) / 255
	return rune(shadingRamp[idx])
}

func (p *terminalPresenter) present(r *raster.Renderer) {
	var b strings.Builder
	b.Grow(r.Width*r.Height*16 + r.Height)
	b.WriteString("\033[H")

	colors := r.ColorBuffer()
	current := raster.Color(0)
	first := true
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			c := colors[y*r.Width+x]
			if first || c != current {
				rr, gg, bb, _ := raster.UnpackColor(c)
				fmt.Fprintf(&b, "\033[38;2;%d;%d;%dm", rr, gg, bb)
				current = c
				first = false
			}
			b.WriteRune(glyphFor(c))
		}
		b.WriteString("\033[K")
		if y < r.Height-1 {
			b.WriteByte('\n')
		}
	}
	b.WriteString("\033[0m")

	p.w.WriteString(b.String())
	p.w.Flush()
}
