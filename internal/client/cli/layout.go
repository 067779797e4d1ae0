package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/awarddeck/internal/client/layout"
	"github.com/dmitrijs2005/awarddeck/internal/model"
)

// Layout enters layout-editing mode for a slide. select presses on a canvas
// point, move and resize drag the selected element by a delta, copyall mirrors
// the first slide's layout onto every slide, reset restores the defaults.
// Edits autosave to the draft on exit.
func (a *App) Layout(ctx context.Context, args []string) error {
	i, err := a.slideIndex(args)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	a.layout.Enter(i)
	a.showLayout()

	for {
		printlnFn("layout> select <x> <y>, move <dx> <dy>, resize <grip> <dx> <dy>, copyall on|off, reset, show, done")
		if !a.scanner.Scan() {
			break
		}
		parts := strings.Fields(a.scanner.Text())
		if len(parts) == 0 {
			continue
		}
		if parts[0] == "done" || parts[0] == "esc" || parts[0] == "q" {
			break
		}
		a.layoutCommand(parts[0], parts[1:])
	}
	a.saveDraft(ctx)
	return nil
}

func (a *App) layoutCommand(cmd string, args []string) {
	switch cmd {
	case "show":
		a.showLayout()

	case "select":
		p, ok := parseCoords(args, 2)
		if !ok {
			printlnFn("Usage: select <x> <y>")
			return
		}
		a.layout.PointerDown(p[0], p[1])
		a.layout.PointerUp()
		if id := a.layout.Selected(); id != "" {
			printlnFn("Selected", id)
		} else {
			printlnFn("Nothing selected")
		}

	case "move":
		p, ok := parseCoords(args, 2)
		if !ok {
			printlnFn("Usage: move <dx> <dy>")
			return
		}
		id := a.layout.Selected()
		if id == "" {
			printlnFn("Select an element first")
			return
		}
		r := a.layout.Layout()[id]
		cx, cy := r.X+r.Width/2, r.Y+r.Height/2
		a.layout.PointerDown(cx, cy)
		a.layout.PointerMove(cx+p[0], cy+p[1])
		a.layout.PointerUp()

	case "resize":
		if len(args) != 3 {
			printlnFn("Usage: resize <nw|n|ne|e|se|s|sw|w> <dx> <dy>")
			return
		}
		h, ok := layout.ParseHandle(args[0])
		if !ok {
			printlnFn("Unknown grip:", args[0])
			return
		}
		p, ok := parseCoords(args[1:], 2)
		if !ok {
			printlnFn("Usage: resize <nw|n|ne|e|se|s|sw|w> <dx> <dy>")
			return
		}
		id := a.layout.Selected()
		if id == "" {
			printlnFn("Select an element first")
			return
		}
		gx, gy := layout.HandlePoint(a.layout.Layout()[id], h)
		a.layout.PointerDown(gx, gy)
		a.layout.PointerMove(gx+p[0], gy+p[1])
		a.layout.PointerUp()

	case "copyall":
		switch {
		case len(args) == 1 && args[0] == "on":
			a.layout.SetCopyAll(true)
			printlnFn("Copying the first slide's layout to all slides")
		case len(args) == 1 && args[0] == "off":
			a.layout.SetCopyAll(false)
		default:
			printlnFn("Usage: copyall on|off")
		}

	case "reset":
		a.layout.Reset()
		printlnFn("Layout reset to defaults")

	default:
		printlnFn("Unknown layout command:", cmd)
	}
}

func (a *App) showLayout() {
	l := a.layout.Layout()
	for _, id := range model.ElementIDs {
		r, ok := l[id]
		if !ok {
			continue
		}
		marker := " "
		if id == a.layout.Selected() {
			marker = "*"
		}
		printlnFn(fmt.Sprintf("%s %-12s [%4.0f,%4.0f %4.0fx%4.0f]", marker, id, r.X, r.Y, r.Width, r.Height))
	}
}

func parseCoords(args []string, n int) ([]float64, bool) {
	if len(args) != n {
		return nil, false
	}
	out := make([]float64, n)
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}
