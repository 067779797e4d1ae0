package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/awarddeck/internal/client/preview"
)

// Preview enters presentation mode: l/r step through the visible slides with
// wraparound, esc returns to the editor.
func (a *App) Preview(ctx context.Context) error {
	a.preview.Open()
	if !a.preview.Active() {
		printlnFn("Nothing to present: every slide is hidden")
		return nil
	}
	a.showSlide()

	for a.preview.Active() {
		printlnFn("preview> (l)eft, (r)ight, esc")
		if !a.scanner.Scan() {
			a.preview.Close()
			return nil
		}
		switch strings.TrimSpace(a.scanner.Text()) {
		case "l", "left":
			a.preview.HandleKey(preview.KeyLeft)
		case "r", "right":
			a.preview.HandleKey(preview.KeyRight)
		case "esc", "q":
			a.preview.HandleKey(preview.KeyEscape)
		}
		if a.preview.Active() {
			a.showSlide()
		}
	}
	return nil
}

func (a *App) showSlide() {
	slide, ok := a.preview.Current()
	if !ok {
		return
	}
	printlnFn(fmt.Sprintf("--- slide id %d (background %s) ---", slide.AwardeeID, slide.Theme.BackgroundColor))
	for _, e := range slide.Elements {
		printlnFn(fmt.Sprintf("  %-12s [%4.0f,%4.0f %4.0fx%4.0f] %s",
			e.ID, e.Rect.X, e.Rect.Y, e.Rect.Width, e.Rect.Height, e.Text))
	}
}
