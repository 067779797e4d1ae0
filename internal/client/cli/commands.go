package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// slideIndex resolves an optional one-based slide number argument, defaulting
// to the active tab.
func (a *App) slideIndex(args []string) (int, error) {
	if len(args) == 0 {
		return a.session.ActiveTab(), nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(a.session.Deck()) {
		return 0, fmt.Errorf("invalid slide number: %s", args[0])
	}
	return n - 1, nil
}

func (a *App) List(ctx context.Context) error {
	for i, rec := range a.session.Deck() {
		marker := " "
		if i == a.session.ActiveTab() {
			marker = "*"
		}
		hidden := ""
		if rec.IsHidden {
			hidden = " (hidden)"
		}
		printlnFn(fmt.Sprintf("%s %2d. [id %d] %s%s", marker, i+1, rec.ID, rec.Label(), hidden))
	}
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	i, err := a.slideIndex(args)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	rec := a.session.Deck()[i]

	printlnFn("Name:       ", rec.Name)
	printlnFn("Title:      ", rec.Title)
	printlnFn("Award:      ", rec.Award)
	printlnFn("Category:   ", rec.Category)
	printlnFn("Description:", rec.Description)
	printlnFn("Date:       ", rec.Date)
	if rec.PhotoPath != "" {
		printlnFn("Photo:      ", rec.PhotoPath)
	}
	return nil
}

func (a *App) Add(ctx context.Context) error {
	rec := a.session.Add()
	a.saveDraft(ctx)
	printlnFn(fmt.Sprintf("Added slide %d (id %d)", len(a.session.Deck()), rec.ID))
	return nil
}

func (a *App) Duplicate(ctx context.Context, args []string) error {
	i, err := a.slideIndex(args)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	rec := a.session.Duplicate(i)
	a.saveDraft(ctx)
	printlnFn(fmt.Sprintf("Duplicated slide %d (new id %d)", i+1, rec.ID))
	return nil
}

// Delete runs the two-phase removal: request, then confirm interactively.
func (a *App) Delete(ctx context.Context, args []string) error {
	i, err := a.slideIndex(args)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if err := a.session.RequestDelete(i); err != nil {
		printlnFn(err.Error())
		return err
	}
	if a.session.PendingDelete() < 0 {
		printlnFn("Cannot delete the last remaining slide")
		return nil
	}

	printlnFn(fmt.Sprintf("Delete slide %d? (y/n)", i+1))
	if !a.scanner.Scan() || strings.TrimSpace(a.scanner.Text()) != "y" {
		a.session.CancelDelete()
		printlnFn("Cancelled")
		return nil
	}
	a.session.ConfirmDelete()
	a.saveDraft(ctx)
	printlnFn("Deleted")
	return nil
}

func (a *App) Rename(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: rename <slide> <name>")
		return nil
	}
	i, err := a.slideIndex(args)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	a.session.RenameTab(i, strings.Join(args[1:], " "))
	a.saveDraft(ctx)
	return nil
}

func (a *App) Hide(ctx context.Context, args []string) error {
	i, err := a.slideIndex(args)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	a.session.ToggleHidden(i)
	a.saveDraft(ctx)
	if a.session.Deck()[i].IsHidden {
		printlnFn(fmt.Sprintf("Slide %d hidden", i+1))
	} else {
		printlnFn(fmt.Sprintf("Slide %d visible", i+1))
	}
	return nil
}

// Set edits one field of the active slide: set <field> <value>.
func (a *App) Set(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: set <field> <value>  (fields: name, title, award, description, date, category, icon, photoscale, textsize)")
		return nil
	}
	i := a.session.ActiveTab()
	field := args[0]
	value := strings.Join(args[1:], " ")

	switch field {
	case "name":
		a.session.SetName(i, value)
	case "title":
		a.session.SetTitle(i, value)
	case "award":
		a.session.SetAward(i, value)
	case "description":
		a.session.SetDescription(i, value)
	case "date":
		a.session.SetDate(i, value)
	case "category":
		a.session.SetCategory(i, value)
	case "icon":
		a.session.SetSelectedIcon(i, value)
	case "photoscale":
		scale, err := strconv.ParseFloat(value, 64)
		if err != nil {
			printlnFn("invalid scale:", value)
			return err
		}
		a.session.SetPhotoScale(i, scale)
	case "textsize":
		size, err := strconv.Atoi(value)
		if err != nil {
			printlnFn("invalid size:", value)
			return err
		}
		a.session.SetDescriptionTextSize(i, size)
	default:
		printlnFn("Unknown field:", field)
		return nil
	}
	a.saveDraft(ctx)
	return nil
}

// Move reorders a slide: move <from> <to>, one-based.
func (a *App) Move(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: move <from> <to>")
		return nil
	}
	from, err := a.slideIndex(args[:1])
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	to, err := a.slideIndex(args[1:])
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	a.session.Reorder(from, to)
	a.saveDraft(ctx)
	return nil
}

// Upload sends an image: upload <slide> <file> for the photo, or
// upload logo <slide> <file> [all] for the organization logo.
func (a *App) Upload(ctx context.Context, args []string) error {
	logo := len(args) > 0 && args[0] == "logo"
	if logo {
		args = args[1:]
	}
	if len(args) < 2 {
		printlnFn("Usage: upload [logo] <slide> <file> [all]")
		return nil
	}
	i, err := a.slideIndex(args[:1])
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	f, err := os.Open(args[1])
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	defer f.Close()

	name := filepath.Base(args[1])
	if logo {
		applyAll := len(args) > 2 && args[2] == "all"
		err = a.session.UploadLogo(ctx, i, name, f, applyAll)
	} else {
		err = a.session.UploadPhoto(ctx, i, name, f)
	}
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	a.saveDraft(ctx)
	printlnFn("Uploaded", name)
	return nil
}

// Categories lists, adds or removes custom categories:
// categories | categories add <name> | categories rm <name>.
func (a *App) Categories(ctx context.Context, args []string) error {
	if len(args) == 0 {
		for _, c := range a.session.Categories() {
			printlnFn(" -", c)
		}
		return nil
	}
	if len(args) < 2 {
		printlnFn("Usage: categories [add|rm <name>]")
		return nil
	}
	name := strings.Join(args[1:], " ")
	switch args[0] {
	case "add":
		a.session.AddCategory(name)
	case "rm":
		a.session.RemoveCategory(name)
	default:
		printlnFn("Usage: categories [add|rm <name>]")
		return nil
	}
	a.saveDraft(ctx)
	return nil
}

func (a *App) Save(ctx context.Context) error {
	if err := a.session.Save(ctx); err != nil {
		printlnFn(err.Error())
		return err
	}
	if err := a.drafts.Clear(ctx); err != nil {
		a.logger.Warn(ctx, "failed to clear draft", "error", err.Error())
	}
	printlnFn("Saved", len(a.session.Deck()), "slides")
	return nil
}
