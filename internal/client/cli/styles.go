package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/wepub/internal/client/models"
)

func (a *App) Styles(ctx context.Context, _ []string) error {
	styles, err := a.clients.Styles.List(ctx)
	if err != nil {
		return err
	}
	if len(styles) == 0 {
		a.printer.Info("No styles yet. Create one with 'style-add'.")
		return nil
	}

	tbl := a.newTable("ID", "Name", "Kind", "Description")
	for _, s := range styles {
		kind := "custom"
		if s.IsSystem {
			kind = "system"
		}
		tbl.AddRow(strconv.FormatInt(s.ID, 10), s.Name, kind, orDash(s.Description))
	}
	return tbl.Render()
}

func (a *App) Style(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	s, err := a.clients.Styles.Get(ctx, id)
	if err != nil {
		return err
	}

	a.printer.Header(s.Name)
	a.printer.Field("ID", s.ID)
	a.printer.Field("System", s.IsSystem)
	a.printer.Field("Description", orDash(s.Description))
	a.printer.Field("Updated", s.UpdatedAt)
	a.printer.Print("\nInstruction:\n%s", s.PromptInstruction)
	a.printer.Print("\nCSS:\n%s", a.printer.Dim(s.CSSContent))
	return nil
}

func (a *App) StyleAdd(ctx context.Context, _ []string) error {
	name, err := a.ask("Style name")
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}
	instruction, err := getMultiline(a.reader, "Writing instruction for the model", a.out)
	if err != nil {
		return err
	}
	css, err := getMultiline(a.reader, "CSS applied to generated articles", a.out)
	if err != nil {
		return err
	}
	if instruction == "" || css == "" {
		return errEmptyInput
	}

	s, err := a.clients.Styles.Create(ctx, models.StyleCreate{
		Name:              name,
		Description:       description,
		PromptInstruction: instruction,
		CSSContent:        css,
	})
	if err != nil {
		return err
	}
	a.printer.Success("Style %q created with id %d", s.Name, s.ID)
	return nil
}

func (a *App) StyleRemove(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := a.clients.Styles.Delete(ctx, id); err != nil {
		return err
	}
	a.printer.Success("Style %d deleted", id)
	return nil
}
