package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/wepub/internal/client/models"
)

const articlesPageSize = 20

// Articles lists one page of articles, newest first. Pages start at 1.
func (a *App) Articles(ctx context.Context, args []string) error {
	page := 1
	if len(args) > 0 {
		p, err := strconv.Atoi(args[0])
		if err != nil || p < 1 {
			return fmt.Errorf("invalid page %q", args[0])
		}
		page = p
	}

	list, err := a.clients.Articles.List(ctx, (page-1)*articlesPageSize, articlesPageSize)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.printer.Info("No articles on page %d.", page)
		return nil
	}

	tbl := a.newTable("ID", "Title", "Status", "Created", "Synced")
	for _, s := range list {
		tbl.AddRow(strconv.FormatInt(s.ID, 10), s.Title, a.printer.StatusBadge(string(s.Status)),
			s.CreatedAt.String(), s.SyncedAt.String())
	}
	if err := tbl.Render(); err != nil {
		return err
	}
	if len(list) == articlesPageSize {
		a.printer.Info("More on 'articles %d'.", page+1)
	}
	return nil
}

func (a *App) Article(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	art, err := a.clients.Articles.Get(ctx, id)
	if err != nil {
		return err
	}

	a.printer.Header(art.Title)
	a.printer.Field("ID", art.ID)
	a.printer.Field("Style", art.StyleID)
	a.printer.Field("Status", a.printer.StatusBadge(string(art.Status)))
	a.printer.Field("Created", art.CreatedAt)
	a.printer.Field("Synced", art.SyncedAt)
	if art.SyncErrorMessage != "" {
		a.printer.Field("Sync error", art.SyncErrorMessage)
	}
	a.printer.Print("\n%s", art.ContentRaw)
	return nil
}

// Generate asks the backend to write an article. The call waits for the
// model, so it runs under the longer generation timeout.
func (a *App) Generate(ctx context.Context, _ []string) error {
	rawID, err := a.ask("Style id (see 'styles')")
	if err != nil {
		return err
	}
	styleID, err := parseID(rawID)
	if err != nil {
		return err
	}
	prompt, err := getMultiline(a.reader, "What should the article be about?", a.out)
	if err != nil {
		return err
	}
	if prompt == "" {
		return errEmptyInput
	}

	a.printer.Info("Generating, this can take up to %s...", a.config.GenerateTimeout)
	art, err := a.clients.Articles.Create(ctx, models.ArticleCreate{StyleID: styleID, PromptInput: prompt})
	if err != nil {
		return err
	}
	a.printer.Success("Article %d %q generated", art.ID, art.Title)
	return nil
}

func (a *App) Sync(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	art, err := a.clients.Articles.Sync(ctx, id)
	if err != nil {
		return err
	}
	a.printer.Success("Article %d pushed to WeChat drafts (media id %s)", art.ID, orDash(art.WechatMediaID))
	return nil
}

func (a *App) ArticleRemove(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := a.clients.Articles.Delete(ctx, id); err != nil {
		return err
	}
	a.printer.Success("Article %d deleted", id)
	return nil
}
