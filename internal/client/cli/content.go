package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/cofund/internal/client/models"
	"github.com/dmitrijs2005/cofund/internal/common"
)

var getMultiline = GetMultiline

// Create prompts for a new content item. An optional first argument names
// a local file that is uploaded as the item's media.
func (a *App) Create(ctx context.Context, args []string) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	kind, err := getSimpleText(a.reader, "Type (text, image, video, music, link)", a.out)
	if err != nil {
		return err
	}
	if !common.ValidContentType(kind) {
		return fmt.Errorf("unknown content type %q", kind)
	}

	in := &models.NewContent{Title: title, Type: kind}

	if kind == common.ContentTypeLink || (kind != common.ContentTypeText && len(args) == 0) {
		if in.MediaURL, err = getSimpleText(a.reader, "Media URL (empty for none)", a.out); err != nil {
			return err
		}
	}
	if in.Body, err = getMultiline(a.reader, "Body", a.out); err != nil {
		return err
	}

	var c *models.Content
	if len(args) > 0 && kind != common.ContentTypeLink {
		c, err = a.contentService.CreateWithMedia(ctx, in, args[0])
	} else {
		c, err = a.contentService.Create(ctx, in)
	}
	if err != nil {
		return err
	}

	a.ok("Created %s", c.ID)
	return nil
}

func (a *App) List(ctx context.Context) error {
	items, err := a.contentService.List(ctx)
	if err != nil {
		return err
	}
	a.printContent(items)
	return nil
}

func (a *App) Mine(ctx context.Context) error {
	items, err := a.contentService.Mine(ctx)
	if err != nil {
		return err
	}
	a.printContent(items)
	return nil
}

// Show prints one item, a fetchable media link and its current stakes.
func (a *App) Show(ctx context.Context, contentID string) error {
	c, err := a.contentService.Get(ctx, contentID)
	if err != nil {
		return err
	}

	a.printf("ID:          %s\n", c.ID)
	a.printf("Title:       %s\n", c.Title)
	a.printf("Type:        %s\n", c.Type)
	a.printf("Author:      %s\n", c.AuthorLabel)
	a.printf("Created:     %s\n", c.CreatedAt.Local().Format(time.DateTime))
	a.printf("Fingerprint: %s\n", orNone(c.LatestFingerprint))

	if c.MediaURL != "" {
		u, err := a.contentService.MediaURL(ctx, c)
		if err != nil {
			a.warn("media unavailable: %v", err)
		} else {
			a.printf("Media:       %s\n", u)
		}
	}
	if c.Body != "" {
		a.printf("\n%s\n\n", c.Body)
	}

	stakes, err := a.fundingService.Stakes(ctx, contentID)
	if err != nil {
		return err
	}
	a.printStakes(stakes)
	return nil
}

func (a *App) printContent(items []models.Content) {
	if len(items) == 0 {
		a.printf("No content\n")
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tTITLE\tAUTHOR\tFUNDED")
	for _, c := range items {
		funded := "no"
		if c.LatestFingerprint != "" {
			funded = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Type, c.Title, c.AuthorLabel, funded)
	}
	_ = w.Flush()
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
