package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ressources-relationnelles/resrel-go/resrel"
)

func runFavoritesList(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("favorites", flag.ContinueOnError)
	opts := &resrel.ListOptions{}
	fs.IntVar(&opts.Page, "page", 0, "page number")
	fs.IntVar(&opts.PerPage, "per-page", 0, "items per page")
	out := registerOutputFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	page, err := cc.Favorites.List(cc.Ctx, opts)
	if err != nil {
		return reportFailure(classified(err, cc))
	}

	return out.render(os.Stdout, page, func(w io.Writer) error {
		tw := newTable(w)
		_, _ = fmt.Fprintln(tw, "ID\tRESSOURCE\tAJOUTÉ LE")
		for _, f := range page.Data {
			title := ""
			if f.Resource != nil {
				title = f.Resource.Title
			}
			_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n", f.ResourceID, title, f.CreatedAt)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		return writef(w, "\nPage %d/%d (%d au total)\n", page.CurrentPage, page.LastPage, page.Total)
	})
}

func runFavoriteToggle(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("favorite", flag.ContinueOnError)
	out := registerOutputFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := parseID(fs.Args(), "resource")
	if err != nil {
		return err
	}

	toggle, err := cc.Favorites.Toggle(cc.Ctx, id)
	if err != nil {
		return reportFailure(classified(err, cc))
	}

	return out.render(os.Stdout, toggle, func(w io.Writer) error {
		verb := "retirée des favoris"
		if toggle.IsFavorite {
			verb = "ajoutée aux favoris"
		}
		return writef(w, "Ressource %d %s (%d favoris).\n", id, verb, toggle.FavoriteCount)
	})
}
