package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ressources-relationnelles/resrel-go/resrel"
)

func runResourcesList(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("resources", flag.ContinueOnError)
	opts := &resrel.ResourceListOptions{}
	fs.IntVar(&opts.Page, "page", 0, "page number")
	fs.IntVar(&opts.PerPage, "per-page", 0, "items per page")
	fs.StringVar(&opts.Search, "search", "", "full-text search")
	fs.StringVar(&opts.Category, "category", "", "filter by category slug")
	fs.StringVar(&opts.Type, "type", "", "filter by resource type")
	fs.StringVar(&opts.Sort, "sort", "", "sort order (e.g. recent, popular)")
	out := registerOutputFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	page, err := cc.Resources.List(cc.Ctx, opts)
	if err != nil {
		return reportFailure(classified(err, cc))
	}

	return out.render(os.Stdout, page, func(w io.Writer) error {
		tw := newTable(w)
		_, _ = fmt.Fprintln(tw, "ID\tTITRE\tCATÉGORIE\tFAV")
		for _, r := range page.Data {
			_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", r.ID, r.Title, r.Category, r.FavoriteCount)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		return writef(w, "\nPage %d/%d (%d au total)\n", page.CurrentPage, page.LastPage, page.Total)
	})
}

func runResourceShow(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("resource", flag.ContinueOnError)
	out := registerOutputFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := parseID(fs.Args(), "resource")
	if err != nil {
		return err
	}

	res, err := cc.Resources.Get(cc.Ctx, id)
	if err != nil {
		return reportFailure(classified(err, cc))
	}

	return out.render(os.Stdout, res, func(w io.Writer) error {
		tw := newTable(w)
		_, _ = fmt.Fprintf(tw, "ID\t%d\n", res.ID)
		_, _ = fmt.Fprintf(tw, "Titre\t%s\n", res.Title)
		_, _ = fmt.Fprintf(tw, "Catégorie\t%s\n", res.Category)
		_, _ = fmt.Fprintf(tw, "Type\t%s\n", res.Type)
		_, _ = fmt.Fprintf(tw, "Favoris\t%d\n", res.FavoriteCount)
		if res.Author != nil {
			_, _ = fmt.Fprintf(tw, "Auteur\t%s\n", res.Author.Name)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if res.Description != "" {
			return writef(w, "\n%s\n", res.Description)
		}
		return nil
	})
}

// classified runs an SDK error through the shared reporter so auth expiry
// is logged and announced the same way regardless of the command.
func classified(err error, cc *commandContext) *resrel.ErrorInfo {
	info := cc.Reporter.Report(err)
	return &info
}
