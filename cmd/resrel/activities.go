package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ressources-relationnelles/resrel-go/resrel"
)

func runActivitiesList(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("activities", flag.ContinueOnError)
	opts := &resrel.ActivityListOptions{}
	fs.IntVar(&opts.Page, "page", 0, "page number")
	fs.IntVar(&opts.PerPage, "per-page", 0, "items per page")
	fs.StringVar(&opts.Status, "status", "", "filter by status")
	fs.StringVar(&opts.Search, "search", "", "full-text search")
	upcoming := fs.Bool("upcoming", false, "only activities that have not started yet")
	out := registerOutputFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *upcoming {
		opts.Upcoming = upcoming
	}

	page, err := cc.Activities.List(cc.Ctx, opts)
	if err != nil {
		return reportFailure(classified(err, cc))
	}

	return out.render(os.Stdout, page, func(w io.Writer) error {
		tw := newTable(w)
		_, _ = fmt.Fprintln(tw, "ID\tTITRE\tDÉBUT\tPARTICIPANTS\tINSCRIT")
		for _, a := range page.Data {
			joined := ""
			if a.IsParticipant {
				joined = "oui"
			}
			_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", a.ID, a.Title, a.StartsAt, a.ParticipantCount, joined)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		return writef(w, "\nPage %d/%d (%d au total)\n", page.CurrentPage, page.LastPage, page.Total)
	})
}

func runActivityJoin(cc *commandContext, args []string) error {
	id, err := parseID(args, "activity")
	if err != nil {
		return err
	}

	res, err := cc.Activities.Join(cc.Ctx, id)
	if err != nil {
		return reportFailure(classified(err, cc))
	}
	return writef(os.Stdout, "%s\n", res.Message)
}

func runActivityLeave(cc *commandContext, args []string) error {
	id, err := parseID(args, "activity")
	if err != nil {
		return err
	}

	res, err := cc.Activities.Leave(cc.Ctx, id)
	if err != nil {
		return reportFailure(classified(err, cc))
	}
	return writef(os.Stdout, "%s\n", res.Message)
}
