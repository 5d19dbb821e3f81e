package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/ressources-relationnelles/resrel-go/resrel"
)

// dashboardView bundles the two dashboard endpoints into one renderable.
type dashboardView struct {
	Summary     *resrel.DashboardSummary  `json:"summary"`
	Progression []resrel.ProgressionEntry `json:"progression"`
}

func runDashboard(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	out := registerOutputFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	var view dashboardView
	g, ctx := errgroup.WithContext(cc.Ctx)
	g.Go(func() error {
		summary, err := cc.Dashboard.Summary(ctx)
		view.Summary = summary
		return err
	})
	g.Go(func() error {
		progression, err := cc.Dashboard.Progression(ctx)
		view.Progression = progression
		return err
	})
	if err := g.Wait(); err != nil {
		return reportFailure(classified(err, cc))
	}

	return out.render(os.Stdout, view, func(w io.Writer) error {
		tw := newTable(w)
		_, _ = fmt.Fprintf(tw, "Ressources\t%d\n", view.Summary.ResourceCount)
		_, _ = fmt.Fprintf(tw, "Favoris\t%d\n", view.Summary.FavoriteCount)
		_, _ = fmt.Fprintf(tw, "Activités\t%d\n", view.Summary.ActivityCount)
		_, _ = fmt.Fprintf(tw, "Commentaires\t%d\n", view.Summary.CommentCount)
		if err := tw.Flush(); err != nil {
			return err
		}

		if len(view.Progression) == 0 {
			return nil
		}
		if err := writef(w, "\nProgression:\n"); err != nil {
			return err
		}
		tw = newTable(w)
		for _, p := range view.Progression {
			_, _ = fmt.Fprintf(tw, "  %s\t%d/%d\n", p.Label, p.Completed, p.Total)
		}
		return tw.Flush()
	})
}
