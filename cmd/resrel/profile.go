package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ressources-relationnelles/resrel-go/resrel"
)

func runProfile(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	name := fs.String("name", "", "set a new display name")
	email := fs.String("email", "", "set a new email address")
	avatar := fs.String("avatar", "", "upload an image file as the new avatar")
	out := registerOutputFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		user *resrel.User
		err  error
	)
	switch {
	case *avatar != "":
		f, openErr := os.Open(*avatar)
		if openErr != nil {
			return fmt.Errorf("open avatar file: %w", openErr)
		}
		defer func() { _ = f.Close() }()
		user, err = cc.Profile.UploadAvatar(cc.Ctx, filepath.Base(*avatar), f)
	case *name != "" || *email != "":
		user, err = cc.Profile.Update(cc.Ctx, resrel.ProfileUpdate{Name: *name, Email: *email})
	default:
		user, err = cc.Profile.Get(cc.Ctx)
	}
	if err != nil {
		return reportFailure(classified(err, cc))
	}

	return out.render(os.Stdout, user, func(w io.Writer) error {
		tw := newTable(w)
		_, _ = fmt.Fprintf(tw, "ID\t%d\n", user.ID)
		_, _ = fmt.Fprintf(tw, "Nom\t%s\n", user.Name)
		_, _ = fmt.Fprintf(tw, "Email\t%s\n", user.Email)
		_, _ = fmt.Fprintf(tw, "Rôle\t%s\n", user.Role)
		return tw.Flush()
	})
}
