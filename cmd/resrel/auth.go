package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/ressources-relationnelles/resrel-go/resrel"
)

func runLogin(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("--email is required")
	}

	password, err := promptPassword("Mot de passe: ")
	if err != nil {
		return err
	}

	res := cc.Session.Login(cc.Ctx, resrel.Credentials{Email: *email, Password: password})
	if !res.Success {
		return reportFailure(res.Error)
	}

	user := cc.Session.State().User
	return writef(os.Stdout, "Connecté en tant que %s <%s>\n", user.Name, user.Email)
}

func runLogout(cc *commandContext, args []string) error {
	res := cc.Session.Logout(cc.Ctx)
	if !res.Success {
		// The local session is gone either way; surface the remote
		// failure without pretending the logout didn't happen.
		if err := writef(os.Stderr, "déconnexion distante en échec: %s\n", res.Error.Message); err != nil {
			return err
		}
	}
	return writef(os.Stdout, "Session locale supprimée.\n")
}

func runRegister(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *email == "" {
		return errors.New("--name and --email are required")
	}

	password, err := promptPassword("Mot de passe: ")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Confirmez le mot de passe: ")
	if err != nil {
		return err
	}

	res := cc.Session.Register(cc.Ctx, resrel.Registration{
		Name:                 *name,
		Email:                *email,
		Password:             password,
		PasswordConfirmation: confirm,
	})
	if !res.Success {
		return reportFailure(res.Error)
	}

	user := cc.Session.State().User
	return writef(os.Stdout, "Compte créé: %s <%s>\n", user.Name, user.Email)
}

func runWhoami(cc *commandContext, args []string) error {
	res := cc.Session.CheckAuth(cc.Ctx)
	if !res.Success {
		if res.Error != nil {
			return reportFailure(res.Error)
		}
		return writef(os.Stdout, "Non connecté.\n")
	}

	user := cc.Session.State().User
	tw := newTable(os.Stdout)
	_, _ = fmt.Fprintf(tw, "ID\t%d\n", user.ID)
	_, _ = fmt.Fprintf(tw, "Nom\t%s\n", user.Name)
	_, _ = fmt.Fprintf(tw, "Email\t%s\n", user.Email)
	_, _ = fmt.Fprintf(tw, "Rôle\t%s\n", user.Role)
	_, _ = fmt.Fprintf(tw, "Vérifié\t%t\n", user.IsVerified)
	return tw.Flush()
}

// promptPassword reads a password without echo when stdin is a terminal,
// and falls back to a plain line read otherwise (pipes, CI).
func promptPassword(prompt string) (string, error) {
	if err := writef(os.Stderr, "%s", prompt); err != nil {
		return "", err
	}

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		if err := writef(os.Stderr, "\n"); err != nil {
			return "", err
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// reportFailure turns a classified error into the command's exit error,
// listing field errors when a form was rejected.
func reportFailure(info *resrel.ErrorInfo) error {
	if info == nil {
		return errors.New("la requête a échoué")
	}
	if info.Type == resrel.ErrTypeValidation {
		for field, messages := range info.Errors {
			for _, msg := range messages {
				if err := writef(os.Stderr, "  %s: %s\n", field, msg); err != nil {
					return err
				}
			}
		}
	}
	return errors.New(info.Message)
}
