package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/staffhive/benchctl/pkg/agencysdk"
)

func newLoginCommand(a *App) *cobra.Command {
	var username string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPublic("sign in", func(ctx context.Context) error {
				// Already signed in with a live token: skip straight to
				// the dashboard, like the login screen bouncing an
				// authenticated visitor.
				if a.store.IsAuthenticated(ctx) {
					if user := a.store.User(ctx); user != nil {
						fmt.Fprintf(a.out, "Already signed in as %s.\n\n", user.DisplayName())
					}
					if err := a.showDashboard(ctx); err != nil {
						if agencysdk.IsSessionExpired(err) {
							return errSessionEnded
						}
						return err
					}
					return nil
				}

				// One buffered reader for both prompts; a second
				// bufio over the same pipe would lose the password
				// line the first one already buffered.
				var reader *bufio.Reader
				input := func() *bufio.Reader {
					if reader == nil {
						reader = bufio.NewReader(cmd.InOrStdin())
					}
					return reader
				}

				if username == "" {
					fmt.Fprint(a.out, "Username: ")
					line, err := input().ReadString('\n')
					if err != nil {
						return err
					}
					username = strings.TrimSpace(line)
				}
				if password == "" {
					pw, err := promptPassword(a, cmd.InOrStdin(), input())
					if err != nil {
						return err
					}
					password = pw
				}

				user, err := a.client.SignIn(ctx, username, password)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Signed in as %s.\n", user.DisplayName())
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username to sign in with")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	return cmd
}

// promptPassword reads a password without echo when the command's input
// is a terminal, falling back to a plain line read from the shared
// buffered reader when it is not (pipes, tests).
func promptPassword(a *App, in io.Reader, buf *bufio.Reader) (string, error) {
	fmt.Fprint(a.out, "Password: ")
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(a.out)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}

	line, err := buf.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func newLogoutCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run("sign out", func(ctx context.Context) error {
				if err := a.client.SignOut(ctx); err != nil {
					return err
				}
				fmt.Fprintln(a.out, "Signed out.")
				return nil
			})
		},
	}
}

func newWhoamiCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("read session", func(ctx context.Context) error {
				user := a.store.User(ctx)
				if user == nil {
					fmt.Fprintln(a.out, "Signed in, but no user details are stored.")
					return nil
				}
				if a.asJSON {
					return a.printJSON(user)
				}
				fmt.Fprintf(a.out, "%s (@%s, id %d)\n", user.DisplayName(), user.Username, user.ID)
				return nil
			})
		},
	}
}
