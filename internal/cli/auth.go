package cli

import (
	"errors"
	"fmt"

	"github.com/nvquaan/con-bo-cham-chi/internal/credential"
	"github.com/spf13/cobra"
)

var authCmd = GroupCommand{
	Use:   "auth",
	Short: "Manage the basic auth value and access token sent with submissions",
	Subcommands: []*cobra.Command{
		authSetCmd,
		authShowCmd,
	},
}.Build()

var authSetCmd = LeafCommand{
	Use:   "set",
	Short: "Set and save the credentials",
	StrFlags: []StringFlag{
		{Name: "basic", Usage: "value placed after 'Basic ' in the Authorization header"},
		{Name: "token", Usage: "access token sent in the token header"},
	},
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "save without confirmation"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadAppContext(cmd)
		if err != nil {
			return err
		}

		basic, _ := cmd.Flags().GetString("basic")
		token, _ := cmd.Flags().GetString("token")
		yes, _ := cmd.Flags().GetBool("yes")

		pk := NewPromptKit()
		if yes {
			pk.Confirm = AlwaysYes()
		}
		return runAuthSet(cmd, app.store, basic, token, pk)
	},
}.Build()

func runAuthSet(cmd *cobra.Command, store *credential.Store, basic, token string, pk PromptKit) error {
	w := cmd.OutOrStdout()

	current, err := store.Load()
	if errors.Is(err, credential.ErrCorruptStore) {
		_, _ = fmt.Fprintf(w, "%s\n", Warning(fmt.Sprintf("%s is unreadable and will be replaced", store.Path())))
		current = credential.Credentials{}
	} else if err != nil {
		return err
	}

	next, err := promptCredentials(pk, current, basic, token)
	if err != nil {
		return err
	}

	confirmed, err := pk.Confirm("Save credentials?")
	if err != nil {
		return err
	}
	if !confirmed {
		_, _ = fmt.Fprintf(w, "%s\n", Text("credentials not saved"))
		return nil
	}

	if err := store.Save(next); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("credentials saved to %s", Primary(store.Path()))))
	if !next.Complete() {
		_, _ = fmt.Fprintf(w, "%s\n", Warning("both basic auth and access token are needed to submit"))
	}
	return nil
}

// promptCredentials asks for each secret not already given, pre-filled with
// the current value.
func promptCredentials(pk PromptKit, current credential.Credentials, basic, token string) (credential.Credentials, error) {
	next := current
	var err error

	if basic != "" {
		next.BasicAuth = basic
	} else if next.BasicAuth, err = pk.Secret("Basic auth", current.BasicAuth); err != nil {
		return credential.Credentials{}, err
	}

	if token != "" {
		next.AccessToken = token
	} else if next.AccessToken, err = pk.Secret("Access token", current.AccessToken); err != nil {
		return credential.Credentials{}, err
	}

	return next, nil
}

var authShowCmd = LeafCommand{
	Use:   "show",
	Short: "Show the saved credentials, masked",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadAppContext(cmd)
		if err != nil {
			return err
		}
		return runAuthShow(cmd, app.store)
	},
}.Build()

func runAuthShow(cmd *cobra.Command, store *credential.Store) error {
	creds, err := store.Load()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Store:       "), Text(store.Path()))
	_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Basic auth:  "), maskedOrUnset(creds.BasicAuth))
	_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Access token:"), maskedOrUnset(creds.AccessToken))
	return nil
}

func maskedOrUnset(secret string) string {
	if secret == "" {
		return Warning("not set")
	}
	return Primary(credential.Mask(secret))
}
