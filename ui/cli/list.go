// Copyright (c) 2026 Keymaster Team
// ssr - SSH known_hosts manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/ssr/internal/core"
	"github.com/toeirei/ssr/internal/i18n"
	"github.com/toeirei/ssr/internal/knownhosts"
	"github.com/toeirei/ssr/internal/tui"
	"golang.org/x/term"
)

func newListCmd(a *app) *cobra.Command {
	var fingerprints, interactive, history bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all entries in known_hosts",
		Long: `Lists every distinct host field in known_hosts in the order it first
appears, with the number of entries when a host has more than one.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fail := func(err error) error {
				return &CommandError{Label: i18n.T("errors.list"), Err: err}
			}
			svc, cleanup, err := a.newService(cmd, history)
			if err != nil {
				return fail(err)
			}
			defer cleanup()

			switch {
			case history:
				err = svc.History(cmd.Context())
			case interactive:
				err = a.pickAndRemove(cmd, svc)
			default:
				err = svc.List(cmd.Context(), core.ListOptions{Fingerprints: fingerprints})
			}
			if err != nil {
				return fail(err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&fingerprints, "fingerprints", "f", false, "Show key type and SHA256 fingerprint of each entry")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick hosts to remove interactively")
	cmd.Flags().BoolVar(&history, "history", false, "Show recently removed entries from the removal journal")
	return cmd
}

// pickAndRemove lets the user choose host fields and removes exactly those.
func (a *app) pickAndRemove(cmd *cobra.Command, svc *core.Service) error {
	in, ok := cmd.InOrStdin().(*os.File)
	if !ok || !term.IsTerminal(int(in.Fd())) {
		return errors.New(i18n.T("list.interactive_needs_tty"))
	}
	return a.removeSelection(cmd, svc, func(groups []knownhosts.HostCount) ([]string, error) {
		return tui.Run(groups, in, cmd.OutOrStdout())
	})
}

func (a *app) removeSelection(cmd *cobra.Command, svc *core.Service, pick func([]knownhosts.HostCount) ([]string, error)) error {
	groups, err := svc.Groups(cmd.Context())
	if err != nil || len(groups) == 0 {
		return err
	}
	selected, err := pick(groups)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		svc.Out.Println(i18n.T("list.nothing_selected"))
		return nil
	}
	_, err = svc.Remove(cmd.Context(), strings.Join(selected, ", "), knownhosts.NewFieldMatcher(selected...), core.RemoveOptions{})
	return err
}
