package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/dailycheck/internal/config"
	"github.com/idilsaglam/dailycheck/internal/model"
	"github.com/idilsaglam/dailycheck/internal/ui"
)

// -------------- subcommand impls ----------------

func newListCmd(a *app) *cobra.Command {
	var pending bool
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List items grouped by recurrence",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := a.svc.View(cmd.Context())
			if err != nil {
				return fmt.Errorf("load: %w", err)
			}
			out := cmd.OutOrStdout()
			ui.Panel(out, ui.ListLines(ui.For(out), v, pending))
			return nil
		},
	}
	cmd.Flags().BoolVar(&pending, "pending", false, "hide checked items")
	return cmd
}

func newAddCmd(a *app) *cobra.Command {
	var every string
	cmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add an item (text can be multiple words)",
		Example: `  dailycheck add "Take vitamins"
  dailycheck add --every week Take out the bins
  dailycheck add --every month Pay rent`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := a.cfg.Recurrence()
			if every != "" {
				var err error
				if r, err = parseRecurrence(every); err != nil {
					return err
				}
			}
			id, err := a.svc.Add(cmd.Context(), strings.Join(args, " "), r)
			if err != nil {
				return fmt.Errorf("add: %w", err)
			}
			if id != 0 {
				ui.OK(cmd.OutOrStdout(), fmt.Sprintf("added #%d (%s)", id, r.Label()))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&every, "every", "e", "", "recurrence: day, week (Monday) or month")
	return cmd
}

func newCheckCmd(a *app, use string, checked bool) *cobra.Command {
	short := "Check off the item with the given id"
	if !checked {
		short = "Clear the checkmark of the item with the given id"
	}
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(use, args)
			if err != nil {
				return err
			}
			if err := a.svc.SetChecked(cmd.Context(), id, checked); err != nil {
				return notFoundHint(use, err)
			}
			ui.OK(cmd.OutOrStdout(), use+"ed")
			return nil
		},
	}
}

func newToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip the checkmark of the item with the given id",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("toggle", args)
			if err != nil {
				return err
			}
			now, err := a.svc.Toggle(cmd.Context(), id)
			if err != nil {
				return notFoundHint("toggle", err)
			}
			state := "unchecked"
			if now {
				state = "checked"
			}
			ui.OK(cmd.OutOrStdout(), state)
			return nil
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <text...>",
		Aliases: []string{"delete"},
		Short:   "Remove every item whose text matches exactly",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			n, err := a.svc.Delete(cmd.Context(), text)
			if err != nil {
				return fmt.Errorf("rm: %w", err)
			}
			if strings.TrimSpace(text) != "" {
				ui.OK(cmd.OutOrStdout(), fmt.Sprintf("removed %d", n))
			}
			return nil
		},
	}
}

func newConfigCmd(rf *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		// config must work even when the database cannot be opened
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := rf.configPath
			if path == "" {
				path = config.GlobalConfigPath()
			}
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "wrote "+path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file locations that are read",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.GlobalConfigPath())
			if p := config.ProjectConfigPath(); p != "" {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
		},
	}

	cmd.AddCommand(initCmd, pathCmd)
	return cmd
}

func parseID(use string, args []string) (int64, error) {
	if len(args) != 1 {
		return 0, usagef("usage: dailycheck %s <id>", use)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, usagef("%s: not a number: %s", use, args[0])
	}
	return id, nil
}

func notFoundHint(use string, err error) error {
	if errors.Is(err, model.ErrItemNotFound) {
		return usagef("%s: %v (run `dailycheck ls` to see ids)", use, err)
	}
	return fmt.Errorf("%s: %w", use, err)
}

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.json>",
		Short: "Write all items to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.svc.Export(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("exported %d items to %s", n, args[0]))
			return nil
		},
	}
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Add the items of a JSON export as new unchecked items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			added, skipped, err := a.svc.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			msg := fmt.Sprintf("imported %d items", added)
			if skipped > 0 {
				msg += fmt.Sprintf(" (%d skipped)", skipped)
			}
			ui.OK(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}
