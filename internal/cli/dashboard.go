// Package cli implements the dashboardctl operator commands.
package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"publicdashboard/internal/registry"
	"publicdashboard/internal/service"
)

// App holds what the commands operate on.
type App struct {
	Service    service.DashboardService
	Components *registry.Registry
}

// RootCmd builds the dashboardctl command tree around app.
func RootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "dashboardctl",
		Short: "Manage the public dashboard list",
		Long: `dashboardctl lists and reorders the dashboards shown on the public page.
It works on the same database as the admin web interface.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(listCmd(app))
	root.AddCommand(moveCmd(app, service.Up))
	root.AddCommand(moveCmd(app, service.Down))
	root.AddCommand(removeCmd(app))
	root.AddCommand(componentsCmd(app))
	return root
}

func listCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List dashboards in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printList(cmd, app)
		},
	}
}

func moveCmd(app *App, dir service.Direction) *cobra.Command {
	where := "above"
	if dir == service.Down {
		where = "below"
	}

	return &cobra.Command{
		Use:   fmt.Sprintf("move-%s [dashboard-id]", dir),
		Short: fmt.Sprintf("Swap a dashboard with the one %s it", where),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			// The move itself ignores unknown ids; report them here.
			dashboard, err := app.Service.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("dashboard %d: %w", id, err)
			}

			move := app.Service.MoveUp
			if dir == service.Down {
				move = app.Service.MoveDown
			}

			var cache service.ListCache
			if err := move(ctx, &cache, id); err != nil {
				return fmt.Errorf("failed to move dashboard: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Moved dashboard %d (%s) %s\n", success(), id, dashboard.Name, dir)
			return printList(cmd, app)
		},
	}
}

func removeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove [dashboard-id]",
		Short: "Remove a dashboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var cache service.ListCache
			if err := app.Service.Delete(cmd.Context(), &cache, id); err != nil {
				return fmt.Errorf("failed to remove dashboard: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Removed dashboard %d\n", success(), id)
			return nil
		},
	}
}

func componentsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List the registered dashboard components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDESCRIPTION")
			fmt.Fprintln(w, "--\t-----------")
			for _, c := range app.Components.Components() {
				fmt.Fprintf(w, "%s\t%s\n", c.ID, c.Description)
			}
			return w.Flush()
		},
	}
}

func printList(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	var cache service.ListCache
	ids, err := app.Service.ListOrderedIDs(ctx, &cache, true)
	if err != nil {
		return fmt.Errorf("failed to list dashboards: %w", err)
	}
	if len(ids) == 0 {
		fmt.Fprintln(out, "No dashboards found")
		return nil
	}

	dashboards, err := app.Service.ResolveRecords(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to load dashboards: %w", err)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POSITION\tID\tNAME\tCOMPONENT")
	fmt.Fprintln(w, "--------\t--\t----\t---------")
	for _, d := range dashboards {
		component := d.ComponentID
		if _, ok := app.Components.Lookup(d.ComponentID); !ok {
			component += unknownMarker()
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", d.Position, d.ID, d.Name, component)
	}
	return w.Flush()
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid dashboard id %q", raw)
	}
	return id, nil
}

func success() string {
	return color.New(color.FgGreen).Sprint("✓")
}

func unknownMarker() string {
	return color.New(color.FgYellow).Sprint(" (unregistered)")
}
