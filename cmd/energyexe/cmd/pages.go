package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/energyexe/dashboard/internal/api"
	"github.com/energyexe/dashboard/internal/auth"
	"github.com/energyexe/dashboard/internal/config"
	"github.com/energyexe/dashboard/internal/query"
	"github.com/energyexe/dashboard/internal/route"
	"github.com/energyexe/dashboard/internal/ui"
)

const maxRedirects = 3

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show portfolio metrics and recently updated wind farms",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return openPath(cmd.Context(), "/")
	},
}

var windfarmCmd = &cobra.Command{
	Use:   "windfarm <id>",
	Short: "Show a wind farm and its owners",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return openPath(cmd.Context(), "/windfarms/"+args[0])
	},
}

var openCmd = &cobra.Command{
	Use:   "open <path>",
	Short: "Open a dashboard page by path (e.g. /windfarms/42)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return openPath(cmd.Context(), args[0])
	},
}

func newAPIClient() (*api.Client, error) {
	timeout, err := cfg.APITimeout()
	if err != nil {
		return nil, err
	}
	return api.NewClient(api.Options{
		BaseURL: cfg.API.BaseURL,
		Token:   cfg.APIToken(),
		Timeout: timeout,
		Logger:  logger,
	})
}

// openPath resolves path through the route table, following redirects, and
// renders the page it lands on.
func openPath(ctx context.Context, path string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	var session auth.Session
	err = ui.RunWithSpinner("Checking session", func() error {
		var err error
		session, err = auth.Resolve(ctx, client)
		return err
	})
	if err != nil {
		return fmt.Errorf("resolving session: %w", err)
	}

	table := route.DefaultTable()
	for hops := 0; ; hops++ {
		decision, ok := table.Resolve(path, session)
		if !ok {
			return fmt.Errorf("session still loading for %s", path)
		}
		if decision.Redirect == "" {
			return renderPage(ctx, client, session, decision)
		}
		if hops == maxRedirects {
			return fmt.Errorf("too many redirects from %s", path)
		}
		logger.Debug("redirecting", "from", path, "to", decision.Redirect)
		path = decision.Redirect
	}
}

func renderPage(ctx context.Context, client *api.Client, session auth.Session, d route.Decision) error {
	switch d.Route.Name {
	case "dashboard":
		return renderDashboard(ctx, client, session)
	case "windfarms":
		return renderWindfarms(ctx, client)
	case "windfarm":
		id, err := d.Params.Int("id")
		if err != nil {
			return err
		}
		return renderWindfarm(ctx, client, id)
	case "login":
		renderLogin()
		return nil
	case "theme":
		return showTheme(ctx)
	default:
		return fmt.Errorf("no page for route %q", d.Route.Name)
	}
}

func renderDashboard(ctx context.Context, client *api.Client, session auth.Session) error {
	subtitle := "Portfolio overview"
	if session.User != nil {
		subtitle = "Welcome back, " + session.User.Username
	}
	ui.StartScreen("ENERGYEXE", subtitle)

	summary := query.Start(ctx, client.PortfolioSummary)
	recent := query.Start(ctx, func(ctx context.Context) ([]api.Windfarm, error) {
		return client.RecentWindfarms(ctx, cfg.Dashboard.RecentLimit)
	})

	err := ui.RunWithSpinner("Loading portfolio", func() error {
		return query.FetchAll(ctx,
			func(ctx context.Context) error { return summary.Wait(ctx).Err },
			func(ctx context.Context) error { return recent.Wait(ctx).Err },
		)
	})

	fmt.Println(summaryCards(summary.Result()))
	fmt.Println()
	fmt.Println(recentTable(recent.Result()))
	return err
}

func summaryCards(r query.Result[api.PortfolioSummary]) string {
	labels := []string{"Wind Farms", "Capacity", "Turbines", "Operational"}
	switch {
	case r.IsLoading:
		cards := make([]string, len(labels))
		for i, l := range labels {
			cards[i] = ui.SkeletonCard(l)
		}
		return ui.CardGrid(ui.Width(), cards...)
	case r.Err != nil:
		return ui.ErrorBox.Render("Portfolio summary unavailable: " + r.Err.Error())
	}

	s := r.Data
	return ui.CardGrid(ui.Width(),
		ui.Card(labels[0], strconv.Itoa(s.TotalWindfarms), fmt.Sprintf("%d countries", s.CountryCount)),
		ui.Card(labels[1], formatCapacity(s.TotalCapacityMW), fmt.Sprintf("%d owners", s.OwnerCount)),
		ui.Card(labels[2], strconv.Itoa(s.TotalTurbines), ""),
		ui.Card(labels[3], strconv.Itoa(s.OperationalCount), percentOf(s.OperationalCount, s.TotalWindfarms)),
	)
}

func recentTable(r query.Result[[]api.Windfarm]) string {
	switch {
	case r.IsLoading:
		return ui.MutedStyle.Render("Loading recent wind farms...")
	case r.Err != nil:
		return ui.ErrorBox.Render("Recent wind farms unavailable: " + r.Err.Error())
	case len(*r.Data) == 0:
		return ui.MutedStyle.Render("No wind farms yet.")
	}
	return ui.Title.Render("Recently updated") + "\n" + windfarmTable(*r.Data)
}

func windfarmTable(farms []api.Windfarm) string {
	rows := make([][]string, 0, len(farms))
	for _, f := range farms {
		rows = append(rows, []string{
			strconv.FormatInt(f.ID, 10),
			f.Name,
			f.Country,
			formatCapacity(f.CapacityMW),
			ui.Badge(f.Status),
		})
	}
	return ui.Table([]string{"ID", "Name", "Country", "Capacity", "Status"}, rows)
}

func renderWindfarms(ctx context.Context, client *api.Client) error {
	ui.StartScreen("WIND FARMS", "Most recently updated sites")

	var farms []api.Windfarm
	err := ui.RunWithSpinner("Loading wind farms", func() error {
		var err error
		farms, err = client.RecentWindfarms(ctx, 0)
		return err
	})
	if err != nil {
		return err
	}
	if len(farms) == 0 {
		fmt.Println(ui.MutedStyle.Render("No wind farms yet."))
		return nil
	}
	fmt.Println(windfarmTable(farms))
	return nil
}

func renderWindfarm(ctx context.Context, client *api.Client, id int64) error {
	var farm api.WindfarmWithOwners
	err := ui.RunWithSpinner("Loading wind farm", func() error {
		var err error
		farm, err = client.WindfarmWithOwners(ctx, id)
		return err
	})
	if err != nil {
		var se *api.StatusError
		if errors.As(err, &se) && se.NotFound() {
			fmt.Println(ui.ErrorBox.Render(fmt.Sprintf("Wind farm %d not found", id)))
			return nil
		}
		return err
	}

	ui.StartScreen(strings.ToUpper(farm.Name), farmSubtitle(farm.Windfarm))
	fmt.Println(ui.CardGrid(ui.Width(),
		ui.Card("Capacity", formatCapacity(farm.CapacityMW), ""),
		ui.Card("Status", ui.Badge(farm.Status), ""),
		ui.Card("Owners", strconv.Itoa(len(farm.Owners)), ""),
	))

	if len(farm.Owners) == 0 {
		fmt.Println(ui.MutedStyle.Render("No ownership records."))
		return nil
	}
	rows := make([][]string, 0, len(farm.Owners))
	for _, o := range farm.Owners {
		rows = append(rows, []string{o.Owner.Name, fmt.Sprintf("%.1f%%", o.OwnershipPercent)})
	}
	fmt.Println()
	fmt.Println(ui.Table([]string{"Owner", "Share"}, rows))
	return nil
}

func renderLogin() {
	ui.StartScreen("SIGN IN", "An API token is required to view the portfolio")
	fmt.Println(ui.InfoBox.Render(fmt.Sprintf(
		"Set %s or api.token in the config file,\nthen run energyexe again.",
		config.TokenEnv,
	)))
}

func farmSubtitle(f api.Windfarm) string {
	parts := []string{}
	if f.Code != "" {
		parts = append(parts, f.Code)
	}
	if f.Country != "" {
		parts = append(parts, f.Country)
	}
	if f.Offshore {
		parts = append(parts, "offshore")
	} else {
		parts = append(parts, "onshore")
	}
	if f.CommissionedAt != nil {
		parts = append(parts, "since "+f.CommissionedAt.Format("2006"))
	}
	return strings.Join(parts, " · ")
}

func formatCapacity(mw float64) string {
	if mw >= 1000 {
		return fmt.Sprintf("%.2f GW", mw/1000)
	}
	return fmt.Sprintf("%.0f MW", mw)
}

func percentOf(n, total int) string {
	if total == 0 {
		return ""
	}
	return fmt.Sprintf("%.0f%% of portfolio", float64(n)*100/float64(total))
}
