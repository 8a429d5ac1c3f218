package cmd

import (
	"context"
	"fmt"
	"os"

	configlibsql "polstats-backend/lib/configutil/libsql"
	"polstats-backend/lib/restyutil"
	scrape "polstats-backend/lib/scrapers/disclosures"
	svc "polstats-backend/services/disclosures"
	disclosuresdb "polstats-backend/services/disclosures/db"

	"github.com/spf13/cobra"
)

type Config struct {
	// campaign finance disclosure site
	DisclosuresBaseUrl string `json:"disclosures_base_url"`
	// lobbyist registration/report site
	LobbyistBaseUrl string `json:"lobbyist_base_url"`
	// identifies this scraper to the sites it fetches from
	UserAgent string `json:"user_agent"`
	// when set, raw http traffic is dumped here for debugging
	HttpLogDir string              `json:"http_log_dir"`
	Database   configlibsql.Struct `json:"database"`
	Verbose    bool                `json:"verbose"`
}

var (
	config          Config
	service         svc.Service
	disclosuresSite scrape.Client
	lobbyistSite    scrape.Client
)

var rootCmd = &cobra.Command{
	Use:   "polstats-cli",
	Short: "polstats-cli fetches and stores public disclosure filings.",
}

func Execute(ctx context.Context, cfg Config) {
	config = cfg

	var output restyutil.InstrumentOutput
	if cfg.HttpLogDir != "" {
		output = restyutil.NewFilesystemOutput(cfg.HttpLogDir)
	}

	disclosuresSite = scrape.NewClient(scrape.ClientOptions{
		BaseUrl:          cfg.DisclosuresBaseUrl,
		UserAgent:        cfg.UserAgent,
		InstrumentOutput: output,
	})
	lobbyistSite = scrape.NewClient(scrape.ClientOptions{
		BaseUrl:          cfg.LobbyistBaseUrl,
		UserAgent:        cfg.UserAgent,
		InstrumentOutput: output,
	})

	db, err := cfg.Database.OpenDB(disclosuresdb.Schema)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to open database:", err)
		os.Exit(1)
	}
	service = svc.NewService(db)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
