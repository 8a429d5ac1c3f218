package main

import (
	"context"
	"os"

	"polstats-backend/cmd/polstats-cli/cmd"
	"polstats-backend/lib/configutil"
	"polstats-backend/lib/serviceutil"
	"polstats-backend/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	config, err := configutil.ReadConfig[cmd.Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}

	telemetry.InitSlog(config.Verbose)
	t, err := telemetry.SetupFromEnv(ctx, "polstats-cli")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	if err == nil {
		defer t.Shutdown(context.Background())
		telemetry.InstrumentPerfStats(ctx)
	}

	cmd.Execute(ctx, config)
}
