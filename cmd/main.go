package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/cloudkeeper/azureingest/internal/app"
	"github.com/cloudkeeper/azureingest/pkg/config/env"
	"github.com/cloudkeeper/azureingest/pkg/errors"
	"github.com/cloudkeeper/azureingest/pkg/ports/cli"
)

func main() {
	// A .env file is optional; a present-but-broken one is not.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("%v", errors.NewErrEnvLoad(err))
	}

	configurations, err := env.SetupConfigurations()
	if err != nil {
		log.Fatalf("%v", errors.NewErrConfigSetup(err))
	}

	appInstance := app.NewApp(configurations)
	rootCmd := cli.NewCommand(appInstance)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
