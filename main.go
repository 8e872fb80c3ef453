package main

import (
	"os"

	"github.com/arkivo/arkivo-slack/pkg/cli"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	err := cli.App().Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Msg("exiting")
	}
}
