package main

import (
	"log"
	"os"

	"github.com/urfave/cli"

	"github.com/trigg3rX/feeshare-avs/internal/operator/actions"
)

func main() {
	app := cli.NewApp()
	app.Name = "feeshare-operator"
	app.Usage = "Fee-share AVS operator"
	app.Description = "Listens to FeeShareServiceManager tasks, aggregates the gas fees of whitelisted apps and submits signed attestations."
	app.Commands = actions.Commands()

	if err := app.Run(os.Args); err != nil {
		log.Fatalln("Application failed. Message:", err)
	}
}
