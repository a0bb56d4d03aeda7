package actions

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/trigg3rX/feeshare-avs/internal/operator/config"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
)

// Commands returns the operator CLI commands.
func Commands() []cli.Command {
	return []cli.Command{
		{
			Name:   "start",
			Usage:  "Listen for fee-share tasks and submit signed fee attestations",
			Action: Start,
		},
		{
			Name:   "register",
			Usage:  "Register the operator key with the delegation manager and the AVS stake registry",
			Action: Register,
		},
		{
			Name:  "fees",
			Usage: "Compute and sign the response to a task without submitting it",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "reward-address", Usage: "reward contract address of the task"},
				cli.StringFlag{Name: "app-ids", Usage: "comma separated on-chain app ids"},
				cli.Uint64Flag{Name: "from", Usage: "first block of the range"},
				cli.Uint64Flag{Name: "to", Usage: "last block of the range"},
				cli.UintFlag{Name: "task-index", Usage: "task index to reference in the response"},
				cli.UintFlag{Name: "task-created-block", Usage: "task creation block to put in the attestation"},
			},
			Action: Fees,
		},
		{
			Name:  "apps",
			Usage: "List whitelisted applications from the app directory",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "program", Usage: "only list applications of this program address"},
			},
			Action: Apps,
		},
	}
}

// setup loads the configuration and opens the process logger.
func setup(process logging.ProcessName) (*logging.ZapLogger, error) {
	if err := config.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	logger, err := logging.NewZapLogger(logging.LoggerConfig{
		ProcessName:   process,
		IsDevelopment: config.IsDevMode(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
