package actions

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli"

	"github.com/trigg3rX/feeshare-avs/internal/operator"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
	"github.com/trigg3rX/feeshare-avs/pkg/types"
)

func Apps(c *cli.Context) error {
	program := c.String("program")
	if program != "" && !common.IsHexAddress(program) {
		return fmt.Errorf("invalid --program %q", program)
	}

	logger, err := setup(logging.OperatorProcess)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	directory, err := operator.NewDirectoryClient(logger)
	if err != nil {
		return err
	}
	defer directory.Close()

	var apps []types.ApplicationRecord
	if program != "" {
		apps, err = directory.ListProgramApplications(context.Background(), common.HexToAddress(program))
	} else {
		apps, err = directory.ListAllApplications(context.Background())
	}
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(apps, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
