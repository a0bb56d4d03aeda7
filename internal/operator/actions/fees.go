package actions

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli"

	"github.com/trigg3rX/feeshare-avs/internal/operator"
	"github.com/trigg3rX/feeshare-avs/internal/operator/config"
	"github.com/trigg3rX/feeshare-avs/internal/operator/core"
	"github.com/trigg3rX/feeshare-avs/pkg/attestation"
	"github.com/trigg3rX/feeshare-avs/pkg/fees"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
	"github.com/trigg3rX/feeshare-avs/pkg/types"
)

type feesReport struct {
	Task         types.Task         `json:"task"`
	Response     types.TaskResponse `json:"response"`
	TotalRewards string             `json:"total_rewards"`
	Operator     string             `json:"operator"`
	Attestation  string             `json:"attestation"`
}

// Fees runs the task pipeline up to signing and prints the result.
func Fees(c *cli.Context) error {
	task, err := taskFromFlags(c)
	if err != nil {
		return err
	}

	logger, err := setup(logging.OperatorProcess)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	privateKey, err := operator.LoadOperatorKey()
	if err != nil {
		return fmt.Errorf("failed to load operator key: %w", err)
	}
	signer, err := attestation.NewSigner(privateKey)
	if err != nil {
		return err
	}
	explorerClient, err := operator.NewExplorerClient(logger)
	if err != nil {
		return err
	}
	defer explorerClient.Close()
	directory, err := operator.NewDirectoryClient(logger)
	if err != nil {
		return err
	}
	defer directory.Close()

	processor := core.NewProcessor(
		directory,
		fees.NewAggregator(explorerClient, logger),
		signer,
		nil,
		nil,
		core.ProcessorConfig{RequestTimeout: config.GetRequestTimeout()},
	)
	response, err := processor.BuildResponse(context.Background(), task, logger)
	if err != nil {
		return err
	}
	att, err := signer.Sign(response, task.TaskCreatedBlock)
	if err != nil {
		return err
	}
	encoded, err := attestation.EncodeAttestation(att)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(feesReport{
		Task:         task,
		Response:     response,
		TotalRewards: response.TotalRewards().String(),
		Operator:     signer.Address().Hex(),
		Attestation:  hexutil.Encode(encoded),
	}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func taskFromFlags(c *cli.Context) (types.Task, error) {
	reward := c.String("reward-address")
	if !common.IsHexAddress(reward) {
		return types.Task{}, fmt.Errorf("invalid --reward-address %q", reward)
	}
	ids, err := parseAppIDs(c.String("app-ids"))
	if err != nil {
		return types.Task{}, err
	}
	taskIndex, createdBlock := c.Uint("task-index"), c.Uint("task-created-block")
	if uint64(taskIndex) > math.MaxUint32 || uint64(createdBlock) > math.MaxUint32 {
		return types.Task{}, fmt.Errorf("--task-index and --task-created-block must fit in uint32")
	}

	task := types.Task{
		RewardContractAddress: common.HexToAddress(reward),
		AppIDs:                ids,
		FromBlockNum:          c.Uint64("from"),
		ToBlockNum:            c.Uint64("to"),
		TaskIndex:             uint32(taskIndex),
		TaskCreatedBlock:      uint32(createdBlock),
	}
	if err := task.Validate(); err != nil {
		return types.Task{}, err
	}
	return task, nil
}

func parseAppIDs(raw string) ([]uint64, error) {
	var ids []uint64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid app id %q", part)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("--app-ids is required")
	}
	return ids, nil
}
