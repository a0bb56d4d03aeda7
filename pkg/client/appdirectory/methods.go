package appdirectory

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	pkgErrors "github.com/trigg3rX/feeshare-avs/pkg/errors"
	httppkg "github.com/trigg3rX/feeshare-avs/pkg/http"
	"github.com/trigg3rX/feeshare-avs/pkg/types"
)

// ListAllApplications returns every whitelisted application in directory order.
func (c *Client) ListAllApplications(ctx context.Context) ([]types.ApplicationRecord, error) {
	resp, err := c.httpClient.Get(ctx, c.config.GetEndpoint("applications"))
	apps, err := c.decodeApps(resp, err, "list applications")
	if err != nil {
		return nil, err
	}
	c.logger.Debug("Listed applications", "count", len(apps))
	return apps, nil
}

// FilterApplications returns the applications of rewardAddress whose on-chain
// id is in appIDs. The server's answer is re-checked on both conditions.
func (c *Client) FilterApplications(ctx context.Context, rewardAddress common.Address, appIDs []uint64) ([]types.ApplicationRecord, error) {
	body := filterAppsRequest{
		RewardAddress: rewardAddress.Hex(),
		OnchainIDs:    appIDs,
	}
	if body.OnchainIDs == nil {
		body.OnchainIDs = []uint64{}
	}

	resp, err := c.httpClient.PostJSON(ctx, c.config.GetEndpoint("filterapps"), body)
	apps, err := c.decodeApps(resp, err, "filter applications")
	if err != nil {
		return nil, err
	}

	wanted := make(map[uint64]struct{}, len(appIDs))
	for _, id := range appIDs {
		wanted[id] = struct{}{}
	}

	filtered := make([]types.ApplicationRecord, 0, len(apps))
	for _, app := range apps {
		if !strings.EqualFold(strings.TrimSpace(app.RewardAddress), rewardAddress.Hex()) {
			continue
		}
		if _, ok := wanted[uint64(app.OnchainAppID)]; !ok {
			continue
		}
		filtered = append(filtered, app)
	}

	if dropped := len(apps) - len(filtered); dropped > 0 {
		c.logger.Warn("Directory returned applications outside the filter",
			"reward_address", rewardAddress.Hex(),
			"dropped", dropped,
		)
	}
	return filtered, nil
}

// ListProgramApplications returns the applications registered under a reward program.
func (c *Client) ListProgramApplications(ctx context.Context, programAddress common.Address) ([]types.ApplicationRecord, error) {
	resp, err := c.httpClient.PostJSON(ctx, c.config.GetEndpoint("applications"), programAppsRequest{
		ProgramAddress: programAddress.Hex(),
	})
	return c.decodeApps(resp, err, "list program applications")
}

func (c *Client) decodeApps(resp *http.Response, reqErr error, op string) ([]types.ApplicationRecord, error) {
	if reqErr != nil {
		return nil, fmt.Errorf("%w: failed to %s: %v", pkgErrors.ErrDirectoryUnavailable, op, reqErr)
	}

	var out appsResponse
	if err := httppkg.DecodeJSON(resp, &out); err != nil {
		return nil, fmt.Errorf("%w: failed to %s: %v", pkgErrors.ErrDirectoryUnavailable, op, err)
	}
	if !out.Success {
		reason := out.Error
		if reason == "" {
			reason = out.Message
		}
		return nil, fmt.Errorf("%w: failed to %s: directory reported failure: %s", pkgErrors.ErrDirectoryUnavailable, op, reason)
	}
	if out.Apps == nil {
		out.Apps = []types.ApplicationRecord{}
	}
	for _, app := range out.Apps {
		if app.Params.Malformed {
			c.logger.Warn("Application has malformed params, treating it as monitoring no contracts",
				"app_id", uint64(app.OnchainAppID),
				"reward_address", app.RewardAddress,
			)
		}
	}
	return out.Apps, nil
}
