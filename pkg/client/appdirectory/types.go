package appdirectory

import "github.com/trigg3rX/feeshare-avs/pkg/types"

// appsResponse is the envelope of every directory listing.
type appsResponse struct {
	Success bool                      `json:"success"`
	Message string                    `json:"message,omitempty"`
	Error   string                    `json:"error,omitempty"`
	Apps    []types.ApplicationRecord `json:"apps"`
}

type filterAppsRequest struct {
	RewardAddress string   `json:"reward_address"`
	OnchainIDs    []uint64 `json:"onchain_ids"`
}

type programAppsRequest struct {
	ProgramAddress string `json:"program_address"`
}
