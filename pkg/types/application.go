package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ApplicationRecord is a whitelisted application as served by the app directory.
type ApplicationRecord struct {
	ID              string    `json:"_id,omitempty"`
	OnchainAppID    AppID     `json:"onchain_app_id"`
	RewardAddress   string    `json:"reward_address"`
	ApplicationName string    `json:"application_name,omitempty"`
	Creator         string    `json:"creator,omitempty"`
	ProgramAddress  string    `json:"program_address,omitempty"`
	DaoID           string    `json:"dao_id,omitempty"`
	DaoAddress      string    `json:"dao_address,omitempty"`
	ProposalID      string    `json:"proposal_id,omitempty"`
	Params          AppParams `json:"params"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
}

// AppParams keeps the monitored contracts; other keys of the free-form
// params object are preserved in Extra. A params value or contract list of the
// wrong shape does not fail decoding: the unusable part is dropped and
// Malformed is set so the record contributes no contracts.
type AppParams struct {
	WhitelistedAppContracts []string               `json:"whitelistedAppContracts"`
	Extra                   map[string]interface{} `json:"-"`
	Malformed               bool                   `json:"-"`
}

func (p *AppParams) UnmarshalJSON(data []byte) error {
	p.WhitelistedAppContracts = nil
	p.Extra = make(map[string]interface{})
	p.Malformed = false

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		p.Malformed = true
		return nil
	}
	for key, value := range raw {
		if key == "whitelistedAppContracts" {
			p.WhitelistedAppContracts, p.Malformed = decodeContractList(value)
			continue
		}
		var v interface{}
		if err := json.Unmarshal(value, &v); err != nil {
			return err
		}
		p.Extra[key] = v
	}
	return nil
}

// decodeContractList returns malformed when the value is not an array of
// strings.
func decodeContractList(value json.RawMessage) (contracts []string, malformed bool) {
	if err := json.Unmarshal(value, &contracts); err != nil {
		return nil, true
	}
	return contracts, false
}

func (p AppParams) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(p.Extra)+1)
	for k, v := range p.Extra {
		out[k] = v
	}
	out["whitelistedAppContracts"] = p.WhitelistedAppContracts
	return json.Marshal(out)
}

// MonitoredContracts returns the valid, de-duplicated contract addresses in
// their original order.
func (a ApplicationRecord) MonitoredContracts() []common.Address {
	seen := make(map[common.Address]struct{}, len(a.Params.WhitelistedAppContracts))
	contracts := make([]common.Address, 0, len(a.Params.WhitelistedAppContracts))
	for _, c := range a.Params.WhitelistedAppContracts {
		c = strings.TrimSpace(c)
		if !common.IsHexAddress(c) {
			continue
		}
		addr := common.HexToAddress(c)
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		contracts = append(contracts, addr)
	}
	return contracts
}

// RewardContract parses RewardAddress; ok is false for malformed values.
func (a ApplicationRecord) RewardContract() (common.Address, bool) {
	if !common.IsHexAddress(strings.TrimSpace(a.RewardAddress)) {
		return common.Address{}, false
	}
	return common.HexToAddress(strings.TrimSpace(a.RewardAddress)), true
}

// AppID is an on-chain application id. The directory stores it as a number
// but older records carry it as a string.
type AppID uint64

func (id *AppID) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		*id = 0
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f < 0 || f != float64(uint64(f)) {
			return fmt.Errorf("invalid onchain_app_id %q", raw)
		}
		v = uint64(f)
	}
	*id = AppID(v)
	return nil
}
