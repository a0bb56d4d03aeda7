package types

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationRecord_UnmarshalDirectoryPayload(t *testing.T) {
	payload := `{
		"_id": "66f1",
		"creator": "0x1111111111111111111111111111111111111111",
		"onchain_app_id": 3,
		"reward_address": "0x2222222222222222222222222222222222222222",
		"application_name": "swap",
		"program_address": "0x3333333333333333333333333333333333333333",
		"params": {
			"whitelistedAppContracts": [
				"0x00000000000000000000000000000000000000aa",
				"0x00000000000000000000000000000000000000AA",
				"not-an-address",
				"0x00000000000000000000000000000000000000bb"
			],
			"description": "dex"
		},
		"created_at": "2024-10-01T12:00:00.000Z"
	}`

	var app ApplicationRecord
	require.NoError(t, json.Unmarshal([]byte(payload), &app))

	assert.Equal(t, AppID(3), app.OnchainAppID)
	assert.Equal(t, "swap", app.ApplicationName)
	assert.Equal(t, "dex", app.Params.Extra["description"])
	assert.Equal(t, []common.Address{
		common.HexToAddress("0xaa"),
		common.HexToAddress("0xbb"),
	}, app.MonitoredContracts())

	reward, ok := app.RewardContract()
	require.True(t, ok)
	assert.Equal(t, common.HexToAddress("0x2222222222222222222222222222222222222222"), reward)
}

func TestApplicationRecord_MissingParams(t *testing.T) {
	var app ApplicationRecord
	require.NoError(t, json.Unmarshal([]byte(`{"onchain_app_id": 1, "reward_address": "bad"}`), &app))

	assert.Empty(t, app.MonitoredContracts())
	_, ok := app.RewardContract()
	assert.False(t, ok)
}

func TestAppParams_MalformedContractList(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"string instead of list", `{"whitelistedAppContracts": "0xbb", "tier": "gold"}`},
		{"mixed list", `{"whitelistedAppContracts": ["0xbb", 7]}`},
		{"params not an object", `"0xbb"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var params AppParams
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &params))
			assert.True(t, params.Malformed)
			assert.Nil(t, params.WhitelistedAppContracts)
		})
	}

	var params AppParams
	require.NoError(t, json.Unmarshal([]byte(`{"whitelistedAppContracts": "0xbb", "tier": "gold"}`), &params))
	assert.Equal(t, "gold", params.Extra["tier"])
}

func TestAppParams_MarshalKeepsExtraKeys(t *testing.T) {
	params := AppParams{
		WhitelistedAppContracts: []string{"0xaa"},
		Extra:                   map[string]interface{}{"tier": "gold"},
	}

	data, err := json.Marshal(params)
	require.NoError(t, err)
	assert.JSONEq(t, `{"whitelistedAppContracts":["0xaa"],"tier":"gold"}`, string(data))
}

func TestAppID_Unmarshal(t *testing.T) {
	tests := []struct {
		input    string
		expected AppID
		wantErr  bool
	}{
		{`7`, 7, false},
		{`"12"`, 12, false},
		{`4.0`, 4, false},
		{`null`, 0, false},
		{`-1`, 0, true},
		{`1.5`, 0, true},
		{`"abc"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var id AppID
			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestFeeSamples_SumRange_IsInclusive(t *testing.T) {
	samples := FeeSamples{
		99:  {BlockNumber: 99, GasFee: big.NewInt(1000)},
		100: {BlockNumber: 100, GasFee: big.NewInt(10)},
		102: {BlockNumber: 102, GasFee: big.NewInt(5)},
		103: {BlockNumber: 103, GasFee: big.NewInt(1000)},
	}

	assert.Equal(t, big.NewInt(15), samples.SumRange(100, 102))
	assert.Equal(t, big.NewInt(10), samples.SumRange(100, 100))
	assert.Equal(t, big.NewInt(5), samples.SumRange(102, 102))
	assert.Equal(t, big.NewInt(0), samples.SumRange(101, 101))
	assert.Equal(t, big.NewInt(0), FeeSamples{}.SumRange(0, 1000))
}

func TestTaskResponse_Validate(t *testing.T) {
	ok := TaskResponse{AppIDs: []uint64{1, 2}, AdditionalRewards: []*big.Int{big.NewInt(15), big.NewInt(0)}}
	assert.NoError(t, ok.Validate())
	assert.Equal(t, big.NewInt(15), ok.TotalRewards())

	mismatch := TaskResponse{AppIDs: []uint64{1, 2}, AdditionalRewards: []*big.Int{big.NewInt(1)}}
	assert.Error(t, mismatch.Validate())

	negative := TaskResponse{AppIDs: []uint64{1}, AdditionalRewards: []*big.Int{big.NewInt(-1)}}
	assert.Error(t, negative.Validate())

	nilReward := TaskResponse{AppIDs: []uint64{1}, AdditionalRewards: []*big.Int{nil}}
	assert.Error(t, nilReward.Validate())
}

func TestTask_Validate(t *testing.T) {
	task := Task{RewardContractAddress: common.HexToAddress("0x01"), FromBlockNum: 100, ToBlockNum: 102}
	assert.NoError(t, task.Validate())

	task.FromBlockNum = 103
	assert.Error(t, task.Validate())

	assert.Error(t, Task{FromBlockNum: 1, ToBlockNum: 2}.Validate())
}

func TestBigInt_JSON(t *testing.T) {
	var values []BigInt
	require.NoError(t, json.Unmarshal([]byte(`["21000", 42, "0x10", ""]`), &values))

	require.Len(t, values, 4)
	assert.Equal(t, big.NewInt(21000), values[0].Int)
	assert.Equal(t, big.NewInt(42), values[1].Int)
	assert.Equal(t, big.NewInt(16), values[2].Int)
	assert.Equal(t, big.NewInt(0), values[3].Int)

	var bad BigInt
	assert.Error(t, json.Unmarshal([]byte(`"12a"`), &bad))

	data, err := json.Marshal(NewBigInt(big.NewInt(5)))
	require.NoError(t, err)
	assert.Equal(t, `"5"`, string(data))

	var unset *BigInt
	assert.Equal(t, big.NewInt(0), unset.Value())
}
