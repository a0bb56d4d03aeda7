package appdirectory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "github.com/trigg3rX/feeshare-avs/pkg/errors"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
	"github.com/trigg3rX/feeshare-avs/pkg/types"
)

var (
	rewardA = common.HexToAddress("0x000000000000000000000000000000000000a001")
	rewardB = common.HexToAddress("0x000000000000000000000000000000000000b001")
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewAppDirectoryClient(&Config{BaseURL: server.URL, Timeout: time.Second}, logging.NewNoOpLogger())
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client
}

func TestListAllApplications(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/applications", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"apps":[
			{"onchain_app_id":1,"reward_address":"` + rewardA.Hex() + `","params":{"whitelistedAppContracts":["0xaa"]}},
			{"onchain_app_id":"2","reward_address":"` + rewardB.Hex() + `","params":{}}
		]}`))
	})

	apps, err := client.ListAllApplications(context.Background())
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, types.AppID(1), apps[0].OnchainAppID)
	assert.Equal(t, types.AppID(2), apps[1].OnchainAppID)
}

func TestListAllApplications_MalformedParamsDoNotFailTheList(t *testing.T) {
	logger := &logging.MockLogger{}
	logger.SetupDefaultExpectations()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"apps":[
			{"onchain_app_id":1,"reward_address":"` + rewardA.Hex() + `","params":{"whitelistedAppContracts":["0xaa"]}},
			{"onchain_app_id":2,"reward_address":"` + rewardA.Hex() + `","params":{"whitelistedAppContracts":"0xbb"}},
			{"onchain_app_id":3,"reward_address":"` + rewardB.Hex() + `","params":"none"}
		]}`))
	}))
	defer server.Close()
	client, err := NewAppDirectoryClient(&Config{BaseURL: server.URL, Timeout: time.Second}, logger)
	require.NoError(t, err)
	defer client.Close()

	apps, err := client.ListAllApplications(context.Background())
	require.NoError(t, err)
	require.Len(t, apps, 3)

	assert.Equal(t, []common.Address{common.HexToAddress("0xaa")}, apps[0].MonitoredContracts())
	assert.Empty(t, apps[1].MonitoredContracts())
	assert.Empty(t, apps[2].MonitoredContracts())
	logger.AssertNumberOfCalls(t, "Warn", 2)
}

func TestListAllApplications_EmptyDirectory(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"apps":null}`))
	})

	apps, err := client.ListAllApplications(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, apps)
	assert.Empty(t, apps)
}

func TestFilterApplications_RechecksServerAnswer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/filterapps", r.URL.Path)

		var body filterAppsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, rewardA.Hex(), body.RewardAddress)
		assert.Equal(t, []uint64{1, 2}, body.OnchainIDs)

		_, _ = w.Write([]byte(`{"success":true,"apps":[
			{"onchain_app_id":1,"reward_address":"` + rewardA.Hex() + `"},
			{"onchain_app_id":2,"reward_address":"` + rewardB.Hex() + `"},
			{"onchain_app_id":9,"reward_address":"` + rewardA.Hex() + `"}
		]}`))
	})

	apps, err := client.FilterApplications(context.Background(), rewardA, []uint64{1, 2})
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, types.AppID(1), apps[0].OnchainAppID)
}

func TestListProgramApplications(t *testing.T) {
	program := common.HexToAddress("0x00000000000000000000000000000000000000cc")
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body programAppsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, program.Hex(), body.ProgramAddress)
		_, _ = w.Write([]byte(`{"success":true,"apps":[{"onchain_app_id":4,"program_address":"` + program.Hex() + `"}]}`))
	})

	apps, err := client.ListProgramApplications(context.Background(), program)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, types.AppID(4), apps[0].OnchainAppID)
}

func TestDirectoryFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{"success false", http.StatusOK, `{"success":false,"error":"db down"}`},
		{"server error", http.StatusBadGateway, `bad gateway`},
		{"not json", http.StatusOK, `<html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.payload))
			})

			_, err := client.ListAllApplications(context.Background())
			assert.ErrorIs(t, err, pkgErrors.ErrDirectoryUnavailable)

			_, err = client.FilterApplications(context.Background(), rewardA, []uint64{1})
			assert.ErrorIs(t, err, pkgErrors.ErrDirectoryUnavailable)

			assert.Equal(t, 2, calls, "no request is retried")
		})
	}
}

func TestDirectoryUnreachable(t *testing.T) {
	client, err := NewAppDirectoryClient(&Config{BaseURL: "http://127.0.0.1:1", Timeout: time.Second}, logging.NewNoOpLogger())
	require.NoError(t, err)

	_, err = client.ListAllApplications(context.Background())
	assert.ErrorIs(t, err, pkgErrors.ErrDirectoryUnavailable)
}
