package attestation

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trigg3rX/feeshare-avs/pkg/cryptography"
	pkgErrors "github.com/trigg3rX/feeshare-avs/pkg/errors"
	"github.com/trigg3rX/feeshare-avs/pkg/types"
)

const testPrivateKey = "1234567890abcdef1234567890abcdef1234567890abcdef1234567890abcdef"

func newTestSigner(t *testing.T) *Signer {
	t.Helper()
	key, err := cryptography.LoadPrivateKey(testPrivateKey)
	require.NoError(t, err)
	signer, err := NewSigner(key)
	require.NoError(t, err)
	return signer
}

func sampleResponse() types.TaskResponse {
	return types.TaskResponse{
		ReferenceTaskIndex: 7,
		AppIDs:             []uint64{1, 2},
		AdditionalRewards:  []*big.Int{big.NewInt(15), big.NewInt(0)},
	}
}

func TestEncodeResponse_Layout(t *testing.T) {
	encoded, err := EncodeResponse(types.TaskResponse{
		ReferenceTaskIndex: 1,
		AppIDs:             []uint64{5},
		AdditionalRewards:  []*big.Int{big.NewInt(9)},
	})
	require.NoError(t, err)

	// offset, index, two array offsets, then each array as length + items
	expected := "0x" +
		"0000000000000000000000000000000000000000000000000000000000000020" +
		"0000000000000000000000000000000000000000000000000000000000000001" +
		"0000000000000000000000000000000000000000000000000000000000000060" +
		"00000000000000000000000000000000000000000000000000000000000000a0" +
		"0000000000000000000000000000000000000000000000000000000000000001" +
		"0000000000000000000000000000000000000000000000000000000000000005" +
		"0000000000000000000000000000000000000000000000000000000000000001" +
		"0000000000000000000000000000000000000000000000000000000000000009"
	assert.Equal(t, expected, hexutil.Encode(encoded))
}

func TestEncodeDecodeResponse_RoundTrip(t *testing.T) {
	responses := []types.TaskResponse{
		sampleResponse(),
		{ReferenceTaskIndex: 0, AppIDs: []uint64{}, AdditionalRewards: []*big.Int{}},
		{
			ReferenceTaskIndex: 4294967295,
			AppIDs:             []uint64{18446744073709551615},
			AdditionalRewards:  []*big.Int{new(big.Int).Lsh(big.NewInt(1), 200)},
		},
	}

	for _, response := range responses {
		encoded, err := EncodeResponse(response)
		require.NoError(t, err)

		decoded, err := DecodeResponse(encoded)
		require.NoError(t, err)
		assert.Equal(t, response.ReferenceTaskIndex, decoded.ReferenceTaskIndex)
		assert.Equal(t, response.AppIDs, decoded.AppIDs)
		require.Len(t, decoded.AdditionalRewards, len(response.AdditionalRewards))
		for i := range response.AdditionalRewards {
			assert.Equal(t, 0, response.AdditionalRewards[i].Cmp(decoded.AdditionalRewards[i]))
		}
	}
}

func TestEncodeResponse_RejectsMismatchedLengths(t *testing.T) {
	_, err := EncodeResponse(types.TaskResponse{AppIDs: []uint64{1}, AdditionalRewards: []*big.Int{}})
	assert.Error(t, err)
}

func TestDecodeResponse_Garbage(t *testing.T) {
	_, err := DecodeResponse([]byte{1, 2, 3})
	assert.Error(t, err)
}

func TestSign_SignatureRecoversOperator(t *testing.T) {
	signer := newTestSigner(t)
	response := sampleResponse()

	att, err := signer.Sign(response, 1234)
	require.NoError(t, err)
	require.Len(t, att.Signatures, 1)
	assert.Equal(t, []common.Address{signer.Address()}, att.OperatorAddresses)
	assert.Equal(t, uint32(1234), att.TaskCreatedBlock)
	assert.Contains(t, []byte{27, 28}, att.Signatures[0][64])

	ok, err := Verify(response, att.Signatures[0], signer.Address())
	require.NoError(t, err)
	assert.True(t, ok)

	tampered := sampleResponse()
	tampered.AdditionalRewards[0] = big.NewInt(16)
	ok, err = Verify(tampered, att.Signatures[0], signer.Address())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSign_InvalidResponseIsSigningError(t *testing.T) {
	signer := newTestSigner(t)

	_, err := signer.Sign(types.TaskResponse{AppIDs: []uint64{1}}, 1)
	assert.ErrorIs(t, err, pkgErrors.ErrSigning)
	assert.False(t, pkgErrors.IsRetryable(err))

	_, err = NewSigner(nil)
	assert.ErrorIs(t, err, pkgErrors.ErrSigning)
}

func TestEncodeAttestation_RoundTrip(t *testing.T) {
	signer := newTestSigner(t)
	att, err := signer.Sign(sampleResponse(), 99)
	require.NoError(t, err)

	encoded, err := EncodeAttestation(att)
	require.NoError(t, err)

	decoded, err := DecodeAttestation(encoded)
	require.NoError(t, err)
	assert.Equal(t, att, decoded)
}

func TestCombine(t *testing.T) {
	first := &types.SignedAttestation{
		OperatorAddresses: []common.Address{common.HexToAddress("0x1")},
		Signatures:        [][]byte{{1}},
		TaskCreatedBlock:  10,
	}
	second := &types.SignedAttestation{
		OperatorAddresses: []common.Address{common.HexToAddress("0x2")},
		Signatures:        [][]byte{{2}},
		TaskCreatedBlock:  10,
	}

	combined, err := Combine(first, second)
	require.NoError(t, err)
	assert.Equal(t, []common.Address{common.HexToAddress("0x1"), common.HexToAddress("0x2")}, combined.OperatorAddresses)
	assert.Equal(t, [][]byte{{1}, {2}}, combined.Signatures)
	assert.Equal(t, uint32(10), combined.TaskCreatedBlock)

	reversed, err := Combine(second, first)
	require.NoError(t, err)
	assert.NotEqual(t, combined.OperatorAddresses, reversed.OperatorAddresses)

	second.TaskCreatedBlock = 11
	_, err = Combine(first, second)
	assert.Error(t, err)

	_, err = Combine()
	assert.Error(t, err)
}

func TestHashResponse_MatchesKeccakOfEncoding(t *testing.T) {
	encoded, err := EncodeResponse(sampleResponse())
	require.NoError(t, err)

	hash, err := HashResponse(sampleResponse())
	require.NoError(t, err)
	assert.Equal(t, crypto.Keccak256Hash(encoded), hash)
}
