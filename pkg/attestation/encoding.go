package attestation

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/trigg3rX/feeshare-avs/pkg/types"
)

var (
	responseArguments    abi.Arguments
	attestationArguments abi.Arguments
)

func init() {
	responseType, err := abi.NewType("tuple", "", []abi.ArgumentMarshaling{
		{Name: "referenceTaskIndex", Type: "uint32"},
		{Name: "appIds", Type: "uint256[]"},
		{Name: "additionalRewards", Type: "uint256[]"},
	})
	if err != nil {
		panic(err)
	}
	responseArguments = abi.Arguments{{Type: responseType}}

	addressArray, err := abi.NewType("address[]", "", nil)
	if err != nil {
		panic(err)
	}
	bytesArray, err := abi.NewType("bytes[]", "", nil)
	if err != nil {
		panic(err)
	}
	uint32Type, err := abi.NewType("uint32", "", nil)
	if err != nil {
		panic(err)
	}
	attestationArguments = abi.Arguments{{Type: addressArray}, {Type: bytesArray}, {Type: uint32Type}}
}

// abiTaskResponse mirrors the on-chain TaskResponse struct.
type abiTaskResponse struct {
	ReferenceTaskIndex uint32
	AppIds             []*big.Int
	AdditionalRewards  []*big.Int
}

// EncodeResponse returns abi.encode(TaskResponse).
func EncodeResponse(response types.TaskResponse) ([]byte, error) {
	if err := response.Validate(); err != nil {
		return nil, fmt.Errorf("invalid task response: %w", err)
	}

	appIDs := make([]*big.Int, len(response.AppIDs))
	for i, id := range response.AppIDs {
		appIDs[i] = new(big.Int).SetUint64(id)
	}
	rewards := make([]*big.Int, len(response.AdditionalRewards))
	for i, reward := range response.AdditionalRewards {
		rewards[i] = new(big.Int).Set(reward)
	}

	return responseArguments.Pack(abiTaskResponse{
		ReferenceTaskIndex: response.ReferenceTaskIndex,
		AppIds:             appIDs,
		AdditionalRewards:  rewards,
	})
}

// DecodeResponse is the inverse of EncodeResponse.
func DecodeResponse(data []byte) (types.TaskResponse, error) {
	values, err := responseArguments.Unpack(data)
	if err != nil {
		return types.TaskResponse{}, fmt.Errorf("failed to unpack task response: %w", err)
	}
	if len(values) != 1 {
		return types.TaskResponse{}, fmt.Errorf("expected 1 value, got %d", len(values))
	}
	decoded, ok := abi.ConvertType(values[0], new(abiTaskResponse)).(*abiTaskResponse)
	if !ok {
		return types.TaskResponse{}, fmt.Errorf("unexpected task response layout")
	}

	response := types.TaskResponse{
		ReferenceTaskIndex: decoded.ReferenceTaskIndex,
		AppIDs:             make([]uint64, len(decoded.AppIds)),
		AdditionalRewards:  decoded.AdditionalRewards,
	}
	for i, id := range decoded.AppIds {
		if !id.IsUint64() {
			return types.TaskResponse{}, fmt.Errorf("app id %s overflows uint64", id)
		}
		response.AppIDs[i] = id.Uint64()
	}
	if response.AdditionalRewards == nil {
		response.AdditionalRewards = []*big.Int{}
	}
	return response, response.Validate()
}

// HashResponse is keccak256 of the encoded response.
func HashResponse(response types.TaskResponse) (common.Hash, error) {
	encoded, err := EncodeResponse(response)
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(encoded), nil
}

// EncodeAttestation returns abi.encode(address[], bytes[], uint32), the
// signature argument of respondToTask.
func EncodeAttestation(att *types.SignedAttestation) ([]byte, error) {
	if att == nil {
		return nil, fmt.Errorf("attestation is nil")
	}
	if len(att.OperatorAddresses) != len(att.Signatures) {
		return nil, fmt.Errorf("%d operators but %d signatures", len(att.OperatorAddresses), len(att.Signatures))
	}
	operators := att.OperatorAddresses
	if operators == nil {
		operators = []common.Address{}
	}
	signatures := att.Signatures
	if signatures == nil {
		signatures = [][]byte{}
	}
	return attestationArguments.Pack(operators, signatures, att.TaskCreatedBlock)
}

func DecodeAttestation(data []byte) (*types.SignedAttestation, error) {
	values, err := attestationArguments.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack attestation: %w", err)
	}
	operators := *abi.ConvertType(values[0], new([]common.Address)).(*[]common.Address)
	signatures := *abi.ConvertType(values[1], new([][]byte)).(*[][]byte)
	block := *abi.ConvertType(values[2], new(uint32)).(*uint32)

	return &types.SignedAttestation{
		OperatorAddresses: operators,
		Signatures:        signatures,
		TaskCreatedBlock:  block,
	}, nil
}

// Combine concatenates attestations in the given order. All of them must
// reference the same task creation block.
func Combine(attestations ...*types.SignedAttestation) (*types.SignedAttestation, error) {
	if len(attestations) == 0 {
		return nil, fmt.Errorf("no attestations to combine")
	}

	combined := &types.SignedAttestation{
		OperatorAddresses: []common.Address{},
		Signatures:        [][]byte{},
	}
	for i, att := range attestations {
		if att == nil {
			return nil, fmt.Errorf("attestation %d is nil", i)
		}
		if len(att.OperatorAddresses) != len(att.Signatures) {
			return nil, fmt.Errorf("attestation %d has %d operators but %d signatures", i, len(att.OperatorAddresses), len(att.Signatures))
		}
		if i == 0 {
			combined.TaskCreatedBlock = att.TaskCreatedBlock
		} else if att.TaskCreatedBlock != combined.TaskCreatedBlock {
			return nil, fmt.Errorf("attestation %d references block %d, expected %d", i, att.TaskCreatedBlock, combined.TaskCreatedBlock)
		}
		combined.OperatorAddresses = append(combined.OperatorAddresses, att.OperatorAddresses...)
		combined.Signatures = append(combined.Signatures, att.Signatures...)
	}
	return combined, nil
}
