package attestation

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/trigg3rX/feeshare-avs/pkg/cryptography"
	pkgErrors "github.com/trigg3rX/feeshare-avs/pkg/errors"
	"github.com/trigg3rX/feeshare-avs/pkg/types"
)

// Signer produces single-operator attestations over task responses.
type Signer struct {
	privateKey *ecdsa.PrivateKey
	address    common.Address
}

func NewSigner(privateKey *ecdsa.PrivateKey) (*Signer, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("%w: private key is nil", pkgErrors.ErrSigning)
	}
	return &Signer{
		privateKey: privateKey,
		address:    crypto.PubkeyToAddress(privateKey.PublicKey),
	}, nil
}

func (s *Signer) Address() common.Address {
	return s.address
}

// Sign hashes the encoded response and signs it as a personal message.
func (s *Signer) Sign(response types.TaskResponse, taskCreatedBlock uint32) (*types.SignedAttestation, error) {
	hash, err := HashResponse(response)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pkgErrors.ErrSigning, err)
	}
	signature, err := cryptography.SignPrefixedHash(hash, s.privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pkgErrors.ErrSigning, err)
	}
	return &types.SignedAttestation{
		OperatorAddresses: []common.Address{s.address},
		Signatures:        [][]byte{signature},
		TaskCreatedBlock:  taskCreatedBlock,
	}, nil
}

// Verify reports whether signature over response was produced by signer.
func Verify(response types.TaskResponse, signature []byte, signer common.Address) (bool, error) {
	hash, err := HashResponse(response)
	if err != nil {
		return false, err
	}
	return cryptography.VerifyPrefixedSignature(hash, signature, signer)
}
