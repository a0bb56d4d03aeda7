package cryptography

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	sdkecdsa "github.com/Layr-Labs/eigensdk-go/crypto/ecdsa"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const signatureLength = 65

// LoadPrivateKey parses a hex private key with or without the 0x prefix.
func LoadPrivateKey(hexKey string) (*ecdsa.PrivateKey, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	privateKey, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return privateKey, nil
}

// LoadKeystore decrypts an encrypted JSON keystore file.
func LoadKeystore(path, password string) (*ecdsa.PrivateKey, error) {
	privateKey, err := sdkecdsa.ReadKey(path, password)
	if err != nil {
		return nil, fmt.Errorf("failed to read keystore %s: %w", path, err)
	}
	return privateKey, nil
}

// LoadOperatorKey prefers the keystore when a path is given.
func LoadOperatorKey(hexKey, keystorePath, keystorePassword string) (*ecdsa.PrivateKey, error) {
	if keystorePath != "" {
		return LoadKeystore(keystorePath, keystorePassword)
	}
	return LoadPrivateKey(hexKey)
}

// SignPrefixedHash signs hash as an EIP-191 personal message. The returned
// signature is r || s || v with v in {27, 28}.
func SignPrefixedHash(hash common.Hash, privateKey *ecdsa.PrivateKey) ([]byte, error) {
	return SignDigest(common.BytesToHash(accounts.TextHash(hash.Bytes())), privateKey)
}

// SignDigest signs a 32 byte digest without any prefix.
func SignDigest(digest common.Hash, privateKey *ecdsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("private key is nil")
	}
	signature, err := crypto.Sign(digest.Bytes(), privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign digest: %w", err)
	}
	signature[64] += 27
	return signature, nil
}

// RecoverPrefixedSigner returns the address whose key produced signature over
// the EIP-191 form of hash.
func RecoverPrefixedSigner(hash common.Hash, signature []byte) (common.Address, error) {
	return RecoverDigestSigner(common.BytesToHash(accounts.TextHash(hash.Bytes())), signature)
}

func RecoverDigestSigner(digest common.Hash, signature []byte) (common.Address, error) {
	if len(signature) != signatureLength {
		return common.Address{}, fmt.Errorf("invalid signature length %d", len(signature))
	}

	sig := make([]byte, signatureLength)
	copy(sig, signature)
	if sig[64] >= 27 {
		sig[64] -= 27
	}

	pubKey, err := crypto.SigToPub(digest.Bytes(), sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pubKey), nil
}

func VerifyPrefixedSignature(hash common.Hash, signature []byte, signer common.Address) (bool, error) {
	recovered, err := RecoverPrefixedSigner(hash, signature)
	if err != nil {
		return false, err
	}
	return recovered == signer, nil
}
