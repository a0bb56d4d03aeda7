package cryptography

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrivateKey = "1234567890abcdef1234567890abcdef1234567890abcdef1234567890abcdef"

func TestLoadPrivateKey(t *testing.T) {
	key, err := LoadPrivateKey("0x" + testPrivateKey)
	require.NoError(t, err)

	again, err := LoadPrivateKey(testPrivateKey)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), crypto.PubkeyToAddress(again.PublicKey))

	for _, bad := range []string{"", "invalid-hex", "123456"} {
		_, err := LoadPrivateKey(bad)
		assert.ErrorContains(t, err, "invalid private key", bad)
	}
}

func TestSignPrefixedHash_RecoversSigner(t *testing.T) {
	key, err := LoadPrivateKey(testPrivateKey)
	require.NoError(t, err)
	signer := crypto.PubkeyToAddress(key.PublicKey)
	hash := crypto.Keccak256Hash([]byte("fee share"))

	signature, err := SignPrefixedHash(hash, key)
	require.NoError(t, err)
	require.Len(t, signature, 65)
	assert.Contains(t, []byte{27, 28}, signature[64])

	ok, err := VerifyPrefixedSignature(hash, signature, signer)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPrefixedSignature(crypto.Keccak256Hash([]byte("other")), signature, signer)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSignDigest_HasNoPrefix(t *testing.T) {
	key, err := LoadPrivateKey(testPrivateKey)
	require.NoError(t, err)
	digest := crypto.Keccak256Hash([]byte("registration"))

	raw, err := SignDigest(digest, key)
	require.NoError(t, err)
	prefixed, err := SignPrefixedHash(digest, key)
	require.NoError(t, err)
	assert.NotEqual(t, raw, prefixed)

	recovered, err := RecoverDigestSigner(digest, raw)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), recovered)
}

func TestRecover_InvalidSignature(t *testing.T) {
	_, err := RecoverPrefixedSigner(common.Hash{}, []byte{1, 2, 3})
	assert.ErrorContains(t, err, "invalid signature length")

	_, err = SignDigest(common.Hash{}, nil)
	assert.Error(t, err)
}

func TestLoadOperatorKey_Keystore(t *testing.T) {
	key, err := LoadPrivateKey(testPrivateKey)
	require.NoError(t, err)

	dir := t.TempDir()
	ks := keystore.NewKeyStore(dir, keystore.LightScryptN, keystore.LightScryptP)
	account, err := ks.ImportECDSA(key, "secret")
	require.NoError(t, err)

	path := account.URL.Path
	_, err = os.Stat(path)
	require.NoError(t, err)

	loaded, err := LoadOperatorKey("", path, "secret")
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), crypto.PubkeyToAddress(loaded.PublicKey))

	_, err = LoadOperatorKey("", filepath.Join(dir, "missing.json"), "secret")
	assert.Error(t, err)
}
