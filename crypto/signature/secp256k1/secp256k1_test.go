package secp256k1

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/require"

	"github.com/agoralabs-sh/vip030026-go/crypto/signature"
)

// A helper method that creates a new test secp256k1 signer.
func newTestSigner(t *testing.T) *Signer {
	require := require.New(t)

	// Use the same test private key as in the btcec examples.
	hexPrivateKey := "22a47fa09a223f2aa079edf85a7c2d4f87" + "20ee63e502ee2869afab7de234b80c"

	rawPrivateKey, err := hex.DecodeString(hexPrivateKey)
	require.NoError(err, "DecodeString")

	signer, err := NewSigner(rawPrivateKey)
	require.NoError(err, "NewSigner")
	require.NotNil(signer.Public(), "signer public key should not be nil")

	return signer
}

func TestSecp256k1PublicKeyDerivation(t *testing.T) {
	require := require.New(t)

	for _, v := range []struct {
		privateKey string
		publicKey  string
	}{
		{"22a47fa09a223f2aa079edf85a7c2d4f8720ee63e502ee2869afab7de234b80c", "AqZzY4y5WHy2jqCNvvaFxvLSp1Gos8byp+mkmZ5uS/r1"},
		{"1f1455c61485737accdd610f5ea9ac1e4272c29b4c6c3189a349acc5bb598e7d", "AyZKkxNFeyqLI5HGTYqEmCcYxKGo/kueOzSHzdnrSePO"},
	} {
		raw, err := hex.DecodeString(v.privateKey)
		require.NoError(err, "DecodeString")
		s, err := NewSigner(raw)
		require.NoError(err, "NewSigner")
		require.Equal(v.publicKey, s.Public().String())
		require.Equal(raw, s.PrivateKey())
	}
}

func TestSecp256k1SignAndVerify(t *testing.T) {
	require := require.New(t)
	s := newTestSigner(t)

	msg1 := []byte("msg1")
	sig1, err := s.Sign(msg1)
	require.NoError(err, "Sign")
	require.Len(sig1, signature.SignatureSize)

	msg2 := []byte("msg2")
	sig2, err := s.Sign(msg2)
	require.NoError(err, "Sign")
	require.Len(sig2, signature.SignatureSize)

	require.True(s.Public().Verify(msg1, sig1), "verification should succeed")
	require.True(s.Public().Verify(msg2, sig2), "verification should succeed")

	require.False(s.Public().Verify(msg1, sig2))
	require.False(s.Public().Verify(msg2, sig1))
	require.False(s.Public().Verify([]byte("foo"), sig2))
	require.False(s.Public().Verify(msg1, []byte("asdfghjkl")))
	require.False(s.Public().Verify(msg1, []byte("")))
	require.False(s.Public().Verify(msg1, make([]byte, signature.SignatureSize)))

	// RFC 6979 nonces make signing deterministic.
	sig1Again, err := s.Sign(msg1)
	require.NoError(err, "Sign")
	require.Equal(sig1, sig1Again)

	other, err := GenerateSigner(rand.Reader)
	require.NoError(err, "GenerateSigner")
	require.False(other.Public().Verify(msg1, sig1))
}

func TestSecp256k1SignVector(t *testing.T) {
	require := require.New(t)

	signer, err := NewSigner(append(make([]byte, PrivateKeySize-1), 0x01))
	require.NoError(err, "NewSigner")

	msg := []byte("Satoshi Nakamoto")
	sig, err := signer.Sign(msg)
	require.NoError(err, "Sign")
	require.Equal(
		"934b1ea10a4b3c1757e2b0c017d0b6143ce3c9a7e6a4a49860d7a6ab210ee3d8"+
			"2442ce9d2b916064108014783e923ec36b49743e2ffa1c4496f01a512aafd9e5",
		hex.EncodeToString(sig),
	)

	// The generator point, in uncompressed form.
	rawUncompressed, err := hex.DecodeString("04" +
		"79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")
	require.NoError(err, "DecodeString")
	pk, err := PublicKeyFromBytes(rawUncompressed)
	require.NoError(err, "PublicKeyFromBytes")
	require.True(pk.Equal(signer.Public()))
	require.True(pk.Verify(msg, sig), "verification against the uncompressed key should succeed")
	require.False(pk.Verify([]byte("Satoshi Nakamoto!"), sig))
}

func TestSecp256k1RejectsHighS(t *testing.T) {
	require := require.New(t)
	s := newTestSigner(t)

	msg := []byte("malleable")
	sig, err := s.Sign(msg)
	require.NoError(err, "Sign")

	var sScalar btcec.ModNScalar
	require.False(sScalar.SetByteSlice(sig[32:]))
	require.False(sScalar.IsOverHalfOrder(), "signer must produce low-S signatures")

	sScalar.Negate()
	highS := sScalar.Bytes()
	malleated := append(append([]byte{}, sig[:32]...), highS[:]...)
	require.False(s.Public().Verify(msg, malleated))
}

func TestSecp256k1PubKeySerDes(t *testing.T) {
	require := require.New(t)
	s := newTestSigner(t)

	pk, ok := s.Public().(PublicKey)
	require.True(ok, "signer public key should be a secp256k1 public key")
	require.EqualValues(pk.String(), s.String())

	mbin, err := pk.MarshalBinary()
	require.NoError(err, "MarshalBinary")
	require.Len(mbin, PublicKeySize)

	upk, err := PublicKeyFromBytes(mbin)
	require.NoError(err, "PublicKeyFromBytes")
	require.True(pk.Equal(upk))
	require.True(upk.Equal(&pk))

	mtxt, err := pk.MarshalText()
	require.NoError(err, "MarshalText")
	var utpk PublicKey
	require.NoError(utpk.UnmarshalText(mtxt), "UnmarshalText")
	require.True(pk.Equal(utpk))

	_, err = pk.MarshalJSON()
	require.NoError(err, "MarshalJSON")
	_, err = pk.MarshalCBOR()
	require.NoError(err, "MarshalCBOR")

	var x PublicKey
	require.ErrorIs(x.UnmarshalText([]byte("asdf")), signature.ErrMalformedPublicKey)
	require.ErrorIs(x.UnmarshalBinary([]byte("ghij")), signature.ErrMalformedPublicKey)
}

func TestSecp256k1MalformedPrivateKey(t *testing.T) {
	require := require.New(t)

	// Invalid lengths and scalars outside [1, n).
	for _, raw := range [][]byte{
		nil,
		make([]byte, PrivateKeySize-1),
		make([]byte, PrivateKeySize),
		append(make([]byte, PrivateKeySize), 0x01),
		bytesOf(0xff, PrivateKeySize),
	} {
		_, err := NewSigner(raw)
		require.ErrorIs(err, signature.ErrMalformedPrivateKey)
	}
}

func TestSecp256k1Reset(t *testing.T) {
	require := require.New(t)
	s := newTestSigner(t)

	msg := []byte("msg1")
	sig, err := s.Sign(msg)
	require.NoError(err, "Sign")
	require.True(s.Public().Verify(msg, sig), "verification should succeed")

	s.Reset()

	require.Equal(make([]byte, PrivateKeySize), s.PrivateKey())
}

func bytesOf(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}
