package credential

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agoralabs-sh/vip030026-go/crypto/signature"
)

func TestPrivateKeyCredentialSign(t *testing.T) {
	challenge := make([]byte, 32)
	_, err := rand.Read(challenge)
	require.NoError(t, err)

	for _, a := range SupportedAlgorithms() {
		t.Run(a.String(), func(t *testing.T) {
			require := require.New(t)

			c, err := Generate(WithAlgorithm(a))
			require.NoError(err, "Generate")

			sig, err := c.Sign(challenge)
			require.NoError(err, "Sign")
			require.Len(sig, signature.SignatureSize)

			ok, err := c.Verify(challenge, sig)
			require.NoError(err, "Verify")
			require.True(ok, "verification should succeed")

			ok, err = c.Verify([]byte("other"), sig)
			require.NoError(err, "Verify")
			require.False(ok, "verification should fail")
		})
	}
}

func TestPrivateKeyCredentialSignVectors(t *testing.T) {
	for _, v := range []struct {
		algorithm  AlgorithmID
		privateKey string
		message    string
		signature  string
	}{
		{
			AlgorithmEd25519,
			"9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60",
			"",
			"e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b",
		},
		{
			AlgorithmES256K,
			"0000000000000000000000000000000000000000000000000000000000000001",
			"Satoshi Nakamoto",
			"934b1ea10a4b3c1757e2b0c017d0b6143ce3c9a7e6a4a49860d7a6ab210ee3d82442ce9d2b916064108014783e923ec36b49743e2ffa1c4496f01a512aafd9e5",
		},
	} {
		t.Run(v.algorithm.String(), func(t *testing.T) {
			require := require.New(t)

			rawKey, err := hex.DecodeString(v.privateKey)
			require.NoError(err, "DecodeString")
			c, err := PrivateKeyCredentialFromRecord(PrivateRecord{
				PublicRecord: PublicRecord{
					Algorithm: v.algorithm,
					ID:        "11111111-1111-4111-8111-111111111111",
				},
				PrivateKey: base64.StdEncoding.EncodeToString(rawKey),
			})
			require.NoError(err, "PrivateKeyCredentialFromRecord")

			sig, err := c.Sign([]byte(v.message))
			require.NoError(err, "Sign")
			require.Equal(v.signature, hex.EncodeToString(sig))

			pc, err := c.PublicKeyCredential()
			require.NoError(err, "PublicKeyCredential")
			ok, err := pc.Verify([]byte(v.message), sig)
			require.NoError(err, "Verify")
			require.True(ok, "verification should succeed")
		})
	}
}

func TestPrivateKeyCredentialRecordRoundTrip(t *testing.T) {
	for _, a := range SupportedAlgorithms() {
		t.Run(a.String(), func(t *testing.T) {
			require := require.New(t)

			c, err := Generate(WithAlgorithm(a))
			require.NoError(err, "Generate")

			r, err := c.Record()
			require.NoError(err, "Record")
			require.Equal(a, r.Algorithm)
			require.Equal(c.ID(), r.ID)

			imported, err := PrivateKeyCredentialFromRecord(r)
			require.NoError(err, "PrivateKeyCredentialFromRecord")
			require.Equal(c.Bytes(), imported.Bytes())

			// The public record strips the private key and imports as a public credential.
			pc, err := PublicKeyCredentialFromRecord(r.Public())
			require.NoError(err, "PublicKeyCredentialFromRecord")
			require.Equal(c.ID(), pc.ID())
			algorithm, err := pc.Algorithm()
			require.NoError(err, "Algorithm")
			require.Equal(a, algorithm)

			expected, err := c.PublicKey()
			require.NoError(err, "PublicKey")
			actual, err := pc.PublicKey()
			require.NoError(err, "PublicKey")
			require.Equal(expected, actual)
			require.Len(actual, a.PublicKeySize())
			require.Len(c.PrivateKey(), a.PrivateKeySize())
		})
	}
}

func TestPrivateKeyCredentialScenario(t *testing.T) {
	require := require.New(t)

	c, err := Generate(
		WithAlgorithm(AlgorithmEd25519),
		WithID("11111111-1111-4111-8111-111111111111"),
	)
	require.NoError(err, "Generate")

	r, err := c.Record()
	require.NoError(err, "Record")
	require.Equal("11111111-1111-4111-8111-111111111111", r.ID)
	require.Equal(AlgorithmEd25519, r.Algorithm)

	privateKey, err := base64.StdEncoding.DecodeString(r.PrivateKey)
	require.NoError(err, "DecodeString")
	require.Len(privateKey, 32)
	publicKey, err := base64.StdEncoding.DecodeString(r.PublicKey)
	require.NoError(err, "DecodeString")
	require.Len(publicKey, 32)
	require.Len(c.Bytes(), MinimumLength+32)
}

func TestPrivateKeyCredentialUpperCaseID(t *testing.T) {
	require := require.New(t)

	c, err := Generate(WithID("ABCDEF01-2345-4678-89AB-CDEF01234567"))
	require.NoError(err, "Generate")
	require.Equal("abcdef01-2345-4678-89ab-cdef01234567", c.ID())

	r, err := c.Record()
	require.NoError(err, "Record")
	r.ID = "ABCDEF01-2345-4678-89AB-CDEF01234567"
	imported, err := PrivateKeyCredentialFromRecord(r)
	require.NoError(err, "PrivateKeyCredentialFromRecord")
	require.Equal(c.Bytes(), imported.Bytes())
}

func TestPrivateKeyCredentialGenerateDeterministic(t *testing.T) {
	for _, a := range SupportedAlgorithms() {
		t.Run(a.String(), func(t *testing.T) {
			require := require.New(t)

			c1, err := Generate(WithAlgorithm(a), WithRandom(&deterministicReader{}))
			require.NoError(err, "Generate")
			c2, err := Generate(WithAlgorithm(a), WithRandom(&deterministicReader{}))
			require.NoError(err, "Generate")
			require.Equal(c1.Bytes(), c2.Bytes())

			// The id is a version 4 UUID drawn from the same source.
			require.Equal("00010203-0405-4607-8809-0a0b0c0d0e0f", c1.ID())
		})
	}
}

func TestPrivateKeyCredentialGenerateErrors(t *testing.T) {
	require := require.New(t)

	_, err := Generate(WithAlgorithm("RS256"))
	require.ErrorIs(err, ErrUnsupportedAlgorithmID)

	_, err = Generate(WithID("not-a-uuid"))
	require.ErrorIs(err, ErrMalformedID)
}

func TestPrivateKeyCredentialFromRecordErrors(t *testing.T) {
	require := require.New(t)

	c, err := Generate()
	require.NoError(err, "Generate")
	valid, err := c.Record()
	require.NoError(err, "Record")

	r := valid
	r.Algorithm = "RS256"
	_, err = PrivateKeyCredentialFromRecord(r)
	require.ErrorIs(err, ErrUnsupportedAlgorithmID)

	r = valid
	r.PrivateKey = ""
	_, err = PrivateKeyCredentialFromRecord(r)
	require.ErrorIs(err, ErrMalformedKey)

	r = valid
	r.PrivateKey = "%%%"
	_, err = PrivateKeyCredentialFromRecord(r)
	require.ErrorIs(err, ErrMalformedKey)

	r = valid
	r.ID = "1111"
	_, err = PrivateKeyCredentialFromRecord(r)
	require.ErrorIs(err, ErrMalformedID)
}

func TestPrivateKeyCredentialPublicKeyNotCached(t *testing.T) {
	require := require.New(t)

	ed, err := Generate(WithAlgorithm(AlgorithmEd25519))
	require.NoError(err, "Generate")
	before, err := ed.PublicKey()
	require.NoError(err, "PublicKey")

	ed.Reset()
	require.Equal(make([]byte, 32), ed.PrivateKey())
	after, err := ed.PublicKey()
	require.NoError(err, "PublicKey")
	require.NotEqual(before, after)

	k, err := Generate(WithAlgorithm(AlgorithmES256K))
	require.NoError(err, "Generate")
	_, err = k.PublicKey()
	require.NoError(err, "PublicKey")

	k.Reset()
	_, err = k.PublicKey()
	require.ErrorIs(err, ErrMalformedKey)
}

func TestPrivateKeyCredentialMalformedKey(t *testing.T) {
	require := require.New(t)

	for _, a := range SupportedAlgorithms() {
		// No key material at all.
		raw := append(make([]byte, IDSize), a.Tag()...)
		c, err := NewPrivateKeyCredential(raw)
		require.NoError(err, "NewPrivateKeyCredential")

		_, err = c.Sign([]byte("message"))
		require.ErrorIs(err, ErrMalformedKey)
		_, err = c.PublicKey()
		require.ErrorIs(err, ErrMalformedKey)
		_, err = c.Signer()
		require.ErrorIs(err, ErrMalformedKey)

		ok, err := c.Verify([]byte("message"), make([]byte, signature.SignatureSize))
		require.NoError(err, "Verify")
		require.False(ok)
	}
}

func TestPrivateKeyCredentialSigner(t *testing.T) {
	for _, a := range SupportedAlgorithms() {
		t.Run(a.String(), func(t *testing.T) {
			require := require.New(t)

			c, err := Generate(WithAlgorithm(a))
			require.NoError(err, "Generate")

			signer, err := c.Signer()
			require.NoError(err, "Signer")
			defer signer.Reset()

			msg := []byte("response body")
			sig, err := signer.Sign(msg)
			require.NoError(err, "Sign")

			pc, err := c.PublicKeyCredential()
			require.NoError(err, "PublicKeyCredential")
			ok, err := pc.Verify(msg, sig)
			require.NoError(err, "Verify")
			require.True(ok)

			verifier, err := pc.Verifier()
			require.NoError(err, "Verifier")
			require.True(verifier.Equal(signer.Public()))

			// Resetting the signer leaves the credential intact.
			signer.Reset()
			sig, err = c.Sign(msg)
			require.NoError(err, "Sign")
			ok, err = pc.Verify(msg, sig)
			require.NoError(err, "Verify")
			require.True(ok)
		})
	}
}

func TestPrivateKeyCredentialGoString(t *testing.T) {
	require := require.New(t)

	c, err := Generate()
	require.NoError(err, "Generate")

	r, err := c.Record()
	require.NoError(err, "Record")
	require.NotContains(c.GoString(), r.PrivateKey)
	require.Contains(c.GoString(), c.ID())
}
