package common

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agoralabs-sh/vip030026-go/credential"
)

var importKeys = []struct {
	algorithm credential.AlgorithmID
	key       string
	encoding  string
	pubkey    string
	valid     bool
}{
	{credential.AlgorithmES256K, "0x1f1455c61485737accdd610f5ea9ac1e4272c29b4c6c3189a349acc5bb598e7d", KeyEncodingHex, "AyZKkxNFeyqLI5HGTYqEmCcYxKGo/kueOzSHzdnrSePO", true},
	{credential.AlgorithmES256K, "1f1455c61485737accdd610f5ea9ac1e4272c29b4c6c3189a349acc5bb598e7d", KeyEncodingHex, "AyZKkxNFeyqLI5HGTYqEmCcYxKGo/kueOzSHzdnrSePO", true},
	{credential.AlgorithmES256K, "0x1f1455c61485737accdd610f5ea9ac1e4272c29b4c6c3189a349acc5bb598e7", KeyEncodingHex, "", false},
	{credential.AlgorithmES256K, "0x1f1455c61485737accdd610f5ea9ac1e4272c29b4c6c3189a349acc5", KeyEncodingHex, "", false},
	{credential.AlgorithmES256K, "0x1f1455c61485737accdd610f5ea9ac1e4272c29b4c6c3189a349acc5bb598e7d1111111111", KeyEncodingHex, "", false},
	{credential.AlgorithmES256K, "0000000000000000000000000000000000000000000000000000000000000000", KeyEncodingHex, "", false},
	{credential.AlgorithmES256K, "", KeyEncodingHex, "", false},
	{credential.AlgorithmEd25519, "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60", KeyEncodingHex, "11qYAYKxCrfVS/7TyWQHOg7hcvPapiMlrwIaaPcHURo=", true},
	{credential.AlgorithmEd25519, "nWGxne/9WmC6hEr0kuwsxERJxWl7MmkZcDusAxyuf2A=", KeyEncodingBase64, "11qYAYKxCrfVS/7TyWQHOg7hcvPapiMlrwIaaPcHURo=", true},
	{credential.AlgorithmEd25519, "nWGxne/9WmC6hEr0kuwsxERJxWl7MmkZcDusAxyu", KeyEncodingBase64, "", false},
	{credential.AlgorithmEd25519, "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60", "base58", "", false},
	{"RS256", "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60", KeyEncodingHex, "", false},
}

func TestImportPrivateKey(t *testing.T) {
	require := require.New(t)

	for _, k := range importKeys {
		c, err := ImportPrivateKey(k.algorithm, "", k.key, k.encoding)
		if !k.valid {
			require.Error(err, "ImportPrivateKey(%s)", k.key)
			continue
		}
		require.NoError(err, "ImportPrivateKey(%s)", k.key)

		pk, err := c.PublicKey()
		require.NoError(err, "PublicKey")
		require.Equal(k.pubkey, base64.StdEncoding.EncodeToString(pk))
		algorithm, err := c.Algorithm()
		require.NoError(err, "Algorithm")
		require.Equal(k.algorithm, algorithm)
	}
}

func TestImportPrivateKeyID(t *testing.T) {
	require := require.New(t)

	const id = "11111111-1111-4111-8111-111111111111"
	c, err := ImportPrivateKey(credential.AlgorithmEd25519, id, "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60", KeyEncodingHex)
	require.NoError(err, "ImportPrivateKey")
	require.Equal(id, c.ID())

	_, err = ImportPrivateKey(credential.AlgorithmEd25519, "not-a-uuid", "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60", KeyEncodingHex)
	require.ErrorIs(err, credential.ErrMalformedID)

	_, err = ImportPrivateKey("RS256", id, "", KeyEncodingHex)
	require.ErrorIs(err, credential.ErrUnsupportedAlgorithmID)
}
