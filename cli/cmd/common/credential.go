package common

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/agoralabs-sh/vip030026-go/credential"
)

// StdinArg is the credential argument that reads from standard input.
const StdinArg = "-"

// Stdin is the reader used for StdinArg.
var Stdin io.Reader = os.Stdin

// readCredentialInput resolves a credential argument into either a decoded record or a
// string form.
func readCredentialInput(arg string) (*credential.PrivateRecord, string, error) {
	var data []byte
	switch {
	case arg == StdinArg:
		var err error
		if data, err = io.ReadAll(Stdin); err != nil {
			return nil, "", fmt.Errorf("failed to read credential from stdin: %w", err)
		}
	case isFile(arg):
		var err error
		if data, err = os.ReadFile(arg); err != nil {
			return nil, "", fmt.Errorf("failed to read credential file: %w", err)
		}
	default:
		return nil, strings.TrimSpace(arg), nil
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, "", errors.New("empty credential input")
	}

	// JSON is a subset of YAML so a single decoder handles both record encodings.
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, "", fmt.Errorf("failed to parse credential input: %w", err)
	}
	if len(doc.Content) == 1 && doc.Content[0].Kind == yaml.ScalarNode {
		return nil, doc.Content[0].Value, nil
	}

	var r credential.PrivateRecord
	if err := doc.Decode(&r); err != nil {
		return nil, "", fmt.Errorf("failed to decode credential record: %w", err)
	}
	return &r, "", nil
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// LoadPrivateCredential loads a private key credential from a record file, standard
// input or a string form.
func LoadPrivateCredential(arg string) (*credential.PrivateKeyCredential, error) {
	r, s, err := readCredentialInput(arg)
	if err != nil {
		return nil, err
	}
	if r != nil {
		return credential.PrivateKeyCredentialFromRecord(*r)
	}
	return credential.PrivateKeyCredentialFromString(s)
}

// LoadPublicCredential loads a public key credential. A private record is accepted and
// reduced to its public counterpart. String forms are only treated as private when
// private is set.
func LoadPublicCredential(arg string, private bool) (*credential.PublicKeyCredential, error) {
	r, s, err := readCredentialInput(arg)
	if err != nil {
		return nil, err
	}

	switch {
	case r != nil && r.PrivateKey != "":
		return publicFromPrivate(credential.PrivateKeyCredentialFromRecord(*r))
	case r != nil:
		return credential.PublicKeyCredentialFromRecord(r.Public())
	case private:
		return publicFromPrivate(credential.PrivateKeyCredentialFromString(s))
	default:
		return credential.PublicKeyCredentialFromString(s)
	}
}

func publicFromPrivate(c *credential.PrivateKeyCredential, err error) (*credential.PublicKeyCredential, error) {
	if err != nil {
		return nil, err
	}
	defer c.Reset()

	return c.PublicKeyCredential()
}

// LoadCredential loads either credential variant depending on private.
func LoadCredential(arg string, private bool) (credential.Credential, error) {
	if private {
		return LoadPrivateCredential(arg)
	}
	return LoadPublicCredential(arg, false)
}
