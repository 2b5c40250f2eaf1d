package connector

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/ssh"
)

// ErrKeyEncrypted is returned for passphrase-protected key material.
// The form only accepts unencrypted keys; the host platform encrypts
// the stored value itself.
var ErrKeyEncrypted = errors.New("private key is passphrase protected")

// ParsePrivateKey validates pasted private key material. RSA, DSA,
// ECDSA and Ed25519 keys are all accepted. Empty input means password
// auth and yields a nil signer without error.
func ParsePrivateKey(pemData string) (ssh.Signer, error) {
	if strings.TrimSpace(pemData) == "" {
		return nil, nil
	}

	signer, err := ssh.ParsePrivateKey([]byte(pemData))
	if err != nil {
		var missing *ssh.PassphraseMissingError
		if errors.As(err, &missing) {
			return nil, ErrKeyEncrypted
		}
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	return signer, nil
}
