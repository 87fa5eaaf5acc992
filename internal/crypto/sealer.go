// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	saltSize  = 16
	nonceSize = 12
)

// formatTag prefixes every sealed blob. The format is
// tag ‖ salt ‖ nonce ‖ ciphertext, with the tag also bound as GCM
// additional data.
var formatTag = []byte("BVS1")

var (
	ErrEmptyPassphrase  = errors.New("passphrase is empty")
	ErrUnknownFormat    = errors.New("not a sealed backup")
	ErrDecryptionFailed = errors.New("decryption failed: wrong passphrase or corrupted backup")
)

// sealer is the private implementation of [Sealer].
type sealer struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	random io.Reader
}

// NewSealer constructs a [Sealer] with the Argon2id parameters recommended
// by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewSealer() Sealer {
	return &sealer{
		argonTime:    1,
		argonMemory:  64 * 1024,
		argonThreads: 4,
		argonKeyLen:  32,
		random:       rand.Reader,
	}
}

func (s *sealer) Seal(plaintext []byte, passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	header := make([]byte, len(formatTag)+saltSize+nonceSize)
	copy(header, formatTag)
	if _, err := io.ReadFull(s.random, header[len(formatTag):]); err != nil {
		return nil, fmt.Errorf("generate salt and nonce: %w", err)
	}

	salt := header[len(formatTag) : len(formatTag)+saltSize]
	nonce := header[len(formatTag)+saltSize:]

	gcm, err := s.newGCM(passphrase, salt)
	if err != nil {
		return nil, err
	}

	return gcm.Seal(header, nonce, plaintext, formatTag), nil
}

func (s *sealer) Open(sealed []byte, passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	headerLen := len(formatTag) + saltSize + nonceSize
	if len(sealed) < headerLen || !bytes.Equal(sealed[:len(formatTag)], formatTag) {
		return nil, ErrUnknownFormat
	}

	salt := sealed[len(formatTag) : len(formatTag)+saltSize]
	nonce := sealed[len(formatTag)+saltSize : headerLen]

	gcm, err := s.newGCM(passphrase, salt)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, nonce, sealed[headerLen:], formatTag)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

func (s *sealer) newGCM(passphrase string, salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey([]byte(passphrase), salt, s.argonTime, s.argonMemory, s.argonThreads, s.argonKeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
