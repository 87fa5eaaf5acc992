// Package crypto seals backup blobs on the client before upload.
//
// The server never sees plaintext: it stores whatever bytes it receives. A
// sealed blob is self-describing (format tag, salt, nonce) so it can be
// opened with nothing but the passphrase.
package crypto

// Sealer encrypts and decrypts whole backup blobs with a passphrase.
type Sealer interface {
	// Seal derives a key from passphrase with a fresh random salt and
	// encrypts plaintext with AES-256-GCM.
	Seal(plaintext []byte, passphrase string) ([]byte, error)

	// Open reverses Seal. A wrong passphrase or any modification of the
	// blob yields [ErrDecryptionFailed].
	Open(sealed []byte, passphrase string) ([]byte, error)
}
