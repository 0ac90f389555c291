// Package crypto implements the reversible text encoders that protect vault
// secrets at rest and the key handling behind them.
//
// Two schemes exist:
//
//	base64  keyless obfuscation; anyone with file access can reverse it.
//	aead    Argon2id(master password, salt) -> AES-SIV deterministic AEAD.
//
// Both satisfy the same [Encoder] contract, so the storage and service layers
// never know which one protects a given vault. The scheme of a vault is fixed
// at setup time and recorded in its master secret ([SecretRecord]).
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Encoder is a reversible text transform.
//
// Encode is deterministic and total over any UTF-8 string. Decode fails
// closed: malformed input, an authentication failure or a result that is not
// valid UTF-8 yields the empty string instead of an error.
type Encoder interface {
	Encode(plaintext string) string
	Decode(encoded string) string
}

// KeyChainService owns salts, key derivation and the master secret record.
//
// Setup flow:
//
//	record, enc = NewRecord(scheme, params, password)   persisted as the master secret
//
// Unlock flow:
//
//	enc = OpenRecord(record, candidate)                  candidate-derived encoder
//	enc.Decode(record.Secret) == candidate               the password matches
type KeyChainService interface {
	// GenerateSalt returns SaltSize random bytes from the OS CSPRNG.
	GenerateSalt() ([]byte, error)

	// DeriveKey stretches masterPassword with Argon2id into a key suitable
	// for the sealed encoder.
	DeriveKey(masterPassword string, salt []byte, params KDFParams) []byte

	// NewRecord creates the master secret record for masterPassword under
	// scheme and returns the encoder bound to it.
	NewRecord(scheme Scheme, params KDFParams, masterPassword string) (SecretRecord, Encoder, error)

	// OpenRecord rebuilds the encoder a record was written with, keyed by
	// candidate. It does not check the candidate; decoding with a wrong key
	// simply yields empty strings.
	OpenRecord(record SecretRecord, candidate string) (Encoder, error)
}
