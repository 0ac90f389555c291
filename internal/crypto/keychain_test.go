package crypto

import (
	"bytes"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheap Argon2id parameters so the tests stay fast
var testParams = KDFParams{Time: 1, Memory: 1024, Threads: 1}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func isValidUTF8(s string) bool { return utf8.ValidString(s) }

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService()

	s1, err := svc.GenerateSalt()
	require.NoError(t, err)
	s2, err := svc.GenerateSalt()
	require.NoError(t, err)

	assert.Len(t, s1, SaltSize)
	assert.Len(t, s2, SaltSize)
	assert.False(t, bytes.Equal(s1, s2), "expected salts to differ")
}

func TestGenerateSalt_RandomFailure(t *testing.T) {
	svc := &keyChainService{random: failingReader{}}

	_, err := svc.GenerateSalt()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read salt")
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	svc := NewKeyChainService()
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)

	k1 := svc.DeriveKey("correct horse battery staple", salt, testParams)
	k2 := svc.DeriveKey("correct horse battery staple", salt, testParams)

	assert.Len(t, k1, SealedKeySize)
	assert.Equal(t, k1, k2)
}

func TestDeriveKey_InputsChangeKey(t *testing.T) {
	svc := NewKeyChainService()
	salt1 := bytes.Repeat([]byte{0x01}, SaltSize)
	salt2 := bytes.Repeat([]byte{0x02}, SaltSize)

	base := svc.DeriveKey("same password", salt1, testParams)
	assert.NotEqual(t, base, svc.DeriveKey("same password", salt2, testParams))
	assert.NotEqual(t, base, svc.DeriveKey("other password", salt1, testParams))
	assert.NotEqual(t, base, svc.DeriveKey("same password", salt1, KDFParams{Time: 2, Memory: 1024, Threads: 1}))
}

func TestNewRecord_Sealed(t *testing.T) {
	svc := NewKeyChainService()

	record, enc, err := svc.NewRecord(SchemeSealed, testParams, "Tr0ub4dor")
	require.NoError(t, err)

	assert.Equal(t, SchemeSealed, record.Scheme)
	assert.Equal(t, testParams, record.Params)
	assert.Len(t, record.Salt, SaltSize)
	assert.Equal(t, "Tr0ub4dor", enc.Decode(record.Secret))

	reopened, err := svc.OpenRecord(record, "Tr0ub4dor")
	require.NoError(t, err)
	assert.Equal(t, "Tr0ub4dor", reopened.Decode(record.Secret))

	wrong, err := svc.OpenRecord(record, "Tr0ub4dorx")
	require.NoError(t, err)
	assert.Empty(t, wrong.Decode(record.Secret))
}

func TestNewRecord_SaltDiffersPerSetup(t *testing.T) {
	svc := NewKeyChainService()

	r1, _, err := svc.NewRecord(SchemeSealed, testParams, "same")
	require.NoError(t, err)
	r2, _, err := svc.NewRecord(SchemeSealed, testParams, "same")
	require.NoError(t, err)

	assert.NotEqual(t, r1.Salt, r2.Salt)
	assert.NotEqual(t, r1.Secret, r2.Secret)
}

func TestNewRecord_Base64(t *testing.T) {
	svc := NewKeyChainService()

	record, enc, err := svc.NewRecord(SchemeBase64, testParams, "Tr0ub4dor")
	require.NoError(t, err)

	assert.Equal(t, SchemeBase64, record.Scheme)
	assert.Empty(t, record.Salt)
	assert.Equal(t, "VHIwdWI0ZG9y", record.Secret)
	assert.Equal(t, "Tr0ub4dor", enc.Decode(record.Secret))
}

func TestNewRecord_Errors(t *testing.T) {
	_, _, err := NewKeyChainService().NewRecord(Scheme("rot13"), testParams, "pw")
	assert.ErrorIs(t, err, ErrUnknownScheme)

	failing := &keyChainService{random: failingReader{}}
	_, _, err = failing.NewRecord(SchemeSealed, testParams, "pw")
	assert.Error(t, err)

	_, err = NewKeyChainService().OpenRecord(SecretRecord{Scheme: "rot13"}, "pw")
	assert.ErrorIs(t, err, ErrUnknownScheme)
}
