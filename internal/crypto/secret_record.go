package crypto

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// Scheme names an encoder family.
type Scheme string

const (
	// SchemeBase64 is the keyless, reversible obfuscation.
	SchemeBase64 Scheme = "base64"
	// SchemeSealed is the Argon2id + AES-SIV scheme.
	SchemeSealed Scheme = "aead"
)

const sealedRecordVersion = 1

// ParseScheme converts a configuration value into a [Scheme].
func ParseScheme(name string) (Scheme, error) {
	switch s := Scheme(strings.ToLower(strings.TrimSpace(name))); s {
	case SchemeBase64, SchemeSealed:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
}

// SecretRecord is the parsed master secret.
//
// Text forms:
//
//	base64: <encoded password>
//	aead:   $aead$v=1,m=<KiB>,t=<passes>,p=<threads>$<salt>$<encoded password>
//
// The base64 form is the bare encoded password, which is also what vaults
// created before the sealed scheme contain. '$' never occurs in standard
// base64, so the two forms cannot be confused.
type SecretRecord struct {
	Scheme Scheme
	Params KDFParams
	Salt   []byte
	Secret string
}

// String formats the record for storage.
func (r SecretRecord) String() string {
	if r.Scheme != SchemeSealed {
		return r.Secret
	}

	return fmt.Sprintf("$%s$v=%d,m=%d,t=%d,p=%d$%s$%s",
		SchemeSealed,
		sealedRecordVersion,
		r.Params.Memory,
		r.Params.Time,
		r.Params.Threads,
		base64.RawStdEncoding.EncodeToString(r.Salt),
		r.Secret,
	)
}

// ParseSecretRecord parses a stored master secret. Surrounding whitespace is
// ignored.
func ParseSecretRecord(raw string) (SecretRecord, error) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "$") {
		return SecretRecord{Scheme: SchemeBase64, Secret: raw}, nil
	}

	parts := strings.Split(raw, "$")
	// "", scheme, params, salt, secret
	if len(parts) != 5 || parts[0] != "" {
		return SecretRecord{}, fmt.Errorf("%w: expected 4 fields", ErrMalformedRecord)
	}
	if Scheme(parts[1]) != SchemeSealed {
		return SecretRecord{}, fmt.Errorf("%w: %q", ErrUnknownScheme, parts[1])
	}

	params, err := parseKDFParams(parts[2])
	if err != nil {
		return SecretRecord{}, err
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil || len(salt) == 0 {
		return SecretRecord{}, fmt.Errorf("%w: bad salt", ErrMalformedRecord)
	}

	return SecretRecord{
		Scheme: SchemeSealed,
		Params: params,
		Salt:   salt,
		Secret: parts[4],
	}, nil
}

func parseKDFParams(s string) (KDFParams, error) {
	var (
		params  KDFParams
		version int
		seen    = make(map[string]bool, 4)
	)

	for _, kv := range strings.Split(s, ",") {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return KDFParams{}, fmt.Errorf("%w: bad parameter %q", ErrMalformedRecord, kv)
		}

		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return KDFParams{}, fmt.Errorf("%w: bad value for %q", ErrMalformedRecord, key)
		}

		switch key {
		case "v":
			version = int(n)
		case "m":
			params.Memory = uint32(n)
		case "t":
			params.Time = uint32(n)
		case "p":
			if n > 255 {
				return KDFParams{}, fmt.Errorf("%w: too many threads", ErrMalformedRecord)
			}
			params.Threads = uint8(n)
		default:
			return KDFParams{}, fmt.Errorf("%w: unknown parameter %q", ErrMalformedRecord, key)
		}
		seen[key] = true
	}

	if len(seen) != 4 || version != sealedRecordVersion {
		return KDFParams{}, fmt.Errorf("%w: unsupported parameters %q", ErrMalformedRecord, s)
	}
	if params.Time == 0 || params.Memory == 0 || params.Threads == 0 {
		return KDFParams{}, fmt.Errorf("%w: zero cost parameter", ErrMalformedRecord)
	}

	return params, nil
}
