package models

// CredentialEntry is the persisted form of a single site credential.
// The password is always stored in encoded form; plaintext never reaches
// the disk.
type CredentialEntry struct {
	// Username is the login or e-mail stored for the site, kept as entered.
	Username string `json:"username"`

	// EncodedPassword is the Encoder output of the plaintext password.
	EncodedPassword string `json:"password"`
}

// Credential is the decoded view of a vault entry handed to callers.
// It never crosses the persistence boundary.
type Credential struct {
	// Site is the site key the entry is stored under.
	Site string `json:"site"`

	// Username is the stored login.
	Username string `json:"username"`

	// Password is the decoded plaintext password.
	Password string `json:"password"`
}

// MasterPassword is the plaintext master password as typed by the user.
// It is a distinct type so validators can tell it apart from other strings.
type MasterPassword string
