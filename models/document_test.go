package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaultDocument_PutKeepsInsertionOrder(t *testing.T) {
	doc := NewVaultDocument()
	doc.Put("b.com", CredentialEntry{Username: "b"})
	doc.Put("a.com", CredentialEntry{Username: "a"})
	doc.Put("c.com", CredentialEntry{Username: "c"})

	assert.Equal(t, []string{"b.com", "a.com", "c.com"}, doc.Sites())
	assert.Equal(t, 3, doc.Len())
}

func TestVaultDocument_PutOverwriteKeepsPosition(t *testing.T) {
	doc := NewVaultDocument()
	doc.Put("a.com", CredentialEntry{Username: "u1", EncodedPassword: "p1"})
	doc.Put("b.com", CredentialEntry{Username: "x"})
	doc.Put("a.com", CredentialEntry{Username: "u2", EncodedPassword: "p2"})

	assert.Equal(t, []string{"a.com", "b.com"}, doc.Sites())
	entry, ok := doc.Get("a.com")
	require.True(t, ok)
	assert.Equal(t, CredentialEntry{Username: "u2", EncodedPassword: "p2"}, entry)
}

func TestVaultDocument_SiteKeysAreCaseSensitive(t *testing.T) {
	doc := NewVaultDocument()
	doc.Put("Example.com", CredentialEntry{Username: "upper"})
	doc.Put("example.com", CredentialEntry{Username: "lower"})

	assert.Equal(t, 2, doc.Len())
	_, ok := doc.Get("EXAMPLE.COM")
	assert.False(t, ok)
}

func TestVaultDocument_Delete(t *testing.T) {
	doc := NewVaultDocument()
	doc.Put("a.com", CredentialEntry{})
	doc.Put("b.com", CredentialEntry{})

	assert.True(t, doc.Delete("a.com"))
	assert.False(t, doc.Delete("a.com"))
	assert.Equal(t, []string{"b.com"}, doc.Sites())
	_, ok := doc.Get("a.com")
	assert.False(t, ok)
}

func TestVaultDocument_CloneIsIndependent(t *testing.T) {
	doc := NewVaultDocument()
	doc.Put("a.com", CredentialEntry{Username: "a"})

	clone := doc.Clone()
	clone.Put("b.com", CredentialEntry{Username: "b"})
	clone.Delete("a.com")

	assert.Equal(t, []string{"a.com"}, doc.Sites())
	assert.Equal(t, []string{"b.com"}, clone.Sites())
}

func TestVaultDocument_JSONRoundTripPreservesOrder(t *testing.T) {
	doc := NewVaultDocument()
	doc.Put("zeta.io", CredentialEntry{Username: "z", EncodedPassword: "enc-z"})
	doc.Put("alpha.io", CredentialEntry{Username: "a", EncodedPassword: "enc-a"})
	doc.Put("мой-сайт", CredentialEntry{Username: "юзер", EncodedPassword: "enc-ru"})

	data, err := json.MarshalIndent(doc, "", "    ")
	require.NoError(t, err)

	got := NewVaultDocument()
	require.NoError(t, json.Unmarshal(data, got))

	assert.Equal(t, []string{"zeta.io", "alpha.io", "мой-сайт"}, got.Sites())
	for _, site := range doc.Sites() {
		want, _ := doc.Get(site)
		entry, ok := got.Get(site)
		require.True(t, ok, site)
		assert.Equal(t, want, entry)
	}
}

func TestVaultDocument_EmptyRoundTrip(t *testing.T) {
	data, err := json.Marshal(NewVaultDocument())
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))

	got := NewVaultDocument()
	require.NoError(t, json.Unmarshal(data, got))
	assert.Zero(t, got.Len())
	assert.Empty(t, got.Sites())
}

func TestVaultDocument_UnmarshalOriginalFormat(t *testing.T) {
	data := []byte(`{
    "example.com": {
        "username": "alice",
        "password": "czNjcmV0IQ=="
    }
}`)

	doc := NewVaultDocument()
	require.NoError(t, json.Unmarshal(data, doc))

	entry, ok := doc.Get("example.com")
	require.True(t, ok)
	assert.Equal(t, "alice", entry.Username)
	assert.Equal(t, "czNjcmV0IQ==", entry.EncodedPassword)
}

func TestVaultDocument_UnmarshalRejectsInvalidStructure(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "null", data: `null`},
		{name: "array", data: `[1,2,3]`},
		{name: "string", data: `"vault"`},
		{name: "entry is number", data: `{"a.com": 42}`},
		{name: "username is number", data: `{"a.com": {"username": 1, "password": "x"}}`},
		{name: "truncated", data: `{"a.com": {"username": "u"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewVaultDocument()
			doc.Put("keep.me", CredentialEntry{Username: "k"})

			assert.Error(t, json.Unmarshal([]byte(tt.data), doc))
			assert.Equal(t, []string{"keep.me"}, doc.Sites(), "a rejected document leaves the old one intact")
		})
	}
}

func TestVaultDocument_DuplicateKeysLastValueWins(t *testing.T) {
	doc := NewVaultDocument()
	data := `{"a.com": {"username": "first"}, "b.com": {"username": "b"}, "a.com": {"username": "last"}}`
	require.NoError(t, json.Unmarshal([]byte(data), doc))

	assert.Equal(t, []string{"a.com", "b.com"}, doc.Sites())
	entry, _ := doc.Get("a.com")
	assert.Equal(t, "last", entry.Username)
}

func TestVaultDocument_MarshalIndentKeepsOrder(t *testing.T) {
	doc := NewVaultDocument()
	doc.Put("b.com", CredentialEntry{Username: "bob", EncodedPassword: "Yg=="})
	doc.Put("a.com", CredentialEntry{Username: "amy", EncodedPassword: "YQ=="})

	data, err := json.MarshalIndent(doc, "", "    ")
	require.NoError(t, err)

	want := `{
    "b.com": {
        "username": "bob",
        "password": "Yg=="
    },
    "a.com": {
        "username": "amy",
        "password": "YQ=="
    }
}`
	assert.Equal(t, want, string(data))
}

func TestVaultDocument_EscapedSiteKeysRoundTrip(t *testing.T) {
	site := `quote"d & <tag> \ back`
	doc := NewVaultDocument()
	doc.Put(site, CredentialEntry{Username: "u", EncodedPassword: "p"})

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	got := NewVaultDocument()
	require.NoError(t, json.Unmarshal(data, got))
	assert.Equal(t, []string{site}, got.Sites())
}
