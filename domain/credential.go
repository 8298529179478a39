package domain

// CredentialSource tells where a credential was found during resolution.
type CredentialSource string

const (
	SourceBootstrap CredentialSource = "bootstrap"
	SourceStore     CredentialSource = "store"
	SourceParent    CredentialSource = "parent"
)

// Credential is an opaque bearer token. It is resolved once and never refreshed.
type Credential struct {
	Value  string
	Source CredentialSource
}

func (c Credential) IsZero() bool {
	return c.Value == ""
}
