package models

type CredentialStatus string

const (
	CredentialUnverified CredentialStatus = "unverified"
	CredentialVerified   CredentialStatus = "verified"
)

const (
	CredentialHashSize = 32
	SignatureSize      = 65
	MaxMetadataSize    = 256
)

type Credential struct {
	Hash        []byte           `json:"hash"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Issuer      string           `json:"issuer"`
	Expiry      *uint64          `json:"expiry,omitempty"`
	Timestamp   uint64           `json:"timestamp"`
	Status      CredentialStatus `json:"status"`
	Category    string           `json:"category"`
	Level       uint             `json:"level"`
	Score       uint             `json:"score"`
	Metadata    []byte           `json:"metadata,omitempty"`
}

// Clone returns a copy that shares no mutable memory with the stored record.
func (c Credential) Clone() Credential {
	c.Hash = append([]byte(nil), c.Hash...)
	if c.Metadata != nil {
		c.Metadata = append([]byte(nil), c.Metadata...)
	}
	if c.Expiry != nil {
		expiry := *c.Expiry
		c.Expiry = &expiry
	}
	return c
}
