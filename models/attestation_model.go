package models

// Attestation records a trusted third party vouching for one credential.
// Revocation flips Valid rather than deleting the record.
type Attestation struct {
	Attester  Principal `json:"attester"`
	Signature []byte    `json:"signature"`
	Timestamp uint64    `json:"timestamp"`
	Valid     bool      `json:"valid"`
}

func (a Attestation) Clone() Attestation {
	a.Signature = append([]byte(nil), a.Signature...)
	return a
}
