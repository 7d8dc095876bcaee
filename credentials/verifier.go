package credentials

import (
	"sync"
	"unicode/utf8"

	"github.com/coachledger/marketplace/chain"
	"github.com/coachledger/marketplace/models"
	"github.com/coachledger/marketplace/payments"
	"github.com/coachledger/marketplace/policy"
)

const (
	DefaultVerificationFee = 100
	DefaultMaxPerCoach     = 10
	DefaultMaxAttesters    = 50
)

// Config carries the knobs a deployment sets once at construction. Zero
// values fall back to the defaults above (Owner excepted).
type Config struct {
	Owner           models.Principal
	VerificationFee uint64
	MaxPerCoach     uint
	MaxAttesters    uint
}

// Submission is the caller-supplied portion of a new credential. The caller
// becomes the owning coach.
type Submission struct {
	Hash        []byte
	Title       string
	Description string
	Issuer      string
	Expiry      *uint64
	Category    string
	Level       uint
	Score       uint
	Metadata    []byte
}

// Details is the always-successful lookup result: whatever exists for the
// key, plus the derived verified flag.
type Details struct {
	Credential  *models.Credential  `json:"credential"`
	Attestation *models.Attestation `json:"attestation"`
	Verified    bool                `json:"verified"`
}

// Verifier tracks coach credentials and trusted-party attestations. Every
// public operation runs to completion under one mutex, so a call either
// applies all of its writes or none of them.
type Verifier struct {
	mu     sync.Mutex
	gate   *policy.Gate
	clock  chain.Clock
	escrow payments.TransferSink

	credentials  map[models.CredentialKey]models.Credential
	attestations map[models.CredentialKey]models.Attestation
	verified     map[models.CredentialKey]bool
	nextID       map[models.Principal]uint
	trusted      map[models.Principal]bool

	maxPerCoach  uint
	maxAttesters uint
}

func New(cfg Config, clock chain.Clock, escrow payments.TransferSink) *Verifier {
	if cfg.VerificationFee == 0 {
		cfg.VerificationFee = DefaultVerificationFee
	}
	if cfg.MaxPerCoach == 0 {
		cfg.MaxPerCoach = DefaultMaxPerCoach
	}
	if cfg.MaxAttesters == 0 {
		cfg.MaxAttesters = DefaultMaxAttesters
	}
	return &Verifier{
		gate:         policy.NewGate(cfg.Owner, cfg.VerificationFee, ErrNotAuthorized, ErrPaused),
		clock:        clock,
		escrow:       escrow,
		credentials:  make(map[models.CredentialKey]models.Credential),
		attestations: make(map[models.CredentialKey]models.Attestation),
		verified:     make(map[models.CredentialKey]bool),
		nextID:       make(map[models.Principal]uint),
		trusted:      make(map[models.Principal]bool),
		maxPerCoach:  cfg.MaxPerCoach,
		maxAttesters: cfg.MaxAttesters,
	}
}

// SubmitCredential stores a new unverified credential for the caller and
// returns the allocated sequential id. All validation happens before the
// first write.
func (v *Verifier) SubmitCredential(caller models.Principal, sub Submission) (uint, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.gate.RequireActive(); err != nil {
		return 0, err
	}
	nextID := v.nextID[caller]
	if nextID >= v.maxPerCoach {
		return 0, ErrMaxCredentials
	}
	if len(sub.Hash) != models.CredentialHashSize {
		return 0, ErrInvalidHash
	}
	if n := utf8.RuneCountInString(sub.Title); n == 0 || n > models.MaxTitleLength {
		return 0, ErrInvalidTitle
	}
	if utf8.RuneCountInString(sub.Description) > models.MaxDescriptionLength {
		return 0, ErrInvalidDescription
	}
	if n := utf8.RuneCountInString(sub.Issuer); n == 0 || n > models.MaxTitleLength {
		return 0, ErrInvalidIssuer
	}
	if sub.Expiry != nil && *sub.Expiry <= v.clock.Height() {
		return 0, ErrInvalidExpiry
	}
	if n := utf8.RuneCountInString(sub.Category); n == 0 || n > models.MaxCategoryLength {
		return 0, ErrInvalidCategory
	}
	if sub.Level < 1 || sub.Level > 10 {
		return 0, ErrInvalidLevel
	}
	if sub.Score > 100 {
		return 0, ErrInvalidScore
	}
	if sub.Metadata != nil && len(sub.Metadata) > models.MaxMetadataSize {
		return 0, ErrInvalidMetadata
	}
	key := models.CredentialKey{Coach: caller, ID: nextID}
	if _, exists := v.credentials[key]; exists {
		return 0, ErrAlreadySubmitted
	}

	expiry := sub.Expiry
	if expiry != nil {
		e := *expiry
		expiry = &e
	}
	v.credentials[key] = models.Credential{
		Hash:        append([]byte(nil), sub.Hash...),
		Title:       sub.Title,
		Description: sub.Description,
		Issuer:      sub.Issuer,
		Expiry:      expiry,
		Timestamp:   v.clock.Height(),
		Status:      models.CredentialUnverified,
		Category:    sub.Category,
		Level:       sub.Level,
		Score:       sub.Score,
		Metadata:    append([]byte(nil), sub.Metadata...),
	}
	v.nextID[caller] = nextID + 1
	return nextID, nil
}

// AttestCredential verifies a coach's credential. The caller must be a
// trusted attester; the coach pays the verification fee. The fee record, the
// attestation, the credential status flip and the derived lookup flag are one
// atomic step.
func (v *Verifier) AttestCredential(caller, coach models.Principal, id uint, signature []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.gate.RequireActive(); err != nil {
		return err
	}
	if !v.trusted[caller] {
		return ErrAttesterNotTrusted
	}
	if len(signature) != models.SignatureSize {
		return ErrInvalidSignature
	}
	key := models.CredentialKey{Coach: coach, ID: id}
	cred, ok := v.credentials[key]
	if !ok {
		return ErrCredentialNotFound
	}
	if cred.Expiry != nil && *cred.Expiry <= v.clock.Height() {
		return ErrCredentialExpired
	}
	if cred.Status == models.CredentialVerified {
		return ErrAlreadySubmitted
	}
	if err := v.escrow.Record(v.gate.Fee(), coach); err != nil {
		return ErrTransferFailed
	}

	v.attestations[key] = models.Attestation{
		Attester:  caller,
		Signature: append([]byte(nil), signature...),
		Timestamp: v.clock.Height(),
		Valid:     true,
	}
	cred.Status = models.CredentialVerified
	v.credentials[key] = cred
	v.verified[key] = true
	return nil
}

// RevokeAttestation invalidates an attestation. Only the attester on record
// may revoke. The credential's own status field is untouched; administrative
// override is a separate operation.
func (v *Verifier) RevokeAttestation(caller, coach models.Principal, id uint) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.gate.RequireActive(); err != nil {
		return err
	}
	key := models.CredentialKey{Coach: coach, ID: id}
	att, ok := v.attestations[key]
	if !ok {
		return ErrCredentialNotFound
	}
	if att.Attester != caller {
		return ErrNotAuthorized
	}

	att.Valid = false
	v.attestations[key] = att
	v.verified[key] = false
	return nil
}

// UpdateCredentialStatus is the owner-only administrative override. The
// derived lookup flag is updated in the same step so the two never diverge.
func (v *Verifier) UpdateCredentialStatus(caller, coach models.Principal, id uint, status models.CredentialStatus) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.gate.RequireOwner(caller); err != nil {
		return err
	}
	if err := v.gate.RequireActive(); err != nil {
		return err
	}
	key := models.CredentialKey{Coach: coach, ID: id}
	cred, ok := v.credentials[key]
	if !ok {
		return ErrCredentialNotFound
	}

	cred.Status = status
	v.credentials[key] = cred
	v.verified[key] = status == models.CredentialVerified
	return nil
}

func (v *Verifier) SetVerificationFee(caller models.Principal, fee uint64) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.gate.SetFee(caller, fee)
}

func (v *Verifier) AddTrustedAttester(caller, attester models.Principal) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.gate.RequireOwner(caller); err != nil {
		return err
	}
	if err := v.gate.RequireActive(); err != nil {
		return err
	}
	if uint(len(v.trusted)) >= v.maxAttesters {
		return ErrMaxAttesters
	}
	if v.trusted[attester] {
		return ErrAttesterExists
	}
	v.trusted[attester] = true
	return nil
}

func (v *Verifier) RemoveTrustedAttester(caller, attester models.Principal) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.gate.RequireOwner(caller); err != nil {
		return err
	}
	if !v.trusted[attester] {
		return ErrUnknownAttester
	}
	delete(v.trusted, attester)
	return nil
}

func (v *Verifier) Pause(caller models.Principal) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.gate.Pause(caller)
}

func (v *Verifier) Unpause(caller models.Principal) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.gate.Unpause(caller)
}

// GetCredentialDetails always succeeds; absent records come back nil with
// Verified false.
func (v *Verifier) GetCredentialDetails(coach models.Principal, id uint) Details {
	v.mu.Lock()
	defer v.mu.Unlock()

	key := models.CredentialKey{Coach: coach, ID: id}
	var details Details
	if cred, ok := v.credentials[key]; ok {
		clone := cred.Clone()
		details.Credential = &clone
	}
	if att, ok := v.attestations[key]; ok {
		clone := att.Clone()
		details.Attestation = &clone
	}
	details.Verified = v.verified[key]
	return details
}

// IsCoachVerified is the capability the listing service depends on: true when
// the coach holds at least one currently-verified credential.
func (v *Verifier) IsCoachVerified(coach models.Principal) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	count := v.nextID[coach]
	for id := uint(0); id < count; id++ {
		if v.verified[models.CredentialKey{Coach: coach, ID: id}] {
			return true
		}
	}
	return false
}

func (v *Verifier) NextCredentialID(coach models.Principal) uint {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.nextID[coach]
}

func (v *Verifier) VerificationFee() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.gate.Fee()
}

// TrustedAttesterCount equals the size of the trusted set by construction.
func (v *Verifier) TrustedAttesterCount() uint {
	v.mu.Lock()
	defer v.mu.Unlock()
	return uint(len(v.trusted))
}
