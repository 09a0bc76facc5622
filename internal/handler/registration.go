package handler

import "github.com/congo-pay/simplewallet/internal/address"

// FamilyVersion is the only payload version the handler understands.
const FamilyVersion = "1.0"

// Registration is what the handler declares to the validator when it
// connects: which family and versions it processes and which namespace
// prefixes it owns.
type Registration struct {
	Family   string
	Versions []string
	Prefixes []string
}

// DefaultRegistration describes the simplewallet family.
func DefaultRegistration() Registration {
	return Registration{
		Family:   address.FamilyName,
		Versions: []string{FamilyVersion},
		Prefixes: []string{address.NamespacePrefix()},
	}
}

func (r Registration) FamilyName() string { return r.Family }

func (r Registration) FamilyVersions() []string {
	return append([]string(nil), r.Versions...)
}

func (r Registration) Namespaces() []string {
	return append([]string(nil), r.Prefixes...)
}
