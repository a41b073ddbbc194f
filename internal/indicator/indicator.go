package indicator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownType is returned when an entity type is not a known indicator type.
var ErrUnknownType = errors.New("unknown indicator type")

// Known indicator types, canonical spelling.
const (
	Account        = "Account"
	CIDR           = "CIDR"
	CVE            = "CVE"
	Domain         = "Domain"
	DomainGlob     = "DomainGlob"
	Email          = "Email"
	File           = "File"
	Host           = "Host"
	IP             = "IP"
	IPv6           = "IPv6"
	IPv6CIDR       = "IPv6CIDR"
	Registry       = "Registry Key"
	SSDeep         = "ssdeep"
	URL            = "URL"
	AttackPattern  = "Attack Pattern"
	Campaign       = "Campaign"
	CourseOfAction = "Course of Action"
	Identity       = "Identity"
	Infrastructure = "Infrastructure"
	IntrusionSet   = "Intrusion Set"
	Location       = "Location"
	Malware        = "Malware"
	Report         = "Report"
	ThreatActor    = "Threat Actor"
	Tool           = "Tool"
	Tactic         = "Tactic"
	Vulnerability  = "Vulnerability"
	stixPrefix     = "STIX "
)

var known = func() map[string]string {
	all := []string{
		Account, CIDR, CVE, Domain, DomainGlob, Email, File, Host, IP, IPv6,
		IPv6CIDR, Registry, SSDeep, URL, AttackPattern, Campaign,
		CourseOfAction, Identity, Infrastructure, IntrusionSet, Location,
		Malware, Report, ThreatActor, Tool, Tactic, Vulnerability,
	}
	m := make(map[string]string, len(all))
	for _, t := range all {
		m[strings.ToLower(t)] = t
	}
	return m
}()

// Normalize drops the STIX prefix that older platform versions put on
// threat-intel object types.
func Normalize(t string) string {
	t = strings.TrimSpace(t)
	if len(t) > len(stixPrefix) && strings.EqualFold(t[:len(stixPrefix)], stixPrefix) {
		return t[len(stixPrefix):]
	}
	return t
}

// Lookup returns the canonical spelling of t, if it is a known type.
func Lookup(t string) (string, bool) {
	canon, ok := known[strings.ToLower(Normalize(t))]
	return canon, ok
}

// Validate normalizes every type and fails on the first unknown one.
func Validate(types []string) ([]string, error) {
	if len(types) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(types))
	for _, t := range types {
		canon, ok := Lookup(t)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
		}
		out = append(out, canon)
	}
	return out, nil
}
