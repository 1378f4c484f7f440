package triage

import "regexp"

// emergencyPattern matches raw (non-normalized) text that signals an
// incident regardless of what the classifier thinks: outages, payment
// failure, data loss, security breaches, users unable to log in.
var emergencyPattern = regexp.MustCompile(`(?i)\b(outage|down|unreachable|crash(?:ed|ing|es)?|data loss|losing data|security|breach|payment|checkout|cannot log ?in|can't log ?in|unable to log ?in|login (?:broken|failing))\b`)

// overrideConfidenceFloor is the minimum confidence an emergency match forces.
const overrideConfidenceFloor = 0.85

// EmergencyOverride scans raw text for emergency keywords. When it matches,
// the caller must force priority to Critical and raise confidence to at
// least the floor; the override always wins over the classifier output.
func EmergencyOverride(raw string) bool {
	return emergencyPattern.MatchString(raw)
}
