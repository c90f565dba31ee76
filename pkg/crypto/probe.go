package crypto

// DefaultProbeOrder is used by Probe whenever no algorithm is enforced.
// The hashed representations are consulted first; AlgorithmPlain comes
// last so it can only match once every hashed form was ruled out.
var DefaultProbeOrder = []Algorithm{AlgorithmMd5, AlgorithmSha1, AlgorithmBcrypt, AlgorithmPlain}

// Probe checks if password matches encoded. If enforced is set only this
// algorithm is consulted; otherwise each entry of DefaultProbeOrder is tried
// until one matches.
func Probe(encoded, password []byte, enforced *Algorithm) (bool, error) {
	order := DefaultProbeOrder
	if enforced != nil {
		order = []Algorithm{*enforced}
	}
	for _, candidate := range order {
		ok, err := candidate.Compare(encoded, password)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
