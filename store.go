package bandit

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
)

// ErrResultNotFound is returned by a ResultStore when no result is saved
// under the requested key.
var ErrResultNotFound = errors.New("result not found")

const keySep = "/"

// ResultKey returns the database key for the result of policy in runID.
func ResultKey(runID, policy string) []byte {
	return []byte(runID + keySep + policy)
}

// RunPrefix returns the key prefix shared by all results of runID.
func RunPrefix(runID string) []byte {
	return []byte(runID + keySep)
}

// PolicyFromKey returns the policy name of a key built by ResultKey.
func PolicyFromKey(key []byte) string {
	k := string(key)
	if i := strings.Index(k, keySep); i >= 0 {
		return k[i+len(keySep):]
	}

	return k
}

// EncodeAggregator returns the gob encoding of agg as stored by a ResultStore.
func EncodeAggregator(agg *Aggregator) ([]byte, error) {
	var buf bytes.Buffer
	if err := agg.MarshalTo(&buf); err != nil {
		return nil, errors.Wrapf(err, "encoding %s", agg.Name())
	}

	return buf.Bytes(), nil
}

// DecodeAggregator reverses EncodeAggregator.
func DecodeAggregator(buf []byte) (*Aggregator, error) {
	agg, err := LoadAggregator(bytes.NewReader(buf))
	if err != nil {
		return nil, errors.Wrap(err, "decoding aggregator")
	}

	return agg, nil
}
