package bandit

import (
	"bytes"
	"encoding/gob"
	"io"
)

// LoadAggregator reloads an Aggregator written by MarshalTo.
func LoadAggregator(r io.Reader) (*Aggregator, error) {
	dec := gob.NewDecoder(r)
	var a Aggregator
	if err := dec.Decode(&a); err != nil {
		return nil, err
	}

	return &a, nil
}

// MarshalTo writes the Aggregator's state to w.
func (a *Aggregator) MarshalTo(w io.Writer) error {
	enc := gob.NewEncoder(w)
	return enc.Encode(a)
}

// GobEncode implements gob.GobEncoder.
func (a *Aggregator) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)

	if err := enc.Encode(a.name); err != nil {
		return nil, err
	}

	if err := enc.Encode([]int{a.nArms, a.nRounds, int(a.weighting), a.nTrials}); err != nil {
		return nil, err
	}

	if err := enc.Encode(a.valueRecord); err != nil {
		return nil, err
	}

	if err := enc.Encode(a.pullRecord); err != nil {
		return nil, err
	}

	if err := enc.Encode(a.rankValues); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (a *Aggregator) GobDecode(buf []byte) error {
	r := bytes.NewReader(buf)
	dec := gob.NewDecoder(r)

	var name string
	if err := dec.Decode(&name); err != nil {
		return err
	}

	var header []int
	if err := dec.Decode(&header); err != nil {
		return err
	}

	if len(header) != 4 {
		return &ConfigError{Field: "aggregator header", Value: header, Reason: "expected 4 fields"}
	}

	var valueRecord []float64
	if err := dec.Decode(&valueRecord); err != nil {
		return err
	}

	var pullRecord [][]float64
	if err := dec.Decode(&pullRecord); err != nil {
		return err
	}

	var rankValues []float64
	if err := dec.Decode(&rankValues); err != nil {
		return err
	}

	a.name = name
	a.nArms, a.nRounds = header[0], header[1]
	a.weighting, a.nTrials = Weighting(header[2]), header[3]
	a.valueRecord = valueRecord
	a.pullRecord = make([][]float64, a.nArms)
	copy(a.pullRecord, pullRecord)
	a.rankValues = rankValues
	return nil
}
