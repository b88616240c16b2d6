package rdbstore

import (
	"github.com/golang/glog"
	rocksdb "github.com/tecbot/gorocksdb"

	"github.com/timpalpant/go-bandit"
)

// ResultStore implements bandit.ResultStore on top of RocksDB.
//
// It is functionally equivalent to ldbstore.ResultStore but requires the
// RocksDB shared library at build time.
type ResultStore struct {
	params Params
	db     *rocksdb.DB
}

// Open opens the RocksDB database described by params.
// The ResultStore takes ownership of the options in params.
func Open(params Params) (*ResultStore, error) {
	db, err := rocksdb.OpenDb(params.Options, params.Path)
	if err != nil {
		return nil, err
	}

	return &ResultStore{params: params, db: db}, nil
}

// Close implements io.Closer.
func (s *ResultStore) Close() error {
	s.db.Close()
	s.params.Close()
	return nil
}

// Put implements bandit.ResultStore.
func (s *ResultStore) Put(runID string, agg *bandit.Aggregator) error {
	buf, err := bandit.EncodeAggregator(agg)
	if err != nil {
		return err
	}

	if err := s.db.Put(s.params.WriteOptions, bandit.ResultKey(runID, agg.Name()), buf); err != nil {
		return err
	}

	glog.V(1).Infof("Saved %s/%s (%d trials) to %s", runID, agg.Name(), agg.NumTrials(), s.params.Path)
	return nil
}

// Get implements bandit.ResultStore.
func (s *ResultStore) Get(runID, policy string) (*bandit.Aggregator, error) {
	result, err := s.db.Get(s.params.ReadOptions, bandit.ResultKey(runID, policy))
	if err != nil {
		return nil, err
	}
	defer result.Free()

	if !result.Exists() {
		return nil, bandit.ErrResultNotFound
	}

	return bandit.DecodeAggregator(result.Data())
}

// Policies implements bandit.ResultStore.
func (s *ResultStore) Policies(runID string) ([]string, error) {
	prefix := bandit.RunPrefix(runID)
	it := s.db.NewIterator(s.params.ReadOptions)
	defer it.Close()

	var result []string
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		key := it.Key()
		result = append(result, bandit.PolicyFromKey(key.Data()))
		key.Free()
	}

	return result, it.Err()
}
