package ldbstore

import (
	"github.com/golang/glog"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/timpalpant/go-bandit"
)

// ResultStore implements bandit.ResultStore on top of LevelDB.
type ResultStore struct {
	path  string
	db    *leveldb.DB
	rOpts *opt.ReadOptions
	wOpts *opt.WriteOptions
}

// Open opens (creating if necessary) the LevelDB database at path.
func Open(path string, opts *opt.Options) (*ResultStore, error) {
	db, err := leveldb.OpenFile(path, opts)
	if err != nil {
		return nil, err
	}

	return &ResultStore{path: path, db: db}, nil
}

// Close implements io.Closer.
func (s *ResultStore) Close() error {
	return s.db.Close()
}

// Put implements bandit.ResultStore.
func (s *ResultStore) Put(runID string, agg *bandit.Aggregator) error {
	buf, err := bandit.EncodeAggregator(agg)
	if err != nil {
		return err
	}

	if err := s.db.Put(bandit.ResultKey(runID, agg.Name()), buf, s.wOpts); err != nil {
		return err
	}

	glog.V(1).Infof("Saved %s/%s (%d trials) to %s", runID, agg.Name(), agg.NumTrials(), s.path)
	return nil
}

// Get implements bandit.ResultStore.
func (s *ResultStore) Get(runID, policy string) (*bandit.Aggregator, error) {
	buf, err := s.db.Get(bandit.ResultKey(runID, policy), s.rOpts)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil, bandit.ErrResultNotFound
		}

		return nil, err
	}

	return bandit.DecodeAggregator(buf)
}

// Policies implements bandit.ResultStore.
func (s *ResultStore) Policies(runID string) ([]string, error) {
	it := s.db.NewIterator(util.BytesPrefix(bandit.RunPrefix(runID)), s.rOpts)
	defer it.Release()

	var result []string
	for it.Next() {
		result = append(result, bandit.PolicyFromKey(it.Key()))
	}

	return result, it.Error()
}
