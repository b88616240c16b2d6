package main

import (
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/timpalpant/go-bandit"
	"github.com/timpalpant/go-bandit/ldbstore"
	"github.com/timpalpant/go-bandit/rdbstore"
)

func openStore(backend, path string) (bandit.ResultStore, error) {
	switch backend {
	case "", "leveldb":
		store, err := ldbstore.Open(path, &opt.Options{})
		if err != nil {
			return nil, err
		}

		return store, nil
	case "rocksdb":
		store, err := rdbstore.Open(rdbstore.DefaultParams(path))
		if err != nil {
			return nil, err
		}

		return store, nil
	}

	return nil, &bandit.ConfigError{Field: "store backend", Value: backend, Reason: "expected leveldb or rocksdb"}
}
