package libmotif

import "github.com/dgraph-io/badger/v3"

// CanonicSet allows adding canonical encodings of motif graphs and returning if an equivalent graph has already been added.
type CanonicSet interface {

	// TryAdd adds the given motif graph if its isomorphism class is not already present.
	//
	// If the canonic version of X already is in this CanonicSet, this call has no effect and TryAdd() returns false.
	// If X isn't in this set, X is added and TryAdd() returns true.
	//
	// After one or more calls to TryAdd(), call Close() for cleanup.
	TryAdd(X *Graph) bool

	// Close removes all previously added items from this set.
	//
	// If you make subsequent calls to TryAdd(), be sure you call Close() when you're done.
	Close()
}

func NewCanonicSet() CanonicSet {
	return &canonicSet{}
}

type canonicSet struct {
	lsmSet
}

func (cs *canonicSet) TryAdd(X *Graph) bool {
	var buf [192]byte
	key, err := X.AppendCanonicalTo(buf[:0])
	if err != nil {
		panic(err)
	}
	return cs.tryAdd(key)
}

type lsmSet struct {
	db *badger.DB
}

func (set *lsmSet) autoOpen() {
	if set.db == nil {
		dbOpts := badger.DefaultOptions("").WithInMemory(true)
		dbOpts.Logger = nil
		dbOpts.MetricsEnabled = false

		var err error
		set.db, err = badger.Open(dbOpts)
		if err != nil {
			panic(err)
		}
	}
}

func (set *lsmSet) tryAdd(key []byte) bool {
	set.autoOpen()

	txn := set.db.NewTransaction(true)
	defer txn.Commit()

	added := false
	_, err := txn.Get(key)
	if err == nil {
		// no-op since the key is already in the db
	} else if err == badger.ErrKeyNotFound {
		err = txn.Set(key, nil)
		added = true
	}

	if err != nil {
		panic(err)
	}

	return added
}

func (set *lsmSet) Close() {
	if set.db != nil {
		set.db.Close()
		set.db = nil
	}
}
