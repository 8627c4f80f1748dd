package catalog

import (
	"bytes"
	"runtime"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"

	"github.com/netmotifs/gomotif/gomotif"
	"github.com/netmotifs/gomotif/libmotif"
	"github.com/netmotifs/gomotif/libmotif/motifpb"
)

/***

Catalog database format:

	gCatalogStateKey => CatalogState

	SigKey := [Nv (byte)], [Signature (varint degree histograms)], NUL, NUL

	SigKey                          (signature header entry, no value)
		SigKey, CanonicalEncoding   => GraphDef
		...
	...

Since the signature key starts with the motif order, iterating from [Nv] visits
all motifs of that order, grouped by signature, each class appearing once under
its canonical encoding.

***/

var (
	gCatalogStateKey = []byte{0x00, 0x00, 0x01}
)

// gSigHeaderFlag marks signature header entries in badger UserMeta, since a
// canonical encoding suffix can itself contain NUL bytes.
const gSigHeaderFlag = byte(0x01)

// catalog is a db wrapper for a motif class catalog
type catalog struct {
	ctx        gomotif.CatalogContext
	readOnly   bool
	stateDirty bool
	state      motifpb.CatalogState
	db         *badger.DB
}

func OpenCatalog(ctx gomotif.CatalogContext, opts gomotif.CatalogOpts) (gomotif.Catalog, error) {

	if opts.MotifOrderCap <= 0 {
		opts.MotifOrderCap = gomotif.MaxMotifVtx
	}

	cat := &catalog{
		ctx:      ctx,
		readOnly: opts.ReadOnly,
	}

	dbOpts := badger.DefaultOptions(opts.DbPathName)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false // not needed so disable for performance
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	// Badger for windows currently does not support read-only mode
	if runtime.GOOS == "windows" {
		dbOpts.ReadOnly = false
	}

	var err error

	if len(opts.DbPathName) == 0 {
		if opts.ReadOnly {
			return nil, errors.Wrap(gomotif.ErrBadCatalogParam, "DbPathName must be specified for read-only catalog")
		}
		dbOpts.InMemory = true
	}

	cat.db, err = badger.Open(dbOpts)
	if err != nil {
		return nil, err
	}

	// Once the db is open, we consider the catalog ctx blocked until the catalog closes
	ctx.AttachCatalog(cat)

	err = cat.loadState()
	if err == badger.ErrKeyNotFound {
		err = nil
		cat.stateDirty = true
		cat.state.MajorVers = 2024
		cat.state.MinorVers = 1
		cat.state.MotifOrderCap = opts.MotifOrderCap
		cat.state.NumMotifs = make([]int64, opts.MotifOrderCap)
	}

	if cat.state.MajorVers != 2024 || cat.state.MinorVers != 1 {
		err = errors.New("catalog version is incompatible")
	} else if opts.MotifOrderCap > cat.state.MotifOrderCap {
		err = errors.New("catalog's MotifOrderCap is below the requested MotifOrderCap")
	}

	if err != nil {
		cat.Close()
		return nil, err
	}

	return cat, nil
}

func (cat *catalog) NumMotifs(order int32) int64 {
	return cat.state.NumMotifsForOrder(order)
}

func (cat *catalog) loadState() error {
	err := cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gCatalogStateKey)
		if err == nil {
			item.Value(func(val []byte) error {
				return cat.state.Unmarshal(val)
			})
		}
		return err
	})
	return err
}

func (cat *catalog) flushState() {
	if cat.stateDirty && !cat.readOnly {
		err := cat.db.Update(func(txn *badger.Txn) error {
			stateBuf, err := cat.state.Marshal()
			if err != nil {
				return err
			}
			return txn.Set(gCatalogStateKey, stateBuf)
		})
		if err != nil {
			panic(err)
		}
		cat.stateDirty = false
	}
}

func (cat *catalog) Close() error {
	cat.flushState()
	if cat.db != nil {
		cat.db.Close()
		cat.db = nil
		cat.ctx.DetachCatalog(cat)
		cat.ctx = nil
	}
	return nil
}

func (cat *catalog) IsReadOnly() bool {
	return cat.readOnly
}

// formSigKey appends the signature header key of X: order byte, degree
// signature, double NUL terminator.
func formSigKey(key []byte, X gomotif.State) []byte {
	key = append(key, byte(X.VertexCount()))
	key = X.AppendSignatureTo(key)
	key = append(key, 0, 0)
	return key
}

// TryAddMotif adds the given motif graph if its isomorphism class isn't already present.
//
// If true is returned, X's class did not exist and was added.
//
// If false is returned, X's class already exists in the catalog (or X exceeds
// the catalog's motif order cap, or the catalog is read-only).
func (cat *catalog) TryAddMotif(X gomotif.State) bool {
	if cat.readOnly {
		return false
	}
	order := int32(X.VertexCount())
	if order < 1 || order > cat.state.MotifOrderCap {
		return false
	}

	var keyBuf [256]byte
	lsmSig := formSigKey(keyBuf[:0], X)
	lsmClass, err := X.AppendCanonicalTo(lsmSig)
	if err != nil {
		return false
	}
	lsmClass = lsmClass[:len(lsmClass):len(lsmClass)]
	lsmSig = lsmClass[:len(lsmSig)]

	// First see if we have this class
	txn := cat.db.NewTransaction(true)
	defer txn.Discard()

	isNewSig := false
	isNewClass := false
	_, err = txn.Get(lsmSig)
	if err == badger.ErrKeyNotFound {
		isNewSig = true
		isNewClass = true
	} else {
		_, err = txn.Get(lsmClass)
		if err == badger.ErrKeyNotFound {
			isNewClass = true
		}
	}

	if !isNewClass {
		return false
	}

	cat.state.BumpMotifCount(order)
	cat.stateDirty = true

	// Write the new entries
	{
		if isNewSig {
			err = txn.SetEntry(badger.NewEntry(lsmSig, nil).WithMeta(gSigHeaderFlag))
			if err != nil {
				panic(err)
			}
		}
		err = txn.Set(lsmClass, X.ExportGraphDef())
		if err != nil {
			panic(err)
		}

		err = txn.Commit()
		if err != nil {
			panic(err)
		}
	}

	return true
}

// Select will call onHit() with all stored motifs matching the given search criteria.
//
// Enumeration runs in ascending motif order, grouped by signature.
func (cat *catalog) Select(sel gomotif.MotifSelector, onHit gomotif.OnMotifHit) {
	minKey := [1]byte{byte(sel.Min.NumVerts)}

	txn := cat.db.NewTransaction(false)
	defer txn.Discard()

	it := txn.NewIterator(badger.IteratorOptions{
		PrefetchValues: true,
		PrefetchSize:   300,
	})
	defer it.Close()

	for it.Seek(minKey[:]); it.Valid(); it.Next() {
		curItem := it.Item()
		curKey := curItem.Key()

		if bytes.Equal(curKey, gCatalogStateKey) {
			continue
		}

		// Stop when the motif order is over the max
		if int32(curKey[0]) > sel.Max.NumVerts {
			break
		}

		// Signature headers carry no graph
		if curItem.UserMeta()&gSigHeaderFlag != 0 {
			continue
		}

		err := curItem.Value(func(val []byte) error {
			X, err := libmotif.NewGraphFromDef(val)
			if err != nil {
				return err
			}
			if sel.Allow(X.GetInfo()) {
				onHit <- X
			} else {
				X.Reclaim()
			}
			return nil
		})
		if err != nil {
			panic(err)
		}
	}
}
