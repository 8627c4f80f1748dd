package libmotif

import (
	"fmt"
	"io"
	"strings"

	"github.com/netmotifs/gomotif/gomotif"
)

// AddMotifOpts alters MotifStream.AddTo behavior.
type AddMotifOpts struct {
	AutoCloseCatalog bool
}

// MotifStream is a pull-based pipeline of motif graphs.  Each stage owns the
// graphs it receives and either forwards or reclaims them.
type MotifStream struct {
	Outlet chan *Graph
}

func NewMotifStream() *MotifStream {
	stream := &MotifStream{
		Outlet: make(chan *Graph),
	}
	return stream
}

// StreamGraph wraps a single graph copy in a stream.
func StreamGraph(X *Graph) *MotifStream {
	next := NewMotifStream()

	go func() {
		next.Outlet <- NewGraph(X)
		next.Close()
	}()

	return next
}

// StreamCensusClasses streams the class representatives of a census in order,
// taking ownership of them (cr is emptied).
func StreamCensusClasses(cr *CensusResult) *MotifStream {
	next := &MotifStream{
		Outlet: make(chan *Graph, 1),
	}

	classes := cr.Classes
	cr.Classes = nil

	go func() {
		for _, mc := range classes {
			next.Outlet <- mc.Representative
		}
		next.Close()
	}()

	return next
}

func (stream *MotifStream) Close() {
	if stream.Outlet != nil {
		close(stream.Outlet)
	}
}

func (stream *MotifStream) PushGraph(X *Graph) {
	stream.Outlet <- NewGraph(X)
}

func (stream *MotifStream) PullGraph() *Graph {
	X := <-stream.Outlet
	return X
}

// PullAll drains the stream, returning how many graphs passed through.
func (stream *MotifStream) PullAll() int {
	count := int(0)
	for X := range stream.Outlet {
		count++
		X.Reclaim()
	}
	return count
}

func (stream *MotifStream) Print(
	out io.WriteCloser,
	opts gomotif.PrintOpts) *MotifStream {

	next := &MotifStream{
		Outlet: make(chan *Graph, 1),
	}

	go func() {
		buf := strings.Builder{}
		buf.Grow(256)

		count := 0
		for X := range stream.Outlet {
			if len(opts.Label) > 0 {
				buf.WriteString(opts.Label)
			}
			buf.WriteByte(',')

			count++
			fmt.Fprintf(&buf, "%06d,", count)
			X.WriteAsString(&buf, opts)
			out.Write([]byte(buf.String()))
			buf.Reset()
			next.Outlet <- X
		}
		out.Close()
		next.Close()
	}()

	return next
}

// AddTo forwards only the motifs whose isomorphism class was newly added to
// the target catalog.
func (stream *MotifStream) AddTo(target gomotif.Catalog, opts AddMotifOpts) *MotifStream {
	next := &MotifStream{
		Outlet: make(chan *Graph, 1),
	}

	go func() {
		for X := range stream.Outlet {
			wasAdded := target.TryAddMotif(X)
			if wasAdded {
				next.Outlet <- X
			} else {
				X.Reclaim()
			}
		}
		if opts.AutoCloseCatalog {
			target.Close()
		}
		next.Close()
	}()

	return next
}

// DropDupes forwards one graph per isomorphism class, dropping canonical
// duplicates via an in-memory LSM set.
func (stream *MotifStream) DropDupes() *MotifStream {
	next := &MotifStream{
		Outlet: make(chan *Graph, 1),
	}

	go func() {
		set := NewCanonicSet()
		for X := range stream.Outlet {
			if set.TryAdd(X) {
				next.Outlet <- X
			} else {
				X.Reclaim()
			}
		}
		set.Close()
		next.Close()
	}()

	return next
}

// SelectFromCatalog streams the stored motifs that meet the selection criteria.
func SelectFromCatalog(cat gomotif.Catalog, sel gomotif.MotifSelector) *MotifStream {
	next := &MotifStream{
		Outlet: make(chan *Graph, 1),
	}

	onHit := make(chan gomotif.State, 4)

	go func() {
		cat.Select(sel, onHit)
		close(onHit)
	}()

	go func() {
		for Xst := range onHit {
			if X, ok := Xst.(*Graph); ok {
				next.Outlet <- X
			} else {
				Xst.Reclaim()
			}
		}
		next.Close()
	}()

	return next
}

func (stream *MotifStream) SelectFromStream(sel gomotif.MotifSelector) *MotifStream {
	next := &MotifStream{
		Outlet: make(chan *Graph, 1),
	}

	go func() {
		for X := range stream.Outlet {
			if sel.Allow(X.GetInfo()) {
				next.Outlet <- X
			} else {
				X.Reclaim()
			}
		}
		next.Close()
	}()

	return next
}
