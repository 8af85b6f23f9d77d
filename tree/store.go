package tree

import "context"

/*
Store is an interface to manage a store
where trees can be kept and retrieved by ID.

All its methods take a context that may allow
cancelling the operation (thus forcing the return
of an error) if the implementation allows it.
*/
type Store interface {
	// Create takes a tree and stores it for the
	// first time in the store, returning the ID
	// generated for it. It returns an error if the
	// tree cannot be stored.
	Create(ctx context.Context, t *Tree) (string, error)
	// Get takes an id and returns the tree in the
	// store with that id (or nil if it cannot be
	// found) or an error if the store cannot be
	// queried
	Get(ctx context.Context, id string) (*Tree, error)
	// Close closes the store, implementations should
	// free any resources in use as well as ensure
	// any pending changes are applied before returning
	// (unless the context expires). It returns an error
	// if the Close cannot be completed (because of the
	// context or another error)
	Close(ctx context.Context) error
}
