// Package store persists flash cards.
//
// The original tool's save step was dead code; this package replaces it
// with an explicit append-only Store interface and a JSON-lines file
// implementation. The prompt loop and CLI commands depend only on the
// interface, so tests can substitute in-memory fakes.
package store

import (
	"github.com/mmr-tortoise/vocab/internal/model"
)

// Store is an append-only card store. Append assigns identity (ID and
// CreatedAt) and returns the persisted card; List returns all cards in
// append order.
type Store interface {
	Append(card model.Card) (model.Card, error)
	List() ([]model.Card, error)
	Close() error
}
