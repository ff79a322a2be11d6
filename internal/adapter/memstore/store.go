// Package memstore keeps documents in process memory. It follows the
// semantics of the MongoDB store closely enough to back handler tests and
// local development without a database.
package memstore

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"crowdcube/internal/domain"
)

type Store struct {
	mu          sync.RWMutex
	collections map[string][]domain.Document
}

func New() *Store {
	return &Store{collections: make(map[string][]domain.Document)}
}

func (s *Store) Collection(name string) domain.Collection {
	return &Collection{store: s, name: name}
}

func (s *Store) Ping(context.Context) error { return nil }

// Collection implements domain.Collection over one named slice of documents.
type Collection struct {
	store *Store
	name  string
}

func (c *Collection) Find(_ context.Context, filter domain.Filter) ([]domain.Document, error) {
	f, err := normalize(filter)
	if err != nil {
		return nil, err
	}
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	out := make([]domain.Document, 0)
	for _, doc := range c.store.collections[c.name] {
		if matches(doc, f) {
			out = append(out, clone(doc))
		}
	}
	return out, nil
}

func (c *Collection) FindOne(_ context.Context, filter domain.Filter) (domain.Document, error) {
	f, err := normalize(filter)
	if err != nil {
		return nil, err
	}
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	for _, doc := range c.store.collections[c.name] {
		if matches(doc, f) {
			return clone(doc), nil
		}
	}
	return nil, nil
}

func (c *Collection) InsertOne(_ context.Context, doc domain.Document) (*domain.InsertResult, error) {
	stored := clone(doc)
	if stored == nil {
		stored = domain.Document{}
	}
	if _, ok := stored[domain.IDField]; !ok {
		stored[domain.IDField] = primitive.NewObjectID()
	}
	c.store.mu.Lock()
	c.store.collections[c.name] = append(c.store.collections[c.name], stored)
	c.store.mu.Unlock()
	return &domain.InsertResult{Acknowledged: true, InsertedID: stored[domain.IDField]}, nil
}

func (c *Collection) UpdateOne(_ context.Context, filter domain.Filter, set domain.Document, opts domain.UpdateOptions) (*domain.UpdateResult, error) {
	f, err := normalize(filter)
	if err != nil {
		return nil, err
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	for _, doc := range c.store.collections[c.name] {
		if !matches(doc, f) {
			continue
		}
		modified := false
		for key, val := range set {
			if key == domain.IDField {
				continue
			}
			if cur, ok := doc[key]; !ok || !reflect.DeepEqual(cur, val) {
				doc[key] = val
				modified = true
			}
		}
		res := &domain.UpdateResult{Acknowledged: true, MatchedCount: 1}
		if modified {
			res.ModifiedCount = 1
		}
		return res, nil
	}
	if !opts.Upsert {
		return &domain.UpdateResult{Acknowledged: true}, nil
	}
	doc := clone(domain.Document(f))
	for key, val := range set {
		doc[key] = val
	}
	if _, ok := doc[domain.IDField]; !ok {
		doc[domain.IDField] = primitive.NewObjectID()
	}
	c.store.collections[c.name] = append(c.store.collections[c.name], doc)
	return &domain.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: doc[domain.IDField]}, nil
}

func (c *Collection) DeleteOne(_ context.Context, filter domain.Filter) (*domain.DeleteResult, error) {
	f, err := normalize(filter)
	if err != nil {
		return nil, err
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	docs := c.store.collections[c.name]
	for i, doc := range docs {
		if matches(doc, f) {
			c.store.collections[c.name] = append(docs[:i:i], docs[i+1:]...)
			return &domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &domain.DeleteResult{Acknowledged: true}, nil
}

func normalize(filter domain.Filter) (domain.Filter, error) {
	out := make(domain.Filter, len(filter))
	for key, val := range filter {
		id, ok := val.(domain.ID)
		if !ok {
			out[key] = val
			continue
		}
		oid, err := primitive.ObjectIDFromHex(string(id))
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", domain.ErrInvalidID, string(id), err)
		}
		out[key] = oid
	}
	return out, nil
}

func matches(doc domain.Document, filter domain.Filter) bool {
	for key, want := range filter {
		got, ok := doc[key]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

// clone copies the top level of doc so callers cannot mutate stored state.
func clone(doc domain.Document) domain.Document {
	if doc == nil {
		return nil
	}
	out := make(domain.Document, len(doc))
	for key, val := range doc {
		out[key] = val
	}
	return out
}

var (
	_ domain.Store      = (*Store)(nil)
	_ domain.Collection = (*Collection)(nil)
)
