package domain

import "context"

// Collection names used by the API.
const (
	CollectionCampaigns = "campaign"
	CollectionUsers     = "users"
	CollectionDonations = "donated"
)

// Collection exposes the single-document primitives of a document store
// collection. FindOne returns a nil Document and no error when nothing matches.
type Collection interface {
	Find(ctx context.Context, filter Filter) ([]Document, error)
	FindOne(ctx context.Context, filter Filter) (Document, error)
	InsertOne(ctx context.Context, doc Document) (*InsertResult, error)
	UpdateOne(ctx context.Context, filter Filter, set Document, opts UpdateOptions) (*UpdateResult, error)
	DeleteOne(ctx context.Context, filter Filter) (*DeleteResult, error)
}

// Store hands out named collections backed by one long-lived connection.
type Store interface {
	Collection(name string) Collection
	Ping(ctx context.Context) error
}
