package domain

// Document is a schema-flexible record stored in a collection.
type Document map[string]any

// Filter selects documents by exact equality on each of its keys.
type Filter map[string]any

// ID is an identifier as received from a client. Stores convert it to their
// native identifier type and fail with ErrInvalidID when it is malformed.
type ID string

// IDField is the key under which stores keep a document's identifier.
const IDField = "_id"

// ByID returns a filter matching the document with the given identifier.
func ByID(id string) Filter {
	return Filter{IDField: ID(id)}
}

// Eq returns a filter matching documents whose field equals value.
func Eq(field string, value any) Filter {
	return Filter{field: value}
}

type UpdateOptions struct {
	Upsert bool
}

// InsertResult mirrors the acknowledgement returned by the document store
// after an insert.
type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
