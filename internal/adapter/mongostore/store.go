package mongostore

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"crowdcube/internal/domain"
)

// Store implements domain.Store on top of a MongoDB database.
type Store struct {
	db     *mongo.Database
	logger zerolog.Logger
}

// New wraps db. The caller owns the underlying client and its lifecycle.
func New(db *mongo.Database, logger zerolog.Logger) *Store {
	return &Store{db: db, logger: logger}
}

func (s *Store) Collection(name string) domain.Collection {
	return &Collection{
		coll:   s.db.Collection(name),
		logger: s.logger.With().Str("collection", name).Logger(),
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

// Collection implements domain.Collection for a single MongoDB collection.
type Collection struct {
	coll   *mongo.Collection
	logger zerolog.Logger
}

func (c *Collection) Find(ctx context.Context, filter domain.Filter) ([]domain.Document, error) {
	f, err := toBSON(filter)
	if err != nil {
		return nil, err
	}
	c.logger.Debug().Interface("filter", f).Msg("mongo find")
	cursor, err := c.coll.Find(ctx, f)
	if err != nil {
		c.logger.Error().Err(err).Msg("mongo find failed")
		return nil, fmt.Errorf("find: %w", err)
	}
	var rows []bson.M
	if err := cursor.All(ctx, &rows); err != nil {
		c.logger.Error().Err(err).Msg("mongo cursor failed")
		return nil, fmt.Errorf("read cursor: %w", err)
	}
	docs := make([]domain.Document, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, domain.Document(row))
	}
	return docs, nil
}

func (c *Collection) FindOne(ctx context.Context, filter domain.Filter) (domain.Document, error) {
	f, err := toBSON(filter)
	if err != nil {
		return nil, err
	}
	c.logger.Debug().Interface("filter", f).Msg("mongo find one")
	var row bson.M
	if err := c.coll.FindOne(ctx, f).Decode(&row); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		c.logger.Error().Err(err).Msg("mongo find one failed")
		return nil, fmt.Errorf("find one: %w", err)
	}
	return domain.Document(row), nil
}

func (c *Collection) InsertOne(ctx context.Context, doc domain.Document) (*domain.InsertResult, error) {
	if doc == nil {
		doc = domain.Document{}
	}
	res, err := c.coll.InsertOne(ctx, map[string]any(doc))
	if err != nil {
		c.logger.Error().Err(err).Msg("mongo insert failed")
		return nil, fmt.Errorf("insert: %w", err)
	}
	c.logger.Debug().Interface("id", res.InsertedID).Msg("mongo insert ok")
	return &domain.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (c *Collection) UpdateOne(ctx context.Context, filter domain.Filter, set domain.Document, opts domain.UpdateOptions) (*domain.UpdateResult, error) {
	f, err := toBSON(filter)
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": map[string]any(set)}
	res, err := c.coll.UpdateOne(ctx, f, update, options.Update().SetUpsert(opts.Upsert))
	if err != nil {
		c.logger.Error().Err(err).Msg("mongo update failed")
		return nil, fmt.Errorf("update: %w", err)
	}
	c.logger.Debug().Int64("matched", res.MatchedCount).Int64("modified", res.ModifiedCount).Msg("mongo update ok")
	return &domain.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

func (c *Collection) DeleteOne(ctx context.Context, filter domain.Filter) (*domain.DeleteResult, error) {
	f, err := toBSON(filter)
	if err != nil {
		return nil, err
	}
	res, err := c.coll.DeleteOne(ctx, f)
	if err != nil {
		c.logger.Error().Err(err).Msg("mongo delete failed")
		return nil, fmt.Errorf("delete: %w", err)
	}
	c.logger.Debug().Int64("deleted", res.DeletedCount).Msg("mongo delete ok")
	return &domain.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// toBSON converts a domain filter, turning domain.ID values into ObjectIDs.
func toBSON(filter domain.Filter) (bson.M, error) {
	out := make(bson.M, len(filter))
	for key, val := range filter {
		id, ok := val.(domain.ID)
		if !ok {
			out[key] = val
			continue
		}
		oid, err := ParseID(id)
		if err != nil {
			return nil, err
		}
		out[key] = oid
	}
	return out, nil
}

// ParseID converts a client supplied identifier into an ObjectID.
func ParseID(id domain.ID) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w %q: %v", domain.ErrInvalidID, string(id), err)
	}
	return oid, nil
}

var (
	_ domain.Store      = (*Store)(nil)
	_ domain.Collection = (*Collection)(nil)
)
