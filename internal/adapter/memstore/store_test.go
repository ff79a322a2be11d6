package memstore

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"crowdcube/internal/domain"
)

func TestInsertAssignsObjectID(t *testing.T) {
	coll := New().Collection(domain.CollectionUsers)
	ctx := context.Background()

	res, err := coll.InsertOne(ctx, domain.Document{"name": "A"})
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	oid, ok := res.InsertedID.(primitive.ObjectID)
	require.True(t, ok)

	doc, err := coll.FindOne(ctx, domain.ByID(oid.Hex()))
	require.NoError(t, err)
	assert.Equal(t, "A", doc["name"])
	assert.Equal(t, oid, doc[domain.IDField])
}

func TestInsertCopiesDocument(t *testing.T) {
	coll := New().Collection(domain.CollectionUsers)
	ctx := context.Background()

	in := domain.Document{"name": "A"}
	_, err := coll.InsertOne(ctx, in)
	require.NoError(t, err)
	assert.NotContains(t, in, domain.IDField)

	in["name"] = "B"
	docs, err := coll.Find(ctx, domain.Filter{})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "A", docs[0]["name"])
}

func TestFindFiltersByEquality(t *testing.T) {
	coll := New().Collection(domain.CollectionDonations)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := coll.InsertOne(ctx, domain.Document{"donorEmail": "a@x.com", "n": i})
		require.NoError(t, err)
	}
	_, err := coll.InsertOne(ctx, domain.Document{"donorEmail": "b@x.com"})
	require.NoError(t, err)

	docs, err := coll.Find(ctx, domain.Eq(domain.DonorEmail, "a@x.com"))
	require.NoError(t, err)
	assert.Len(t, docs, 3)

	docs, err = coll.Find(ctx, domain.Eq(domain.DonorEmail, "nobody@x.com"))
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestCollectionsAreIsolated(t *testing.T) {
	store := New()
	ctx := context.Background()
	_, err := store.Collection(domain.CollectionUsers).InsertOne(ctx, domain.Document{"name": "A"})
	require.NoError(t, err)

	docs, err := store.Collection(domain.CollectionDonations).Find(ctx, domain.Filter{})
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestUpdateOne(t *testing.T) {
	coll := New().Collection(domain.CollectionCampaigns)
	ctx := context.Background()
	res, err := coll.InsertOne(ctx, domain.Document{"title": "A", "extra": 1})
	require.NoError(t, err)
	id := res.InsertedID.(primitive.ObjectID).Hex()

	upd, err := coll.UpdateOne(ctx, domain.ByID(id), domain.Document{"title": "B"}, domain.UpdateOptions{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, upd.MatchedCount)
	assert.EqualValues(t, 1, upd.ModifiedCount)

	upd, err = coll.UpdateOne(ctx, domain.ByID(id), domain.Document{"title": "B"}, domain.UpdateOptions{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, upd.MatchedCount)
	assert.EqualValues(t, 0, upd.ModifiedCount)

	doc, err := coll.FindOne(ctx, domain.ByID(id))
	require.NoError(t, err)
	assert.Equal(t, "B", doc["title"])
	assert.Equal(t, 1, doc["extra"])
}

func TestUpdateOneWithoutMatch(t *testing.T) {
	coll := New().Collection(domain.CollectionCampaigns)
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()

	upd, err := coll.UpdateOne(ctx, domain.ByID(id), domain.Document{"title": "B"}, domain.UpdateOptions{})
	require.NoError(t, err)
	assert.EqualValues(t, 0, upd.MatchedCount)

	upd, err = coll.UpdateOne(ctx, domain.ByID(id), domain.Document{"title": "B"}, domain.UpdateOptions{Upsert: true})
	require.NoError(t, err)
	assert.EqualValues(t, 1, upd.UpsertedCount)

	doc, err := coll.FindOne(ctx, domain.ByID(id))
	require.NoError(t, err)
	assert.Equal(t, "B", doc["title"])
}

func TestDeleteOne(t *testing.T) {
	coll := New().Collection(domain.CollectionCampaigns)
	ctx := context.Background()
	res, err := coll.InsertOne(ctx, domain.Document{"title": "A"})
	require.NoError(t, err)
	id := res.InsertedID.(primitive.ObjectID).Hex()

	del, err := coll.DeleteOne(ctx, domain.ByID(id))
	require.NoError(t, err)
	assert.EqualValues(t, 1, del.DeletedCount)

	del, err = coll.DeleteOne(ctx, domain.ByID(id))
	require.NoError(t, err)
	assert.EqualValues(t, 0, del.DeletedCount)
}

func TestMalformedIdentifier(t *testing.T) {
	coll := New().Collection(domain.CollectionCampaigns)
	ctx := context.Background()

	_, err := coll.FindOne(ctx, domain.ByID("xyz"))
	assert.ErrorIs(t, err, domain.ErrInvalidID)
	_, err = coll.UpdateOne(ctx, domain.ByID("xyz"), domain.Document{"title": "X"}, domain.UpdateOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidID)
	_, err = coll.DeleteOne(ctx, domain.ByID("xyz"))
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestConcurrentInserts(t *testing.T) {
	coll := New().Collection(domain.CollectionDonations)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := coll.InsertOne(ctx, domain.Document{"donorEmail": fmt.Sprintf("%d@x.com", i%5)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	docs, err := coll.Find(ctx, domain.Filter{})
	require.NoError(t, err)
	assert.Len(t, docs, 50)

	docs, err = coll.Find(ctx, domain.Eq(domain.DonorEmail, "0@x.com"))
	require.NoError(t, err)
	assert.Len(t, docs, 10)
}
