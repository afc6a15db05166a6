package repositoryImp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"farmtrack/entities"
	"farmtrack/pkg/apperr"
)

const farmersNS = "farmtrack.farmers"

func TestMongoFarmerRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mt.Run("update sets mutable fields only", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		err := NewMongo(mt.DB).Update(ctx, &entities.Farmer{
			ID:          "Ramesh1234",
			Name:        "Ramesh",
			Village:     "Kothapalli",
			Status:      entities.StatusActive,
			Cultivation: []string{"c-1"},
			CreatedAt:   at,
			UpdatedAt:   at.Add(time.Hour),
		})
		require.NoError(mt, err)

		cmd := mt.GetStartedEvent().Command
		assert.Equal(mt, "Ramesh1234", cmd.Lookup("updates", "0", "q", "_id").StringValue())
		set := cmd.Lookup("updates", "0", "u", "$set").Document()
		assert.Equal(mt, "Kothapalli", set.Lookup("village").StringValue())
		assert.Equal(mt, "Active", set.Lookup("status").StringValue())
		assert.True(mt, at.Add(time.Hour).Equal(set.Lookup("updated_at").Time()))
		for _, k := range []string{"_id", "cultivation", "created_at"} {
			_, err := set.LookupErr(k)
			assert.Error(mt, err, "%s must not be overwritten", k)
		}
	})

	mt.Run("update unknown farmer", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := NewMongo(mt.DB).Update(ctx, &entities.Farmer{ID: "Ghost0000"})
		assert.True(mt, apperr.Is(err, apperr.KindNotFound))
	})

	mt.Run("append pushes id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		require.NoError(mt, NewMongo(mt.DB).AppendCultivation(ctx, "Ramesh1234", "c-2", at))

		u := mt.GetStartedEvent().Command.Lookup("updates", "0", "u").Document()
		assert.Equal(mt, "c-2", u.Lookup("$push", "cultivation").StringValue())
		assert.True(mt, at.Equal(u.Lookup("$set", "updated_at").Time()))
	})

	mt.Run("append to unknown farmer", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := NewMongo(mt.DB).AppendCultivation(ctx, "Ghost0000", "c-2", at)
		assert.True(mt, apperr.Is(err, apperr.KindNotFound))
	})

	mt.Run("duplicate id is a conflict", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key error"}))

		err := NewMongo(mt.DB).Create(ctx, &entities.Farmer{ID: "Ramesh1234", Name: "Ramesh"})
		assert.True(mt, apperr.Is(err, apperr.KindConflict))
	})

	mt.Run("find decodes document", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, farmersNS, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "Ramesh1234"},
			{Key: "name", Value: "Ramesh"},
			{Key: "land_size", Value: 2.5},
			{Key: "status", Value: "Active"},
			{Key: "cultivation", Value: bson.A{"c-1", "c-2"}},
		}))

		f, err := NewMongo(mt.DB).FindByID(ctx, "Ramesh1234")
		require.NoError(mt, err)
		assert.Equal(mt, "Ramesh", f.Name)
		assert.Equal(mt, 2.5, f.LandSize)
		assert.Equal(mt, entities.StatusActive, f.Status)
		assert.Equal(mt, []string{"c-1", "c-2"}, []string(f.Cultivation))
	})

	mt.Run("find unknown farmer", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, farmersNS, mtest.FirstBatch))

		_, err := NewMongo(mt.DB).FindByID(ctx, "Ghost0000")
		assert.True(mt, apperr.Is(err, apperr.KindNotFound))
	})
}
