package repositoryImp

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"farmtrack/database"
	"farmtrack/entities"
	"farmtrack/pkg/apperr"
	"farmtrack/pkg/cultivation/repository"
)

type mongoRepo struct{ c *mongo.Collection }

func NewMongo(db *mongo.Database) repository.CultivationRepository {
	return &mongoRepo{c: db.Collection(database.CultivationsCollection)}
}

func (r *mongoRepo) Create(ctx context.Context, c *entities.Cultivation) error {
	_, err := r.c.InsertOne(ctx, c)
	return database.TranslateMongo(err, "create cultivation", "cultivation")
}

func (r *mongoRepo) Delete(ctx context.Context, id string) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return database.TranslateMongo(err, "delete cultivation", "cultivation")
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("cultivation not found")
	}
	return nil
}

func (r *mongoRepo) List(ctx context.Context) ([]entities.Cultivation, error) {
	return r.find(ctx, bson.D{}, "list cultivations")
}

func (r *mongoRepo) FindByIDs(ctx context.Context, ids []string) ([]entities.Cultivation, error) {
	if len(ids) == 0 {
		return []entities.Cultivation{}, nil
	}
	found, err := r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, "find cultivations")
	if err != nil {
		return nil, err
	}
	return inOrder(ids, found), nil
}

func (r *mongoRepo) find(ctx context.Context, filter any, op string) ([]entities.Cultivation, error) {
	cur, err := r.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, database.TranslateMongo(err, op, "cultivation")
	}
	out := []entities.Cultivation{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, database.TranslateMongo(err, op, "cultivation")
	}
	return out, nil
}
