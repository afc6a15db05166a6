package repositoryImp

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"farmtrack/database"
	"farmtrack/entities"
	"farmtrack/pkg/apperr"
	"farmtrack/pkg/farmer/repository"
)

type mongoRepo struct{ c *mongo.Collection }

func NewMongo(db *mongo.Database) repository.FarmerRepository {
	return &mongoRepo{c: db.Collection(database.FarmersCollection)}
}

func (r *mongoRepo) Create(ctx context.Context, f *entities.Farmer) error {
	_, err := r.c.InsertOne(ctx, f)
	return database.TranslateMongo(err, "create farmer", "farmer")
}

func (r *mongoRepo) FindByID(ctx context.Context, id string) (*entities.Farmer, error) {
	var f entities.Farmer
	if err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		return nil, database.TranslateMongo(err, "find farmer", "farmer")
	}
	return &f, nil
}

func (r *mongoRepo) List(ctx context.Context) ([]entities.Farmer, error) {
	cur, err := r.c.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, database.TranslateMongo(err, "list farmers", "farmer")
	}
	out := []entities.Farmer{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, database.TranslateMongo(err, "list farmers", "farmer")
	}
	return out, nil
}

func (r *mongoRepo) Update(ctx context.Context, f *entities.Farmer) error {
	raw, err := bson.Marshal(f)
	if err != nil {
		return apperr.Storage("encode farmer", err)
	}
	var set bson.M
	if err := bson.Unmarshal(raw, &set); err != nil {
		return apperr.Storage("encode farmer", err)
	}
	for _, k := range []string{"_id", "cultivation", "created_at"} {
		delete(set, k)
	}
	res, err := r.c.UpdateOne(ctx, bson.M{"_id": f.ID}, bson.M{"$set": set})
	if err != nil {
		return database.TranslateMongo(err, "update farmer", "farmer")
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("farmer not found")
	}
	return nil
}

func (r *mongoRepo) Delete(ctx context.Context, id string) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return database.TranslateMongo(err, "delete farmer", "farmer")
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("farmer not found")
	}
	return nil
}

func (r *mongoRepo) IdentityExists(ctx context.Context, id string) (bool, error) {
	n, err := r.c.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, database.TranslateMongo(err, "check farmer id", "farmer")
	}
	return n > 0, nil
}

func (r *mongoRepo) AppendCultivation(ctx context.Context, farmerID, cultivationID string, at time.Time) error {
	res, err := r.c.UpdateOne(ctx, bson.M{"_id": farmerID}, bson.M{
		"$push": bson.M{"cultivation": cultivationID},
		"$set":  bson.M{"updated_at": at},
	})
	if err != nil {
		return database.TranslateMongo(err, "link cultivation", "farmer")
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("farmer not found")
	}
	return nil
}
