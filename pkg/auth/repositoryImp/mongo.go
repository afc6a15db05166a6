package repositoryImp

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"farmtrack/database"
	"farmtrack/entities"
	"farmtrack/pkg/auth/repository"
)

type mongoRepo struct{ c *mongo.Collection }

func NewMongo(db *mongo.Database) repository.UserRepository {
	return &mongoRepo{c: db.Collection(database.UsersCollection)}
}

func (r *mongoRepo) Create(ctx context.Context, u *entities.User) error {
	_, err := r.c.InsertOne(ctx, u)
	return database.TranslateMongo(err, "create user", "user")
}

func (r *mongoRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoRepo) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoRepo) findOne(ctx context.Context, filter bson.M) (*entities.User, error) {
	var u entities.User
	if err := r.c.FindOne(ctx, filter).Decode(&u); err != nil {
		return nil, database.TranslateMongo(err, "find user", "user")
	}
	return &u, nil
}

func (r *mongoRepo) List(ctx context.Context) ([]entities.User, error) {
	cur, err := r.c.Find(ctx, bson.D{}, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetProjection(bson.M{"password": 0}))
	if err != nil {
		return nil, database.TranslateMongo(err, "list users", "user")
	}
	out := []entities.User{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, database.TranslateMongo(err, "list users", "user")
	}
	return out, nil
}
