package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"farmtrack/database"
	"farmtrack/entities"
	"farmtrack/pkg/apperr"
	"farmtrack/pkg/cultivation/repository"
)

type cultivationRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CultivationRepository { return &cultivationRepo{db} }

func (r *cultivationRepo) Create(ctx context.Context, c *entities.Cultivation) error {
	return database.Translate(database.Conn(ctx, r.db).Create(c).Error, "create cultivation", "cultivation")
}

func (r *cultivationRepo) Delete(ctx context.Context, id string) error {
	res := database.Conn(ctx, r.db).Where("id = ?", id).Delete(&entities.Cultivation{})
	if res.Error != nil {
		return database.Translate(res.Error, "delete cultivation", "cultivation")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("cultivation not found")
	}
	return nil
}

func (r *cultivationRepo) List(ctx context.Context) ([]entities.Cultivation, error) {
	out := []entities.Cultivation{}
	if err := database.Conn(ctx, r.db).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, database.Translate(err, "list cultivations", "cultivation")
	}
	return out, nil
}

func (r *cultivationRepo) FindByIDs(ctx context.Context, ids []string) ([]entities.Cultivation, error) {
	if len(ids) == 0 {
		return []entities.Cultivation{}, nil
	}
	var found []entities.Cultivation
	if err := database.Conn(ctx, r.db).Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, database.Translate(err, "find cultivations", "cultivation")
	}
	return inOrder(ids, found), nil
}

func inOrder(ids []string, found []entities.Cultivation) []entities.Cultivation {
	byID := make(map[string]entities.Cultivation, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}
	out := make([]entities.Cultivation, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			out = append(out, c)
		}
	}
	return out
}
