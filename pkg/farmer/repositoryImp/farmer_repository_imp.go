package repositoryImp

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"farmtrack/database"
	"farmtrack/entities"
	"farmtrack/pkg/apperr"
	"farmtrack/pkg/farmer/repository"
)

type farmerRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmerRepository { return &farmerRepo{db} }

func (r *farmerRepo) Create(ctx context.Context, f *entities.Farmer) error {
	return database.Translate(database.Conn(ctx, r.db).Create(f).Error, "create farmer", "farmer")
}

func (r *farmerRepo) FindByID(ctx context.Context, id string) (*entities.Farmer, error) {
	var f entities.Farmer
	if err := database.Conn(ctx, r.db).Where("id = ?", id).First(&f).Error; err != nil {
		return nil, database.Translate(err, "find farmer", "farmer")
	}
	return &f, nil
}

func (r *farmerRepo) List(ctx context.Context) ([]entities.Farmer, error) {
	out := []entities.Farmer{}
	if err := database.Conn(ctx, r.db).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, database.Translate(err, "list farmers", "farmer")
	}
	return out, nil
}

func (r *farmerRepo) Update(ctx context.Context, f *entities.Farmer) error {
	res := database.Conn(ctx, r.db).
		Model(&entities.Farmer{ID: f.ID}).
		Select("*").
		Omit("id", "cultivation", "created_at").
		Updates(f)
	if res.Error != nil {
		return database.Translate(res.Error, "update farmer", "farmer")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("farmer not found")
	}
	return nil
}

func (r *farmerRepo) Delete(ctx context.Context, id string) error {
	res := database.Conn(ctx, r.db).Where("id = ?", id).Delete(&entities.Farmer{})
	if res.Error != nil {
		return database.Translate(res.Error, "delete farmer", "farmer")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("farmer not found")
	}
	return nil
}

func (r *farmerRepo) IdentityExists(ctx context.Context, id string) (bool, error) {
	var n int64
	if err := database.Conn(ctx, r.db).Model(&entities.Farmer{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, database.Translate(err, "check farmer id", "farmer")
	}
	return n > 0, nil
}

// lockForLink selects the farmer's list with FOR UPDATE so concurrent links
// inside transactions serialize on the row. SQLite drops the clause and
// serializes writers on the database lock instead.
func lockForLink(conn *gorm.DB, farmerID string) *gorm.DB {
	return conn.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "cultivation").
		Where("id = ?", farmerID)
}

// AppendCultivation is a read-modify-write under a row lock; run it inside a
// transaction when concurrent links to the same farmer are possible.
func (r *farmerRepo) AppendCultivation(ctx context.Context, farmerID, cultivationID string, at time.Time) error {
	conn := database.Conn(ctx, r.db)
	var f entities.Farmer
	if err := lockForLink(conn, farmerID).First(&f).Error; err != nil {
		return database.Translate(err, "find farmer", "farmer")
	}
	f.Cultivation = append(f.Cultivation, cultivationID)
	err := conn.Model(&entities.Farmer{}).Where("id = ?", farmerID).
		Updates(map[string]any{"cultivation": f.Cultivation, "updated_at": at}).Error
	return database.Translate(err, "link cultivation", "farmer")
}
