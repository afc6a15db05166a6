package database

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"farmtrack/pkg/apperr"
)

// Translate maps a gorm error onto the apperr kinds. what names the missing
// record in NotFound messages.
func Translate(err error, op, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound("%s not found", what)
	case IsDuplicate(err):
		return apperr.Conflict(op+": duplicate key", err)
	}
	return apperr.Storage(op, err)
}

func IsDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) || mongo.IsDuplicateKeyError(err) {
		return true
	}
	// drivers without an error translator
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

func TranslateMongo(err error, op, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return apperr.NotFound("%s not found", what)
	case IsDuplicate(err):
		return apperr.Conflict(op+": duplicate key", err)
	}
	return apperr.Storage(op, err)
}
