package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectPostgres(dsn string) (*gorm.DB, error) {
	// TranslateError maps driver errors to gorm sentinels (ErrDuplicatedKey etc).
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}
