package db

import "gorm.io/gorm"

// Database abstracts the gorm handle so repositories can be constructed
// against a shared connection.
type Database interface {
	GetDB() *gorm.DB
}

type GormDatabase struct {
	DB *gorm.DB
}

func (g *GormDatabase) GetDB() *gorm.DB { return g.DB }
