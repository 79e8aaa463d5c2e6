package db

import "gorm.io/gorm"

type Repositories struct {
	Users    *UserRepository
	Journals *JournalRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		Journals: NewJournalRepository(database),
	}
}
