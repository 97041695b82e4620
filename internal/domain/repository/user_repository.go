package repository

import "github.com/akwaabafreight/tracking-api/internal/domain/entity"

// UserRepository is the persistence port for User. Find methods return
// (nil, nil) when no row matches.
type UserRepository interface {
	Create(user *entity.User) error
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
