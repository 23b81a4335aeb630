package repository

import "github.com/marginiq/marginiq-api/internal/domain/entity"

// UserRepository is the persistence port for User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndCompany(email, companyID string) (*entity.User, error)
	GetByID(companyID, id string) (*entity.User, error)
}
