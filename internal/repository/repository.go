package repository

import "github.com/jackc/pgx/v5/pgxpool"

type Repository struct {
	User       *UserRepository
	Credential *CredentialRepository
	Interview  *InterviewRepository
	Feedback   *FeedbackRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		User:       &UserRepository{db: db},
		Credential: &CredentialRepository{db: db},
		Interview:  &InterviewRepository{db: db},
		Feedback:   &FeedbackRepository{db: db},
	}
}
