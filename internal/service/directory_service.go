package service

import (
	"context"

	"mentorlink/api/internal/models"
	"mentorlink/api/internal/repository"
)

// DirectoryService answers point lookups and expertise searches over
// the user directory.
type DirectoryService struct {
	users repository.UserStore
}

func NewDirectoryService(users repository.UserStore) *DirectoryService {
	return &DirectoryService{users: users}
}

func (s *DirectoryService) GetUser(ctx context.Context, id string) (models.User, error) {
	return s.users.GetByID(ctx, id)
}

// SearchMentors matches mentors whose expertise equals the input tag,
// case-insensitively. Mentees never match. An empty result is not an
// error here; the handler maps it to not found.
func (s *DirectoryService) SearchMentors(ctx context.Context, expertise string) ([]models.User, error) {
	tag, ok := models.ParseExpertise(expertise)
	if !ok {
		return nil, ErrUnknownExpertise
	}

	return s.users.SearchByExpertise(ctx, tag)
}
