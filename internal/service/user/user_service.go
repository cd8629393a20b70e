package user

import (
	"github.com/gofrs/uuid"

	"github.com/datafield/asset-library-backend/internal/model/request"
	"github.com/datafield/asset-library-backend/internal/model/response"
	"github.com/datafield/asset-library-backend/internal/repository"
)

type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

func (s *UserService) CheckIfUserExistsByUsername(username string) bool {
	user, err := s.Repo.GetUserByUsername(username)
	if err != nil {
		return false
	}
	return user.ID != uuid.Nil
}

func (s *UserService) GetUserById(userID uuid.UUID) (response.User, error) {
	return s.Repo.GetUserById(userID)
}

func (s *UserService) GetUserByUsername(username string) (response.User, error) {
	return s.Repo.GetUserByUsername(username)
}

func (s *UserService) GetUserByAPIToken(apiToken string) (response.User, error) {
	return s.Repo.GetUserByAPIToken(apiToken)
}

func (s *UserService) CreateUserWithPassword(user *request.CreateUserWithPassword, apiToken string) (response.User, error) {
	return s.Repo.CreateUserWithPassword(user, apiToken)
}

func (s *UserService) RegenerateAPIToken(userID uuid.UUID, apiToken string) error {
	return s.Repo.RegenerateAPIToken(userID, apiToken)
}

func (s *UserService) GetAllUsers() ([]response.User, error) {
	return s.Repo.GetAllUsers()
}
