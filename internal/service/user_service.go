package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/maheshrc27/contentops/internal/models"
	"github.com/maheshrc27/contentops/internal/repository"
	"github.com/maheshrc27/contentops/internal/transfer"
)

const entityUser = "user"

type UserService interface {
	GetUserInfo(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, actor models.Actor, id string, in *transfer.UserUpdate) (*models.User, error)
	RemoveUser(ctx context.Context, actor models.Actor, id string) error
}

type userService struct {
	u  repository.UserRepository
	ar activityRecorder
}

func NewUserService(u repository.UserRepository, al repository.ActivityLogRepository) UserService {
	return &userService{
		u:  u,
		ar: activityRecorder{al: al},
	}
}

func (s *userService) GetUserInfo(ctx context.Context, id string) (*models.User, error) {
	user, isExist, err := s.u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isExist {
		err = errors.New("user not found")
		slog.Info(err.Error())
		return nil, notFound(entityUser)
	}

	return user, nil
}

func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	return s.u.List(ctx)
}

func (s *userService) Update(ctx context.Context, actor models.Actor, id string, in *transfer.UserUpdate) (*models.User, error) {
	if actor.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}
	user, err := s.GetUserInfo(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Role != "" {
		if actor.UserID == id && in.Role != models.RoleAdmin {
			return nil, invalid("admins cannot demote themselves")
		}
		user.Role = in.Role
	}

	if err := s.u.Update(ctx, user); err != nil {
		return nil, storeErr(err, entityUser)
	}
	s.ar.record(ctx, actor, models.ActionUpdate, entityUser, id, user.Role)

	return user, nil
}

func (s *userService) RemoveUser(ctx context.Context, actor models.Actor, id string) error {
	if actor.Role != models.RoleAdmin {
		return ErrForbidden
	}
	if actor.UserID == id {
		return invalid("admins cannot remove themselves")
	}

	if err := s.u.Remove(ctx, id); err != nil {
		return storeErr(err, entityUser)
	}
	s.ar.record(ctx, actor, models.ActionDelete, entityUser, id, "")
	return nil
}
