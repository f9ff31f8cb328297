package services

import (
	"context"
	"errors"

	"gin-shoplist/apperrors"
	"gin-shoplist/constants"
	"gin-shoplist/dto"
	"gin-shoplist/models"
	"gin-shoplist/repositories"
	"gin-shoplist/security"

	"github.com/rs/zerolog/log"
)

type IUserService interface {
	FindAll(ctx context.Context) (*dto.UsersResource, error)
	FindByID(ctx context.Context, id string) (*dto.UserResource, error)
	Create(ctx context.Context, input dto.CreateUserInput) (*dto.UserResource, error)
	Update(ctx context.Context, input dto.UpdateUserInput) (*dto.UserResource, error)
	Delete(ctx context.Context, id string) error
}

type UserService struct {
	store  *repositories.Store
	hasher security.PasswordHasher
}

func NewUserService(store *repositories.Store, hasher security.PasswordHasher) IUserService {
	return &UserService{store: store, hasher: hasher}
}

func (s *UserService) FindAll(ctx context.Context) (*dto.UsersResource, error) {
	users, err := s.store.Users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resource := &dto.UsersResource{Users: make([]dto.UserResource, 0, len(users))}
	for i := range users {
		resource.Users = append(resource.Users, *toUserResource(&users[i]))
	}
	return resource, nil
}

func (s *UserService) FindByID(ctx context.Context, id string) (*dto.UserResource, error) {
	user, err := s.store.Users.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, constants.ErrUserNotFound)
	}
	return toUserResource(user), nil
}

func (s *UserService) Create(ctx context.Context, input dto.CreateUserInput) (*dto.UserResource, error) {
	user := &models.User{
		Name:  input.Name,
		Email: normalizeEmail(input.Email),
	}
	if input.Admin != nil {
		user.Admin = *input.Admin
	}
	user.SetPassword(input.Password)

	err := s.store.Transaction(ctx, func(tx *repositories.Store) error {
		if err := ensureUnique(ctx, tx.Users, user.Email, user.Name); err != nil {
			return err
		}
		return s.persist(ctx, tx.Users, user, true)
	})
	if err != nil {
		return nil, err
	}
	return toUserResource(user), nil
}

func (s *UserService) Update(ctx context.Context, input dto.UpdateUserInput) (*dto.UserResource, error) {
	if input.ID == "" {
		return nil, apperrors.NewNotFound(constants.ErrUserNotFound)
	}

	var user *models.User
	err := s.store.Transaction(ctx, func(tx *repositories.Store) error {
		var err error
		user, err = tx.Users.FindByID(ctx, input.ID)
		if err != nil {
			return notFoundOr(err, constants.ErrUserNotFound)
		}

		var newEmail, newName string
		if input.Email != nil {
			if email := normalizeEmail(*input.Email); email != user.Email {
				newEmail = email
			}
		}
		if input.Name != nil && *input.Name != user.Name {
			newName = *input.Name
		}
		if err := ensureUnique(ctx, tx.Users, newEmail, newName); err != nil {
			return err
		}

		if newEmail != "" {
			user.Email = newEmail
		}
		if newName != "" {
			user.Name = newName
		}
		if input.Admin != nil {
			user.Admin = *input.Admin
		}
		if input.Password != nil {
			user.SetPassword(*input.Password)
		}
		return s.persist(ctx, tx.Users, user, false)
	})
	if err != nil {
		return nil, err
	}
	return toUserResource(user), nil
}

// Delete removes the user together with every list it owns and their items.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.NewNotFound(constants.ErrUserNotFound)
	}
	return s.store.Transaction(ctx, func(tx *repositories.Store) error {
		if _, err := tx.Users.FindByID(ctx, id); err != nil {
			return notFoundOr(err, constants.ErrUserNotFound)
		}

		listIDs, err := tx.ShopLists.FindIDsByCreator(ctx, id)
		if err != nil {
			return err
		}
		for _, listID := range listIDs {
			if err := deleteShopList(ctx, tx, listID); err != nil {
				return err
			}
		}

		deleted, err := tx.Users.Delete(ctx, id)
		if err != nil {
			return err
		}
		if deleted != 1 {
			return apperrors.NewNotFound(constants.ErrUserNotFound)
		}
		log.Debug().Str("user_id", id).Int("shop_lists", len(listIDs)).Msg("user deleted")
		return nil
	})
}

// persist は平文パスワードをハッシュ化する唯一の場所
func (s *UserService) persist(ctx context.Context, users repositories.IUserRepository, user *models.User, isNew bool) error {
	if plain, ok := user.PendingPassword(); ok {
		hash, err := s.hasher.Hash(plain)
		if err != nil {
			return err
		}
		user.ApplyPasswordHash(hash)
	}

	var err error
	if isNew {
		err = users.Create(ctx, user)
	} else {
		err = users.Update(ctx, user)
	}
	switch {
	case errors.Is(err, repositories.ErrDuplicateKey):
		return apperrors.NewDuplicateKey("Duplicate email or name")
	case errors.Is(err, repositories.ErrNotFound):
		return apperrors.NewNotFound(constants.ErrUserNotFound)
	}
	return err
}

// ensureUnique skips empty values.
func ensureUnique(ctx context.Context, users repositories.IUserRepository, email string, name string) error {
	if email != "" {
		count, err := users.CountByEmail(ctx, email)
		if err != nil {
			return err
		}
		if count > 0 {
			return apperrors.NewDuplicateKey(constants.ErrDuplicateEmail)
		}
	}
	if name != "" {
		count, err := users.CountByName(ctx, name)
		if err != nil {
			return err
		}
		if count > 0 {
			return apperrors.NewDuplicateKey(constants.ErrDuplicateName)
		}
	}
	return nil
}
