package service

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

type UserUpdateReq struct {
	Email    *string         `json:"email" binding:"omitempty,email"`
	FullName *string         `json:"fullName"`
	Role     *model.UserRole `json:"role" binding:"omitempty,oneof=student instructor admin"`
}

func (s *UserService) List(page, limit int) ([]model.User, int64, error) {
	return s.UserRepo.List(page, limit)
}

func (s *UserService) Get(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

// Update 管理员编辑用户；注册后角色只能经此路径变更
func (s *UserService) Update(id uint, req UserUpdateReq) (*model.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		_, err := s.UserRepo.FindByEmail(*req.Email)
		if err == nil {
			return nil, util.ErrEmailRegistered
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Role != nil {
		user.Role = *req.Role
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.UserRepo.Delete(id)
}
