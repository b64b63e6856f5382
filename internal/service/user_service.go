package service

import (
	"recycle-backend/internal/errors"
	"recycle-backend/internal/model"
	"recycle-backend/internal/repository/interfaces"
	"recycle-backend/internal/util"

	"go.uber.org/zap"
)

// UserService 处理用户相关的业务逻辑
type UserService struct {
	userRepo interfaces.UserRepository
}

// NewUserService 创建一个新的 UserService 实例
func NewUserService(userRepo interfaces.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers 后台用户列表
func (s *UserService) ListUsers(q model.UserQuery) ([]model.UserListItem, int, error) {
	users, total, err := s.userRepo.List(q)
	if err != nil {
		return nil, 0, err
	}

	items := make([]model.UserListItem, 0, len(users))
	for _, u := range users {
		carbon := 0.0
		if u.TotalCarbonKg != nil {
			carbon = *u.TotalCarbonKg
		}
		items = append(items, model.UserListItem{
			ID:            u.ID,
			UserCode:      util.UserCode(u.ID),
			Nickname:      u.Nickname,
			AvatarURL:     u.AvatarURL,
			Phone:         u.Phone,
			LevelName:     u.LevelName,
			CurrentPoints: u.CurrentPoints,
			TotalCarbonKg: carbon,
			RecycleCount:  u.RecycleCount,
			Status:        model.UserStatusLabel(u.Status),
			CreatedAt:     util.FormatDateTime(u.CreatedAt),
		})
	}
	return items, total, nil
}

// GetUserDetail 用户详情，含默认地址
func (s *UserService) GetUserDetail(id int) (*model.UserDetailResponse, error) {
	detail, err := s.userRepo.FindDetail(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, errors.New(errors.ErrUserNotFound, "User not found")
	}

	carbon := 0.0
	if detail.TotalCarbonKg != nil {
		carbon = *detail.TotalCarbonKg
	}
	return &model.UserDetailResponse{
		ID:             detail.ID,
		UserCode:       util.UserCode(detail.ID),
		Nickname:       detail.Nickname,
		AvatarURL:      detail.AvatarURL,
		Phone:          detail.Phone,
		LevelName:      detail.LevelName,
		TotalPoints:    detail.TotalPoints,
		CurrentPoints:  detail.CurrentPoints,
		TotalCarbonKg:  carbon,
		RecycleCount:   detail.RecycleCount,
		CreatedAt:      util.FormatDateTime(detail.CreatedAt),
		UpdatedAt:      util.FormatDateTime(detail.UpdatedAt),
		DefaultAddress: detail.DefaultAddr,
		Status:         "正常",
	}, nil
}

// ToggleStatus 切换用户禁用状态，返回切换后的状态文案
func (s *UserService) ToggleStatus(id int) (string, error) {
	status, err := s.userRepo.GetStatus(id)
	if err != nil {
		return "", err
	}
	if status == nil {
		return "", errors.New(errors.ErrUserNotFound, "User not found")
	}

	newStatus := 0
	if *status != 1 {
		newStatus = 1
	}
	if err := s.userRepo.UpdateStatus(id, newStatus); err != nil {
		return "", err
	}

	util.Logger.Info("用户状态已切换", zap.Int("user_id", id), zap.Int("status", newStatus))
	return model.UserStatusLabel(newStatus), nil
}

// ListLevels 等级列表及各等级人数
func (s *UserService) ListLevels() ([]model.UserLevel, error) {
	return s.userRepo.ListLevels()
}

// GetProfile 小程序端个人信息
func (s *UserService) GetProfile(userID int) (*model.MPUserProfile, error) {
	u, err := s.userRepo.FindProfile(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.New(errors.ErrUserNotFound, "User not found")
	}

	carbon := 0.0
	if u.TotalCarbonKg != nil {
		carbon = *u.TotalCarbonKg
	}
	return &model.MPUserProfile{
		ID:            u.ID,
		Nickname:      u.Nickname,
		AvatarURL:     u.AvatarURL,
		Phone:         u.Phone,
		LevelName:     u.LevelName,
		TotalPoints:   u.TotalPoints,
		CurrentPoints: u.CurrentPoints,
		TotalCarbonKg: carbon,
		RecycleCount:  u.RecycleCount,
	}, nil
}

// Ranking 积分/减碳排行榜，rank 从 1 开始
func (s *UserService) Ranking(rankType string, limit int) ([]model.RankingEntry, error) {
	entries, err := s.userRepo.Ranking(rankType == "carbon", limit)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// Login 手机号登录，签发小程序令牌
func (s *UserService) Login(phone string) (string, *model.MPUserProfile, error) {
	u, err := s.userRepo.FindByPhone(phone)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, errors.New(errors.ErrUserNotFound, "用户不存在")
	}
	if u.Status != 1 {
		return "", nil, errors.New(errors.ErrUnauthorized, "用户已禁用")
	}

	token, err := util.GenerateToken(u.ID)
	if err != nil {
		util.Logger.Error("签发令牌失败", zap.Int("user_id", u.ID), zap.Error(err))
		return "", nil, err
	}

	carbon := 0.0
	if u.TotalCarbonKg != nil {
		carbon = *u.TotalCarbonKg
	}
	profile := &model.MPUserProfile{
		ID:            u.ID,
		Nickname:      u.Nickname,
		AvatarURL:     u.AvatarURL,
		Phone:         u.Phone,
		LevelName:     u.LevelName,
		TotalPoints:   u.TotalPoints,
		CurrentPoints: u.CurrentPoints,
		TotalCarbonKg: carbon,
		RecycleCount:  u.RecycleCount,
	}
	return token, profile, nil
}
