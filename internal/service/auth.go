package service

import (
	"errors"

	"github.com/GanaviDGowda/MCE-Clashpoint/internal/middleware"
	"github.com/GanaviDGowda/MCE-Clashpoint/internal/model"
	"github.com/GanaviDGowda/MCE-Clashpoint/internal/pkg/database"

	"golang.org/x/crypto/bcrypt"
)

var Auth = new(AuthService)

type AuthService struct{}

// Register 注册新用户，学生必须提供学号
func (s *AuthService) Register(name, usn, email, password, role string) (*model.User, error) {
	if role != model.RoleStudent && role != model.RoleHost {
		return nil, errors.New("角色无效")
	}
	if role == model.RoleStudent && usn == "" {
		return nil, errors.New("学生必须填写学号")
	}

	// 检查邮箱是否已注册
	var count int64
	database.DB.Model(&model.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil, errors.New("邮箱已注册")
	}

	// 加密密码
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     name,
		USN:      usn,
		Email:    email,
		Password: string(hashedPassword),
		Role:     role,
	}
	if role != model.RoleStudent {
		user.USN = ""
	}

	if err := database.DB.Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

// Login 邮箱密码登录，role非空时要求账号角色一致
func (s *AuthService) Login(email, password, role string) (string, *model.User, error) {
	var user model.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", nil, errors.New("邮箱或密码错误")
	}

	// 角色不匹配和密码错误一样按登录失败处理
	if role != "" && user.Role != role {
		return "", nil, errors.New("该账号不是此角色")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("邮箱或密码错误")
	}

	// 使用中间件中的 GenerateToken 函数
	token, err := middleware.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}

// GetProfile 获取用户信息
func (s *AuthService) GetProfile(userID uint) (*model.User, error) {
	var user model.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("用户不存在")
	}
	return &user, nil
}
