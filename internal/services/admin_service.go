package services

import (
	"fmt"

	"kbbq/internal/models"
	"kbbq/internal/repositories"
)

// DashboardStats feeds the admin dashboard. Sales are not tracked because
// orders are not stored.
type DashboardStats struct {
	TotalSales  float64  `json:"totalSales"`
	TopDishes   []string `json:"topDishes"`
	ActiveUsers int64    `json:"activeUsers"`
}

// AdminService handles user management and dashboard data.
type AdminService struct {
	userRepo repositories.UserRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(userRepo repositories.UserRepository) *AdminService {
	return &AdminService{
		userRepo: userRepo,
	}
}

func (s *AdminService) Stats() (DashboardStats, error) {
	n, err := s.userRepo.Count()
	if err != nil {
		return DashboardStats{}, err
	}
	return DashboardStats{TotalSales: 0, TopDishes: []string{}, ActiveUsers: n}, nil
}

func (s *AdminService) Users() ([]models.User, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// ChangeRole assigns role to the user with the given ID.
func (s *AdminService) ChangeRole(userID, role string) error {
	if !models.ValidRole(role) {
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	return s.userRepo.UpdateRole(userID, role)
}
