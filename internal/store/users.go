package store

import (
	"context"
	"fmt"

	"github.com/shrimpsizemoose/klassrum/internal/models"
)

const selectUser = `
	SELECT user_id, name, subrole, department, email
	FROM users
`

func (s *BaseStore) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.DB.SelectContext(ctx, &users, selectUser+` ORDER BY user_id`); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *BaseStore) GetUser(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	found, err := s.getOne(ctx, &user, selectUser+` WHERE user_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}

func (s *BaseStore) GetUserByName(ctx context.Context, name string) (*models.User, error) {
	var user models.User
	found, err := s.getOne(ctx, &user, selectUser+` WHERE name = ? ORDER BY user_id LIMIT 1`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by name: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}

// SearchUsers finds users of a department whose name contains namePart
func (s *BaseStore) SearchUsers(ctx context.Context, department, namePart string) ([]models.User, error) {
	var users []models.User
	query := s.Converter(selectUser + ` WHERE department = ? AND name LIKE ? ORDER BY user_id`)
	if err := s.DB.SelectContext(ctx, &users, query, department, "%"+namePart+"%"); err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return users, nil
}

func (s *BaseStore) CreateUser(ctx context.Context, user *models.User) error {
	query := s.Converter(`
		INSERT INTO users (name, subrole, department, email)
		VALUES (?, ?, ?, ?)
		RETURNING user_id
	`)
	err := s.DB.GetContext(ctx, &user.ID, query,
		user.Name,
		user.Subrole,
		user.Department,
		user.Email,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *BaseStore) UpdateUser(ctx context.Context, user *models.User) error {
	_, err := s.DB.NamedExecContext(ctx, `
		UPDATE users SET
		name = :name,
		subrole = :subrole,
		department = :department,
		email = :email
		WHERE user_id = :user_id
	`, user)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (s *BaseStore) DeleteUser(ctx context.Context, id int) (bool, error) {
	deleted, err := s.deleteByID(ctx, `DELETE FROM users WHERE user_id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}
	return deleted, nil
}
