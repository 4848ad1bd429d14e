package domain

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// Role é o perfil do usuário no back-office
type Role int

const (
	RoleAdmin      Role = 1
	RoleSupervisor Role = 2 // gestor de tráfego
	RoleClient     Role = 3
)

// Claims são as informações do usuário carregadas no token emitido pelo back-office
type Claims struct {
	UserID     int    `json:"user_id"`
	UserName   string `json:"user_name"`
	UserEmail  string `json:"user_email"`
	UserRoleID int    `json:"user_role_id"`
	jwt.RegisteredClaims
}

func (c *Claims) Role() Role {
	return Role(c.UserRoleID)
}

func (c *Claims) HasRole(roles ...Role) bool {
	return c != nil && slices.Contains(roles, c.Role())
}
