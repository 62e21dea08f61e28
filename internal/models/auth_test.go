package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar.nationaldaily.com/internal/models"
)

func TestDefaultUsers(t *testing.T) {
	users := models.DefaultUsers()
	require.Len(t, users, 4)

	roles := make(map[string]models.Role)
	for _, user := range users {
		roles[user.Email] = user.Role
	}

	assert.Equal(t, models.RoleAdmin, roles["slyehis@gmail.com"])
	assert.Equal(t, models.RoleAdmin, roles["ntaelizabeth7@gmail.com"])
	assert.Equal(t, models.RoleAdmin, roles["admin@nationaldaily.com"])
	assert.Equal(t, models.RoleEditor, roles["editor@nationaldaily.com"])
}

func TestUserPublic(t *testing.T) {
	user := models.User{
		Name:     "Admin User",
		Email:    "admin@nationaldaily.com",
		Role:     models.RoleAdmin,
		Password: "password123",
	}

	assert.Empty(t, user.Public().Password)
	assert.True(t, user.EmailEquals("Admin@NationalDaily.com"))
}
