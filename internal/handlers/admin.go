package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/bizcard/internal/authz"
	"github.com/example/bizcard/internal/middleware"
	"github.com/example/bizcard/internal/models"
	"github.com/example/bizcard/internal/utils"
)

// AdminHandler manages admin-only moderation endpoints.
type AdminHandler struct {
	db *gorm.DB
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

// ListUsers returns all registered users, newest first. The password hash
// is never serialized.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	var users []models.User
	if err := pg.Apply(h.db.Model(&models.User{})).
		Order("created_at desc").
		Find(&users).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"users":   users,
	})
}

// DeleteUser removes a user and all of their listings. Both deletions run
// in one transaction so a failure leaves neither applied. Admins cannot
// delete their own account.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
	}

	user, err := h.loadUser(c)
	if err != nil {
		return err
	}

	if authz.IsSelf(claims, user.ID) {
		return fiber.NewError(fiber.StatusBadRequest, "cannot delete your own account")
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		var cardIDs []uuid.UUID
		if err := tx.Model(&models.Card{}).
			Where("created_by = ?", user.ID).
			Pluck("id", &cardIDs).Error; err != nil {
			return err
		}

		if len(cardIDs) > 0 {
			if err := tx.Where("card_id IN ?", cardIDs).Delete(&models.CardLike{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", cardIDs).Delete(&models.Card{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", user.ID).Delete(&models.CardLike{}).Error; err != nil {
			return err
		}

		return tx.Delete(user).Error
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"msg":     "user and their listings deleted",
	})
}

// ToggleAdmin flips another user's admin flag. Admins cannot change their
// own status, which keeps at least the acting admin's session coherent.
func (h *AdminHandler) ToggleAdmin(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
	}

	user, err := h.loadUser(c)
	if err != nil {
		return err
	}

	if authz.IsSelf(claims, user.ID) {
		return fiber.NewError(fiber.StatusBadRequest, "cannot change your own admin status")
	}

	user.IsAdmin = !user.IsAdmin
	if err := h.db.Model(user).Update("is_admin", user.IsAdmin).Error; err != nil {
		return err
	}

	msg := "user removed from admin"
	if user.IsAdmin {
		msg = "user promoted to admin"
	}

	return c.JSON(fiber.Map{
		"success": true,
		"msg":     msg,
		"user":    userSummary(user),
	})
}

// Stats returns aggregate counts and the most recent users and cards for
// the admin dashboard.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	var totalUsers int64
	if err := h.db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		return err
	}

	var totalCards int64
	if err := h.db.Model(&models.Card{}).Count(&totalCards).Error; err != nil {
		return err
	}

	var businessUsers int64
	if err := h.db.Model(&models.User{}).Where("is_business = ?", true).Count(&businessUsers).Error; err != nil {
		return err
	}

	var adminUsers int64
	if err := h.db.Model(&models.User{}).Where("is_admin = ?", true).Count(&adminUsers).Error; err != nil {
		return err
	}

	var recentUsers []models.User
	if err := h.db.Order("created_at desc").Limit(5).Find(&recentUsers).Error; err != nil {
		return err
	}

	var recentCards []models.Card
	if err := h.db.
		Preload("Owner", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "first_name", "middle_name", "last_name", "email")
		}).
		Order("created_at desc").Limit(5).
		Find(&recentCards).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"stats": fiber.Map{
			"total_users":    totalUsers,
			"total_cards":    totalCards,
			"business_users": businessUsers,
			"admin_users":    adminUsers,
		},
		"recent_users": recentUsers,
		"recent_cards": cardViews(recentCards),
	})
}

func (h *AdminHandler) loadUser(c *fiber.Ctx) (*models.User, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return nil, err
	}

	return &user, nil
}
