package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/bizcard/internal/config"
	"github.com/example/bizcard/internal/middleware"
	"github.com/example/bizcard/internal/models"
	"github.com/example/bizcard/internal/utils"
)

// UserHandler bundles dependencies for registration, login and profile endpoints.
type UserHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(db *gorm.DB, cfg *config.Config) *UserHandler {
	return &UserHandler{db: db, cfg: cfg}
}

type registerRequest struct {
	FirstName  string         `json:"first_name"`
	MiddleName string         `json:"middle_name"`
	LastName   string         `json:"last_name"`
	Phone      string         `json:"phone"`
	Email      string         `json:"email"`
	Password   string         `json:"password"`
	Image      models.Image   `json:"image"`
	Address    models.Address `json:"address"`
	IsBusiness bool           `json:"is_business"`
	// is_admin is deliberately absent: the admin flag can never be
	// requested at registration.
}

func (r *registerRequest) validate() error {
	if err := validateLength("first_name", r.FirstName, 2, 50); err != nil {
		return err
	}
	if err := validateLength("last_name", r.LastName, 2, 50); err != nil {
		return err
	}
	if err := validateLength("phone", r.Phone, 9, 15); err != nil {
		return err
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if len(r.Password) < 6 {
		return fieldError("password", "must be at least 6 characters")
	}
	if err := validateImage(r.Image); err != nil {
		return err
	}
	return validateAddress(r.Address)
}

// Register creates a new account. The admin flag is always forced false
// regardless of input; only an existing admin can grant it later.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := req.validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	if err := h.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusConflict, "email already in use")
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	user := models.User{
		FirstName:    strings.TrimSpace(req.FirstName),
		MiddleName:   strings.TrimSpace(req.MiddleName),
		LastName:     strings.TrimSpace(req.LastName),
		Phone:        strings.TrimSpace(req.Phone),
		Email:        email,
		PasswordHash: passwordHash,
		Image:        req.Image,
		Address:      req.Address,
		IsBusiness:   req.IsBusiness,
		IsAdmin:      false,
	}

	// The unique index can still fire if two registrations race past the
	// pre-check; surface that the same way as the pre-check.
	if err := h.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "email already in use")
		}
		return err
	}

	token, err := h.issueToken(&user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"user":    userSummary(&user),
		"token":   token,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates an existing account and issues a fresh token.
// Unknown email and wrong password are indistinguishable to the caller.
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email and password are required")
	}

	var user models.User
	err := h.db.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
		}
		return err
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := h.issueToken(&user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    userSummary(&user),
		"token":   token,
	})
}

// Me returns the caller's own record. A valid token whose user has since
// been deleted yields a clean 404.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", claims.UserID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

func (h *UserHandler) issueToken(user *models.User) (string, error) {
	return utils.GenerateToken(h.cfg.JWTSecret, utils.Claims{
		UserID:     user.ID,
		Email:      user.Email,
		IsAdmin:    user.IsAdmin,
		IsBusiness: user.IsBusiness,
	}, h.cfg.TokenExpires)
}

func userSummary(user *models.User) fiber.Map {
	return fiber.Map{
		"id":          user.ID,
		"first_name":  user.FirstName,
		"last_name":   user.LastName,
		"email":       user.Email,
		"is_business": user.IsBusiness,
		"is_admin":    user.IsAdmin,
	}
}
