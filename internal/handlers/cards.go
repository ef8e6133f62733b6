package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/bizcard/internal/authz"
	"github.com/example/bizcard/internal/middleware"
	"github.com/example/bizcard/internal/models"
	"github.com/example/bizcard/internal/utils"
)

// CardHandler manages business listing CRUD and likes.
type CardHandler struct {
	db *gorm.DB
}

// NewCardHandler constructs CardHandler.
func NewCardHandler(db *gorm.DB) *CardHandler {
	return &CardHandler{db: db}
}

type cardRequest struct {
	Title       string         `json:"title"`
	Subtitle    string         `json:"subtitle"`
	Description string         `json:"description"`
	Phone       string         `json:"phone"`
	Image       models.Image   `json:"image"`
	Address     models.Address `json:"address"`
	// created_by and likes are never accepted from the client. Ownership
	// is fixed at creation and likes change only through the like endpoint.
}

func (r *cardRequest) validate() error {
	if err := validateLength("title", r.Title, 2, 100); err != nil {
		return err
	}
	if r.Subtitle != "" {
		if err := validateLength("subtitle", r.Subtitle, 0, 200); err != nil {
			return err
		}
	}
	if err := validateLength("description", r.Description, 10, 1000); err != nil {
		return err
	}
	if err := validateLength("phone", r.Phone, 9, 15); err != nil {
		return err
	}
	if err := validateImage(r.Image); err != nil {
		return err
	}
	return validateAddress(r.Address)
}

func (r *cardRequest) apply(card *models.Card) {
	card.Title = strings.TrimSpace(r.Title)
	card.Subtitle = strings.TrimSpace(r.Subtitle)
	card.Description = strings.TrimSpace(r.Description)
	card.Phone = strings.TrimSpace(r.Phone)
	card.Image = r.Image
	card.Address = r.Address
}

// List returns all cards, newest first, with owner and liker names resolved.
func (h *CardHandler) List(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	var cards []models.Card
	if err := pg.Apply(h.withRelations(h.db)).
		Order("created_at desc").
		Find(&cards).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"cards":   cardViews(cards),
	})
}

// Get returns a single card by id.
func (h *CardHandler) Get(c *fiber.Ctx) error {
	card, err := h.loadCard(c, true)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"card":    cardView(card),
	})
}

// Create publishes a new listing owned by the caller. The route gate
// already ensured the business capability.
func (h *CardHandler) Create(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
	}

	var req cardRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := req.validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	card := models.Card{CreatedBy: claims.UserID}
	req.apply(&card)

	if err := h.db.Create(&card).Error; err != nil {
		return err
	}

	created, err := h.reload(card.ID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"card":    cardView(created),
	})
}

// Update replaces all editable fields of a listing. Only the owner or an
// admin may update; ownership is checked after the fetch.
func (h *CardHandler) Update(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
	}

	var req cardRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := req.validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	card, err := h.loadCard(c, false)
	if err != nil {
		return err
	}

	if !authz.IsOwnerOrAdmin(claims, card.CreatedBy) {
		return fiber.NewError(fiber.StatusForbidden, "you can only edit your own listings")
	}

	req.apply(card)
	if err := h.db.Save(card).Error; err != nil {
		return err
	}

	updated, err := h.reload(card.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"card":    cardView(updated),
	})
}

// Delete removes a listing. Only the owner or an admin may delete.
func (h *CardHandler) Delete(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
	}

	card, err := h.loadCard(c, false)
	if err != nil {
		return err
	}

	if !authz.IsOwnerOrAdmin(claims, card.CreatedBy) {
		return fiber.NewError(fiber.StatusForbidden, "you can only delete your own listings")
	}

	if err := h.db.Select(clause.Associations).Delete(card).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"msg":     "listing deleted",
	})
}

// ToggleLike flips the caller's membership in a card's like set. The
// toggle is a conditional delete-then-insert against the join table, not
// a load-mutate-save, so concurrent toggles cannot duplicate a like.
func (h *CardHandler) ToggleLike(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
	}

	card, err := h.loadCard(c, false)
	if err != nil {
		return err
	}

	var liked bool
	err = h.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("card_id = ? AND user_id = ?", card.ID, claims.UserID).
			Delete(&models.CardLike{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			return nil
		}

		liked = true
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.CardLike{CardID: card.ID, UserID: claims.UserID}).Error
	})
	if err != nil {
		return err
	}

	updated, err := h.reload(card.ID)
	if err != nil {
		return err
	}

	msg := "listing unliked"
	if liked {
		msg = "listing liked"
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"msg":      msg,
		"card":     cardView(updated),
		"is_liked": liked,
	})
}

// ListMine returns the caller's own listings, newest first.
func (h *CardHandler) ListMine(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
	}

	var cards []models.Card
	if err := h.withRelations(h.db).
		Where("created_by = ?", claims.UserID).
		Order("created_at desc").
		Find(&cards).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"cards":   cardViews(cards),
	})
}

func (h *CardHandler) loadCard(c *fiber.Ctx, withRelations bool) (*models.Card, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "listing not found")
	}

	query := h.db
	if withRelations {
		query = h.withRelations(query)
	}

	var card models.Card
	if err := query.First(&card, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "listing not found")
		}
		return nil, err
	}

	return &card, nil
}

func (h *CardHandler) reload(id uuid.UUID) (*models.Card, error) {
	var card models.Card
	if err := h.withRelations(h.db).First(&card, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

func (h *CardHandler) withRelations(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Owner", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "first_name", "middle_name", "last_name", "email")
		}).
		Preload("Likes", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "first_name", "middle_name", "last_name")
		})
}

func cardView(card *models.Card) fiber.Map {
	likes := make([]fiber.Map, len(card.Likes))
	for i, liker := range card.Likes {
		likes[i] = fiber.Map{
			"id":   liker.ID,
			"name": liker.DisplayName(),
		}
	}

	view := fiber.Map{
		"id":          card.ID,
		"title":       card.Title,
		"subtitle":    card.Subtitle,
		"description": card.Description,
		"phone":       card.Phone,
		"image":       card.Image,
		"address":     card.Address,
		"created_by":  card.CreatedBy,
		"likes":       likes,
		"created_at":  card.CreatedAt,
		"updated_at":  card.UpdatedAt,
	}

	if card.Owner != nil {
		view["owner"] = fiber.Map{
			"id":    card.Owner.ID,
			"name":  card.Owner.DisplayName(),
			"email": card.Owner.Email,
		}
	}

	return view
}

func cardViews(cards []models.Card) []fiber.Map {
	views := make([]fiber.Map, len(cards))
	for i := range cards {
		views[i] = cardView(&cards[i])
	}
	return views
}
