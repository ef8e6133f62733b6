package handlers

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/example/bizcard/internal/models"
)

func validRegisterRequest() registerRequest {
	return registerRequest{
		FirstName: "Dana",
		LastName:  "Levi",
		Phone:     "052-123-4567",
		Email:     "dana@example.com",
		Password:  "secret1",
		Address: models.Address{
			Country:     "Israel",
			City:        "Tel Aviv",
			Street:      "Dizengoff Street",
			HouseNumber: 42,
		},
	}
}

func validCardRequest() cardRequest {
	return cardRequest{
		Title:       "Olive & Sage Cafe",
		Subtitle:    "Vegan Bistro",
		Description: "Plant-based Mediterranean cuisine with organic ingredients.",
		Phone:       "052-123-4567",
		Address: models.Address{
			Country:     "Israel",
			City:        "Tel Aviv",
			Street:      "Dizengoff Street",
			HouseNumber: 42,
		},
	}
}

func TestRegisterRequestValid(t *testing.T) {
	req := validRegisterRequest()
	if err := req.validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}

func TestRegisterRequestBounds(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*registerRequest)
		field  string
	}{
		{"short first name", func(r *registerRequest) { r.FirstName = "D" }, "first_name"},
		{"short last name", func(r *registerRequest) { r.LastName = "L" }, "last_name"},
		{"short phone", func(r *registerRequest) { r.Phone = "12345678" }, "phone"},
		{"long phone", func(r *registerRequest) { r.Phone = strings.Repeat("1", 16) }, "phone"},
		{"missing email", func(r *registerRequest) { r.Email = "" }, "email"},
		{"bad email", func(r *registerRequest) { r.Email = "not-an-email" }, "email"},
		{"short password", func(r *registerRequest) { r.Password = "12345" }, "password"},
		{"bad image url", func(r *registerRequest) { r.Image = models.Image{URL: "nope"} }, "image.url"},
		{"missing country", func(r *registerRequest) { r.Address.Country = "" }, "address.country"},
		{"missing city", func(r *registerRequest) { r.Address.City = "" }, "address.city"},
		{"missing street", func(r *registerRequest) { r.Address.Street = "" }, "address.street"},
		{"missing house number", func(r *registerRequest) { r.Address.HouseNumber = 0 }, "address.house_number"},
	}

	for _, tc := range cases {
		req := validRegisterRequest()
		tc.mutate(&req)
		err := req.validate()
		if err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		if !strings.HasPrefix(err.Error(), tc.field) {
			t.Fatalf("%s: error %q should name field %q", tc.name, err, tc.field)
		}
	}
}

func TestCardRequestValid(t *testing.T) {
	req := validCardRequest()
	if err := req.validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	req.Subtitle = ""
	if err := req.validate(); err != nil {
		t.Fatalf("empty subtitle should be allowed: %v", err)
	}
}

func TestCardRequestBounds(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*cardRequest)
		field  string
	}{
		{"short title", func(r *cardRequest) { r.Title = "A" }, "title"},
		{"long title", func(r *cardRequest) { r.Title = strings.Repeat("a", 101) }, "title"},
		{"long subtitle", func(r *cardRequest) { r.Subtitle = strings.Repeat("a", 201) }, "subtitle"},
		{"short description", func(r *cardRequest) { r.Description = "too short" }, "description"},
		{"long description", func(r *cardRequest) { r.Description = strings.Repeat("a", 1001) }, "description"},
		{"short phone", func(r *cardRequest) { r.Phone = "1234" }, "phone"},
		{"long phone", func(r *cardRequest) { r.Phone = strings.Repeat("1", 16) }, "phone"},
		{"bad image url", func(r *cardRequest) { r.Image = models.Image{URL: "://bad"} }, "image.url"},
		{"missing country", func(r *cardRequest) { r.Address.Country = "" }, "address.country"},
	}

	for _, tc := range cases {
		req := validCardRequest()
		tc.mutate(&req)
		err := req.validate()
		if err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		if !strings.HasPrefix(err.Error(), tc.field) {
			t.Fatalf("%s: error %q should name field %q", tc.name, err, tc.field)
		}
	}
}

func TestCardRequestNeverTouchesOwnership(t *testing.T) {
	card := models.Card{}
	req := validCardRequest()
	req.apply(&card)

	if card.CreatedBy != uuid.Nil {
		t.Fatal("apply must not set created_by")
	}
	if len(card.Likes) != 0 {
		t.Fatal("apply must not touch likes")
	}
}
