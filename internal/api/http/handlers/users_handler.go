package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/devhive-labs/portfolio-service/internal/api/dto"
	"github.com/devhive-labs/portfolio-service/internal/auth"
	"github.com/devhive-labs/portfolio-service/internal/service"
)

// UsersHandler exposes the user lifecycle and approval-gated profile views.
type UsersHandler struct {
	auth     *service.AuthService
	profiles *service.ProfileService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService, profileService *service.ProfileService) *UsersHandler {
	return &UsersHandler{auth: authService, profiles: profileService}
}

// Signup handles POST /api/user/signup.
func (h *UsersHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	user, token, exp, err := h.auth.RegisterUser(c.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.NewUserResponse(user),
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Login handles POST /api/user/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	user, token, exp, err := h.auth.LoginUser(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.NewUserResponse(user),
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// List handles GET /api/user/, the public directory of approved profiles.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.profiles.ListDirectory(c.Context())
	if err != nil {
		return err
	}

	summaries := make([]dto.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, dto.NewUserSummary(&users[i]))
	}
	return c.JSON(fiber.Map{"data": summaries})
}

// Get handles GET /api/user/:id with the approval gate applied.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	view, err := h.profiles.GetProfile(c.Context(), c.Params("id"), principal)
	if err != nil {
		return err
	}

	if view.Full {
		return c.JSON(fiber.Map{"data": dto.NewUserResponse(view.User)})
	}
	return c.JSON(fiber.Map{"data": view.Fallback})
}

// Update handles PATCH /api/user/:id (owner or admin).
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.profiles.UpdateProfile(c.Context(), c.Params("id"), service.ProfileUpdate{
		Username:      req.Username,
		Title:         req.Title,
		Image:         req.Image,
		Phone:         req.Phone,
		PortfolioLink: req.PortfolioLink,
		Notes:         req.Notes,
		ResumePDF:     req.ResumePDF,
		CVPDF:         req.CVPDF,
		Bio:           req.Bio,
		Social:        req.Social,
		Skills:        req.Skills,
		CurrentStatus: req.CurrentStatus,
		Projects:      req.Projects,
		Experience:    req.Experience,
		Education:     req.Education,
		Certificates:  req.Certificates,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// Delete handles DELETE /api/user/:id (owner or admin).
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if err := h.profiles.DeleteUser(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "user deleted"})
}

// UpdateApproval handles PATCH /api/user/approval/:id (admin only).
func (h *UsersHandler) UpdateApproval(c *fiber.Ctx) error {
	var req dto.ApprovalRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	state, err := h.profiles.UpdateApproval(c.Context(), c.Params("id"), req.Approval)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"id": c.Params("id"), "approval": state}})
}
