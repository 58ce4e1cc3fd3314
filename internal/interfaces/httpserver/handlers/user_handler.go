package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"reel-server/reel-api/internal/domain/user"
	"reel-server/reel-api/internal/interfaces/httpserver/requests"
	"reel-server/reel-api/internal/interfaces/httpserver/responses"
)

// UserService defines the domain operations the handler needs.
type UserService interface {
	Create(ctx context.Context, params user.CreateParams) (int64, error)
	GetByID(ctx context.Context, id int64) (*user.User, error)
}

// UserHandler exposes user profile endpoints.
type UserHandler struct {
	service UserService
	log     zerolog.Logger
}

func NewUserHandler(service UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With().Str("component", "user-handler").Logger(),
	}
}

// Create godoc
// @Summary      Create user
// @Description  Inserts a user profile row and returns the generated id.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      requests.CreateUserRequest  true  "User fields"
// @Success      201      {object}  responses.CreateUserResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req requests.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{Message: "invalid request body"})
		return
	}

	userID, err := h.service.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.log.Error().Err(err).Msg("create user failed")
		responses.HandleError(c, err, responses.ErrorMessages{Failure: "Error creating user"})
		return
	}

	c.JSON(http.StatusCreated, responses.BuildCreateUserResponse(userID))
}

// Get godoc
// @Summary      Fetch user
// @Description  Returns a user profile row by primary key.
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  user.User
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	// Non-numeric ids match no row, same as a coerced SQL lookup would.
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{Message: "User not found"})
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", id).Msg("fetch user failed")
		responses.HandleError(c, err, responses.ErrorMessages{
			NotFound: "User not found",
			Failure:  "Error fetching user",
		})
		return
	}

	c.JSON(http.StatusOK, u)
}
