package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	dto "github.com/dropDatabas3/postwall/internal/http/dto/users"
	httperrors "github.com/dropDatabas3/postwall/internal/http/errors"
	"github.com/dropDatabas3/postwall/internal/http/helpers"
	mw "github.com/dropDatabas3/postwall/internal/http/middlewares"
	svc "github.com/dropDatabas3/postwall/internal/http/services/users"
)

// UsersController serves the user administration routes and the caller's
// own profile.
type UsersController struct {
	service svc.UserService
}

func NewUsersController(service svc.UserService) *UsersController {
	return &UsersController{service: service}
}

// List handles GET /users.
func (c *UsersController) List(w http.ResponseWriter, r *http.Request) {
	out, err := c.service.List(r.Context())
	if err != nil {
		httperrors.WriteError(w, r, err)
		return
	}
	helpers.WriteSuccess(w, out)
}

// Create handles POST /user.
func (c *UsersController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SignUpRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	out, err := c.service.Create(r.Context(), req)
	if err != nil {
		httperrors.WriteError(w, r, err)
		return
	}
	helpers.WriteSuccess(w, out)
}

// Get handles GET /user/{id}.
func (c *UsersController) Get(w http.ResponseWriter, r *http.Request) {
	c.get(w, r, chi.URLParam(r, "id"))
}

// Profile handles GET /user/profile.
func (c *UsersController) Profile(w http.ResponseWriter, r *http.Request) {
	c.get(w, r, mw.GetUserID(r.Context()))
}

// Update handles PATCH /user/{id}.
func (c *UsersController) Update(w http.ResponseWriter, r *http.Request) {
	c.update(w, r, chi.URLParam(r, "id"))
}

// UpdateProfile handles PATCH /user/profile.
func (c *UsersController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	c.update(w, r, mw.GetUserID(r.Context()))
}

// Delete handles DELETE /user/{id}.
func (c *UsersController) Delete(w http.ResponseWriter, r *http.Request) {
	out, err := c.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperrors.WriteError(w, r, err)
		return
	}
	helpers.WriteSuccess(w, out)
}

// DeleteAll handles DELETE /users.
func (c *UsersController) DeleteAll(w http.ResponseWriter, r *http.Request) {
	out, err := c.service.DeleteAll(r.Context())
	if err != nil {
		httperrors.WriteError(w, r, err)
		return
	}
	helpers.WriteSuccess(w, out)
}

func (c *UsersController) get(w http.ResponseWriter, r *http.Request, id string) {
	out, err := c.service.Get(r.Context(), id)
	if err != nil {
		httperrors.WriteError(w, r, err)
		return
	}
	helpers.WriteSuccess(w, out)
}

func (c *UsersController) update(w http.ResponseWriter, r *http.Request, id string) {
	var req dto.UpdateUserRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	out, err := c.service.Update(r.Context(), id, req)
	if err != nil {
		httperrors.WriteError(w, r, err)
		return
	}
	helpers.WriteSuccess(w, out)
}
