package users

import (
	"net/http"

	dto "github.com/dropDatabas3/postwall/internal/http/dto/users"
	httperrors "github.com/dropDatabas3/postwall/internal/http/errors"
	"github.com/dropDatabas3/postwall/internal/http/helpers"
	mw "github.com/dropDatabas3/postwall/internal/http/middlewares"
	svc "github.com/dropDatabas3/postwall/internal/http/services/users"
)

type AccountController struct {
	service svc.AccountService
}

func NewAccountController(service svc.AccountService) *AccountController {
	return &AccountController{service: service}
}

// SignUp handles POST /user/sign_up.
func (c *AccountController) SignUp(w http.ResponseWriter, r *http.Request) {
	var req dto.SignUpRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	resp, err := c.service.Register(r.Context(), req)
	if err != nil {
		httperrors.WriteError(w, r, err)
		return
	}
	helpers.WriteSuccess(w, resp)
}

// LogIn handles POST /user/log_in.
func (c *AccountController) LogIn(w http.ResponseWriter, r *http.Request) {
	var req dto.LogInRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	resp, err := c.service.LogIn(r.Context(), req)
	if err != nil {
		httperrors.WriteError(w, r, err)
		return
	}
	helpers.WriteSuccess(w, resp)
}

// UpdatePassword handles POST /user/update_password behind RequireAuth.
func (c *AccountController) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdatePasswordRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	resp, err := c.service.UpdatePassword(r.Context(), mw.GetUserID(r.Context()), req)
	if err != nil {
		httperrors.WriteError(w, r, err)
		return
	}
	helpers.WriteSuccess(w, resp)
}
