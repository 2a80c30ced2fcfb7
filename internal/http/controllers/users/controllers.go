// Package users exposes the /user and /users endpoints.
package users

import svc "github.com/dropDatabas3/postwall/internal/http/services/users"

type Controllers struct {
	Account *AccountController
	Users   *UsersController
}

func NewControllers(s svc.Services) *Controllers {
	return &Controllers{
		Account: NewAccountController(s.Account),
		Users:   NewUsersController(s.Users),
	}
}
