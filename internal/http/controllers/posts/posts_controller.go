package posts

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	dto "github.com/dropDatabas3/postwall/internal/http/dto/posts"
	httperrors "github.com/dropDatabas3/postwall/internal/http/errors"
	"github.com/dropDatabas3/postwall/internal/http/helpers"
	svc "github.com/dropDatabas3/postwall/internal/http/services/posts"
)

type PostsController struct {
	service svc.PostService
}

func NewPostsController(service svc.PostService) *PostsController {
	return &PostsController{service: service}
}

// List handles GET /posts?timeSort=&q=.
func (c *PostsController) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := dto.ListQuery{TimeSort: query.Get("timeSort")}
	if query.Has("q") {
		v := query.Get("q")
		q.Q = &v
	}

	out, err := c.service.List(r.Context(), q)
	if err != nil {
		httperrors.WriteError(w, r, err)
		return
	}
	helpers.WriteSuccess(w, out)
}

// Create handles POST /post.
func (c *PostsController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePostRequest
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

// Update handles PATCH /post/{id}.
func (c *PostsController) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdatePostRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	out, err := c.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httperrors.WriteError(w, r, err)
		return
	}
	helpers.WriteSuccess(w, out)
}

// Delete handles DELETE /post/{id}.
func (c *PostsController) Delete(w http.ResponseWriter, r *http.Request) {
	out, err := c.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperrors.WriteError(w, r, err)
		return
	}
	helpers.WriteSuccess(w, out)
}

// DeleteAll handles DELETE /posts.
func (c *PostsController) DeleteAll(w http.ResponseWriter, r *http.Request) {
	out, err := c.service.DeleteAll(r.Context())
	if err != nil {
		httperrors.WriteError(w, r, err)
		return
	}
	helpers.WriteSuccess(w, out)
}
