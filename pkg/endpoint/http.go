package endpoint

import (
	"net/http"

	"github.com/go-kit/kit/log"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/abustany/back-blog/pkg/postservice"
	"github.com/abustany/back-blog/pkg/types"
)

type HttpEndpoint struct {
	handler http.Handler
	service postservice.Service
}

// Type assertion
var _ http.Handler = &HttpEndpoint{}

func NewHttpEndpoint(logger log.Logger, service postservice.Service) *HttpEndpoint {
	endpoint := &HttpEndpoint{
		service: service,
	}

	logger = log.With(logger, "module", "http")

	router := mux.NewRouter()

	withLogging := func(handler http.Handler) http.Handler {
		return WithLogging(logger, handler)
	}

	apiRouter := router.PathPrefix("/api").Subrouter()

	apiRouter.Methods("GET").Path("/posts").Handler(withLogging(http.HandlerFunc(endpoint.handleList)))
	apiRouter.Methods("GET").Path("/posts/{id}").Handler(withLogging(http.HandlerFunc(endpoint.handleGet)))
	apiRouter.Methods("POST").Path("/posts").Handler(withLogging(WithPost(endpoint.handleCreate)))
	apiRouter.Methods("PUT").Path("/posts/{id}").Handler(withLogging(WithPost(endpoint.handleUpdate)))
	apiRouter.Methods("DELETE").Path("/posts/{id}").Handler(withLogging(http.HandlerFunc(endpoint.handleDelete)))

	router.Methods("GET").Path("/health").Handler(withLogging(http.HandlerFunc(endpoint.handleHealth)))

	// CORS wraps the whole router so that preflight requests for any path get
	// answered instead of falling through to a 405.
	endpoint.handler = WithCORS(router)

	return endpoint
}

func (e *HttpEndpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	e.handler.ServeHTTP(w, r)
}

func (e *HttpEndpoint) handleList(w http.ResponseWriter, r *http.Request) {
	posts, err := e.service.List()

	if err != nil {
		WriteError(w, err)
		return
	}

	if posts == nil {
		// An empty store should serialize as [], not null
		posts = []types.Post{}
	}

	WriteJSON(w, http.StatusOK, posts)
}

func (e *HttpEndpoint) handleGet(w http.ResponseWriter, r *http.Request) {
	post, err := e.service.Get(mux.Vars(r)["id"])

	if err != nil {
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, &post)
}

func (e *HttpEndpoint) handleCreate(r *http.Request, post types.Post) (int, interface{}, error) {
	created, err := e.service.Create(post.Title, post.Content, post.Author)

	if err != nil {
		return 0, nil, errors.Wrap(err, "Error while creating post")
	}

	return http.StatusCreated, &created, nil
}

func (e *HttpEndpoint) handleUpdate(r *http.Request, post types.Post) (int, interface{}, error) {
	updated, err := e.service.Update(mux.Vars(r)["id"], post)

	if err != nil {
		return 0, nil, errors.Wrap(err, "Error while updating post")
	}

	return http.StatusOK, &updated, nil
}

func (e *HttpEndpoint) handleDelete(w http.ResponseWriter, r *http.Request) {
	err := e.service.Delete(mux.Vars(r)["id"])

	if err != nil {
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (e *HttpEndpoint) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
