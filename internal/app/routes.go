package app

import (
	"net/http"

	"github.com/ferdiebergado/parentdesk/internal/admin"
	"github.com/ferdiebergado/parentdesk/internal/auth"
	"github.com/ferdiebergado/parentdesk/internal/child"
	"github.com/ferdiebergado/parentdesk/internal/conversation"
	"github.com/ferdiebergado/parentdesk/internal/middleware"
	"github.com/ferdiebergado/parentdesk/internal/platform/router"
	"github.com/ferdiebergado/parentdesk/internal/platform/validation"
)

func mountAuthRoutes(r router.Router, module *auth.Module) {
	handler := module.Handler()

	r.Group("/auth", func(gr router.Router) {
		gr.Post("/verify", handler.Verify, module.RequireToken())
	})
}

func mountAdminRoutes(r router.Router, handler *admin.Handler, requireToken func(http.Handler) http.Handler) {
	r.Group("/admin", func(gr router.Router) {
		gr.Get("/users", handler.ListUsers)
		gr.Get("/users/{id}", handler.FindUser)
		gr.Delete("/users/{id}", handler.DeleteUser)
		gr.Get("/stats", handler.Stats)
	}, requireToken, auth.RequireAdmin)
}

// bodyPipeline decodes and validates JSON request bodies. Routes put it
// after the token check so anonymous callers never reach the decoder.
type bodyPipeline struct {
	validator validation.Validator
	maxBytes  int64
}

func payload[T any](b bodyPipeline) []router.Middleware {
	return []router.Middleware{
		middleware.DecodePayload[T](b.maxBytes),
		middleware.ValidateInput[T](b.validator),
	}
}

// The collection paths carry no trailing slash, so these routes are
// registered on the root router instead of a prefix group.
func mountChildRoutes(r router.Router, handler *child.Handler, requireToken router.Middleware, body bodyPipeline) {
	save := append([]router.Middleware{requireToken}, payload[child.SaveRequest](body)...)

	r.Get("/children", handler.List, requireToken)
	r.Post("/children", handler.Create, save...)
	r.Put("/children/{id}", handler.Update, save...)
	r.Delete("/children/{id}", handler.Delete, requireToken)
}

func mountConversationRoutes(r router.Router, handler *conversation.Handler, requireToken router.Middleware, body bodyPipeline) {
	create := append([]router.Middleware{requireToken}, payload[conversation.CreateRequest](body)...)

	r.Get("/chat/conversations", handler.List, requireToken)
	r.Post("/chat/conversations", handler.Create, create...)
	r.Delete("/chat/conversations/{id}", handler.Delete, requireToken)
}
