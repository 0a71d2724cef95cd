package router

import "net/http"

type Middleware = func(next http.Handler) http.Handler

// Router registers handlers by method and path pattern.
type Router interface {
	http.Handler

	Get(pattern string, handler http.HandlerFunc, mws ...Middleware)
	Post(pattern string, handler http.HandlerFunc, mws ...Middleware)
	Put(pattern string, handler http.HandlerFunc, mws ...Middleware)
	Delete(pattern string, handler http.HandlerFunc, mws ...Middleware)

	// Group registers the routes added by fn under prefix. Every request
	// under prefix runs through mws, first one outermost, before the group's
	// own routes are matched.
	Group(prefix string, fn func(r Router), mws ...Middleware)
}
