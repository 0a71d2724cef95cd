package router

import (
	"net/http"

	"github.com/ferdiebergado/goexpress"
)

type goexpressRouter struct {
	handler *goexpress.Router
}

var _ Router = (*goexpressRouter)(nil)

func NewGoexpressRouter() Router {
	return &goexpressRouter{
		handler: goexpress.New(),
	}
}

func (r *goexpressRouter) Get(pattern string, handler http.HandlerFunc, mws ...Middleware) {
	r.handler.Get(pattern, handler, mws...)
}

func (r *goexpressRouter) Post(pattern string, handler http.HandlerFunc, mws ...Middleware) {
	r.handler.Post(pattern, handler, mws...)
}

func (r *goexpressRouter) Put(pattern string, handler http.HandlerFunc, mws ...Middleware) {
	r.handler.Put(pattern, handler, mws...)
}

func (r *goexpressRouter) Delete(pattern string, handler http.HandlerFunc, mws ...Middleware) {
	r.handler.Delete(pattern, handler, mws...)
}

func (r *goexpressRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

func (r *goexpressRouter) Group(prefix string, fn func(r Router), mws ...Middleware) {
	r.handler.Group(prefix, func(gr *goexpress.Router) {
		fn(&goexpressRouter{handler: gr})
	}, mws...)
}
