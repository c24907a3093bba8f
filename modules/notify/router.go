package notify

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures the routes mounted by the notify module.
type RouterOptions struct {
	Notify Mountable
}

// Router creates the notify module router.
//
//	svc := notify.NewService(sender, notify.WithLogger(log))
//	r.Mount("/api", notify.Router(notify.RouterOptions{
//		Notify: notify.NewHandler(svc, log),
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	if opts.Notify != nil {
		r.Mount("/notify", opts.Notify.Handle())
	}
	return r
}
