package signup

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures the routes mounted by the signup module.
type RouterOptions struct {
	Landing Mountable
}

// Router creates the signup module router.
//
//	notifier := signup.NewServiceNotifier(notifySvc)
//	r.Mount("/", signup.Router(signup.RouterOptions{
//		Landing: signup.NewPageService(notifier, signup.WithLogger(log)),
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	if opts.Landing != nil {
		r.Mount("/", opts.Landing.Handle())
	}
	return r
}
