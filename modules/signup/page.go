package signup

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/apiflowstudio/landing/handler"
	"github.com/apiflowstudio/landing/pkg/binder"
	"github.com/apiflowstudio/landing/pkg/logger"
)

// SignupRequest is the form post. Datastar submits it form-encoded; JSON is
// accepted as well.
type SignupRequest struct {
	Email string `form:"email" json:"email"`
}

// PageService serves the landing page and its progressive form post.
type PageService struct {
	appName      string
	notifier     Notifier
	views        *Views
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
	now          func() time.Time
}

// PageOption configures PageService.
type PageOption func(*PageService)

func WithAppName(name string) PageOption {
	return func(s *PageService) {
		if name != "" {
			s.appName = name
		}
	}
}

func WithViews(v *Views) PageOption {
	return func(s *PageService) {
		s.views = v
	}
}

func WithLogger(l *slog.Logger) PageOption {
	return func(s *PageService) {
		if l != nil {
			s.log = l
		}
	}
}

// NewPageService creates the landing page service. Each POST drives a fresh
// Form through n.
func NewPageService(n Notifier, opts ...PageOption) *PageService {
	s := &PageService{
		appName:  "API Flow Studio",
		notifier: n,
		log:      slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.views = s.views.withDefaults()
	s.log = s.log.With(logger.Component("signup"))
	s.errorHandler = handler.PageErrorHandler(s.log, s.views.ErrorPage)
	return s
}

func (s *PageService) Handle() http.Handler {
	r := chi.NewRouter()
	r.NotFound(handler.ErrorResponder(s.errorHandler, handler.ErrNotFound))
	r.MethodNotAllowed(handler.ErrorResponder(s.errorHandler, handler.ErrMethodNotAllowed))

	r.Get("/", handler.Wrap(s.index,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	r.Post("/signup", handler.Wrap(s.signup,
		handler.WithBinders[handler.Context, SignupRequest](
			binder.Form(),       // regular and Datastar form posts
			binder.JSONOrSkip(), // scripted clients
		),
		handler.WithErrorHandler[handler.Context, SignupRequest](s.errorHandler),
		handler.WithDecorators(handler.LogRequests[handler.Context, SignupRequest](s.log)),
	))

	return r
}

func (s *PageService) index(ctx handler.Context, _ struct{}) handler.Response {
	return handler.Templ(s.views.Page(s.pageParams(State{Status: StatusIdle})))
}

func (s *PageService) signup(ctx handler.Context, req SignupRequest) handler.Response {
	state, err := NewForm(s.notifier).Submit(ctx, req.Email)
	if err != nil {
		s.log.ErrorContext(ctx, "signup form did not settle", logger.Error(err))
	}

	s.log.DebugContext(ctx, "signup form submitted",
		logger.Email(req.Email),
		slog.String("status", string(state.Status)),
	)

	return handler.TemplPartial(
		s.views.Form(state),
		s.views.Page(s.pageParams(state)),
		handler.WithTarget("#"+FormTarget),
		handler.WithPatchMode(handler.PatchOuter),
	)
}

func (s *PageService) pageParams(state State) PageParams {
	return PageParams{
		AppName: s.appName,
		Year:    s.now().Year(),
		State:   state,
	}
}
