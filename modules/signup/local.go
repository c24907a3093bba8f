package signup

import (
	"context"
	"errors"
	"net/http"

	"github.com/apiflowstudio/landing/modules/notify"
)

// ServiceNotifier is a Notifier that calls notify.Service in-process. Errors
// are reported the way the HTTP endpoint would report them.
type ServiceNotifier struct {
	svc *notify.Service
}

func NewServiceNotifier(svc *notify.Service) *ServiceNotifier {
	return &ServiceNotifier{svc: svc}
}

func (n *ServiceNotifier) Notify(ctx context.Context, email string) error {
	_, err := n.svc.Notify(ctx, email)
	if err == nil {
		return nil
	}

	var nerr *notify.Error
	if errors.As(err, &nerr) {
		return &APIError{StatusCode: nerr.Code, Message: nerr.Message}
	}
	return &APIError{StatusCode: http.StatusInternalServerError}
}
