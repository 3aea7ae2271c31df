package notifier

import (
	"context"

	"portfolio-backend/internal/domain"
)

// FunctionInvoker is satisfied by *supabase.FunctionsClient.
type FunctionInvoker interface {
	Invoke(ctx context.Context, name string, body interface{}) error
}

// FunctionNotifier forwards the message to a serverless function that sends the email.
type FunctionNotifier struct {
	invoker  FunctionInvoker
	function string
}

func NewFunctionNotifier(invoker FunctionInvoker, function string) *FunctionNotifier {
	return &FunctionNotifier{invoker: invoker, function: function}
}

func (n *FunctionNotifier) Notify(ctx context.Context, msg domain.ContactMessage) error {
	return n.invoker.Invoke(ctx, n.function, msg)
}
