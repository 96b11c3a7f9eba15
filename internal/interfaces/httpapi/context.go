package httpapi

import "context"

type contextKey string

const operatorContextKey contextKey = "operator"

// withOperator threads the logged-in operator name through the request
// context. Operator identity is explicit per request; there is no
// process-wide session state.
func withOperator(ctx context.Context, operator string) context.Context {
	return context.WithValue(ctx, operatorContextKey, operator)
}

func operatorFromContext(ctx context.Context) (string, bool) {
	operator, ok := ctx.Value(operatorContextKey).(string)
	return operator, ok && operator != ""
}
