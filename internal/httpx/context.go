package httpx

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	claimsKey    contextKey = "claims"
	requestIDKey contextKey = "requestID"
)

// ClaimsFrom retrieves the verified token claims from the request context.
func ClaimsFrom(r *http.Request) jwt.MapClaims {
	if v, ok := r.Context().Value(claimsKey).(jwt.MapClaims); ok {
		return v
	}
	return nil
}

// SubjectFrom retrieves the authenticated subject ("sub" claim) from the
// request context.
func SubjectFrom(r *http.Request) string {
	claims := ClaimsFrom(r)
	if claims == nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

// ContextWithClaims returns a new context carrying the verified claim set.
func ContextWithClaims(ctx context.Context, claims jwt.MapClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// RequestIDFrom retrieves the request ID from the request context.
func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithRequestID returns a new context carrying the request ID.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}
