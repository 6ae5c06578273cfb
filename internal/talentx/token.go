package talentx

import (
	"context"
	"errors"
)

// TokenSource provides the bearer credential of the current identity.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a token loaded once, usually from a secret file.
type StaticToken string

func (t StaticToken) Token(context.Context) (string, error) {
	if t == "" {
		return "", errors.New("token is empty")
	}
	return string(t), nil
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func(ctx context.Context) (string, error)

func (f TokenFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}
