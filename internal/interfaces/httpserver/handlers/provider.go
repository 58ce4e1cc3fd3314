package handlers

import (
	"github.com/rs/zerolog"
)

// Provider wires HTTP handlers.
type Provider struct {
	User  *UserHandler
	Video *VideoHandler
}

func NewProvider(userService UserService, videoService VideoService, log zerolog.Logger) *Provider {
	return &Provider{
		User:  NewUserHandler(userService, log),
		Video: NewVideoHandler(videoService, log),
	}
}
