package client

import "eletrigo/models"

// Service manages client accounts and self-service profile updates.
type Service interface {
	Register(input models.ClientRegistrationInput) (models.Client, error)
	// Login resolves an account by email. The portal performs no credential
	// check beyond the lookup.
	Login(email string) (models.Client, error)
	Get(id string) (models.Client, error)
	UpdateProfile(id string, input models.ClientProfileInput) (models.Client, error)
}
