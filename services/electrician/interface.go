package electrician

import "eletrigo/models"

// Service manages electrician accounts and the admin-driven approval flow.
type Service interface {
	Register(input models.ElectricianRegistrationInput) (models.Electrician, error)
	// Login resolves an account by email, like the client portal.
	Login(email string) (models.Electrician, error)
	Get(id string) (models.Electrician, error)
	SetApproval(id string, status models.ElectricianStatus) (models.Electrician, error)
}
