package endpoints

import (
	"github.com/factlens/factlens/internal/api"
)

// All returns all endpoint instances.
func All() []api.Endpoint {
	return []api.Endpoint{
		// Health endpoints
		&HealthEndpoint{},
		&StatusEndpoint{},

		// Verification endpoints
		&VerifyEndpoint{},
		&VerifyImageEndpoint{},

		// Call history endpoints
		&CallsEndpoint{},
	}
}
