package config

// Environment names
const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
	EnvironmentStaging     = "staging"
	EnvironmentProduction  = "prod"
)

// Example values shipped in .env.example that must never reach a real deployment
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)
