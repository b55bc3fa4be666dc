package config

// Store drivers
const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

const (
	minPort = 1
	maxPort = 65535
)

// DeadLetterFileName is the JSON-lines file under LogDir holding undeliverable events
const DeadLetterFileName = "event_deadletter.jsonl"
