package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "orderdesk",
}

var defaultCourier = Courier{
	PickupDaysAhead:   0,
	DeliveryDaysAhead: 2,
}

var defaultWhatsApp = WhatsApp{
	CountryCode: "60",
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       5,
	Burst:      10,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultCourier returns the default courier API settings.
func DefaultCourier() Courier {
	return defaultCourier
}

// DefaultWhatsApp returns the default WhatsApp gateway settings.
func DefaultWhatsApp() WhatsApp {
	return defaultWhatsApp
}

// DefaultRateLimit returns the default rate limiter settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
