package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend URL, DB connection), security settings
// - default: Values common across all environments (timezone, timeout, booking window), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Backend   BackendConfig
	Redis     RedisConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Booking   BookingConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type BackendConfig struct {
	BaseURL string        `envconfig:"BACKEND_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"10s"`
}

type RedisConfig struct {
	Addr       string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password   string        `envconfig:"REDIS_PASSWORD"`
	DB         int           `envconfig:"REDIS_DB" default:"0"`
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"12h"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// JWTConfig controls how backend-issued tokens are decoded. Without a
// VerifySecret the signature is not checked; the backend re-validates every
// forwarded token anyway.
type JWTConfig struct {
	VerifySecret          string `envconfig:"JWT_VERIFY_SECRET"`
	UsernameRoleFallback  bool   `envconfig:"AUTH_USERNAME_ROLE_FALLBACK" default:"false"`
	DefaultSessionTimeout string `envconfig:"JWT_DEFAULT_TTL" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type BookingConfig struct {
	FirstSlot int    `envconfig:"BOOKING_FIRST_SLOT" default:"18"`
	LastSlot  int    `envconfig:"BOOKING_LAST_SLOT" default:"35"`
	LeadSlots int    `envconfig:"BOOKING_LEAD_SLOTS" default:"4"`
	MaxSlots  int    `envconfig:"BOOKING_MAX_SLOTS" default:"3"`
	TimeZone  string `envconfig:"BOOKING_TIMEZONE" default:"UTC"`
}

type RateLimitConfig struct {
	LoginPerMinute int `envconfig:"LOGIN_RATE_PER_MINUTE" default:"10"`
	LoginBurst     int `envconfig:"LOGIN_RATE_BURST" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c JWTConfig) SessionTTL() time.Duration {
	d, err := time.ParseDuration(c.DefaultSessionTimeout)
	if err != nil || d <= 0 {
		return 12 * time.Hour
	}
	return d
}

func (c BookingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid booking timezone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Backend: BackendConfig{
			BaseURL: "http://localhost:5000/api",
			Timeout: 5 * time.Second,
		},
		Redis: RedisConfig{
			Addr:       "localhost:16379",
			SessionTTL: time.Hour,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			VerifySecret:          "test-secret",
			DefaultSessionTimeout: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Booking: BookingConfig{
			FirstSlot: 18,
			LastSlot:  35,
			LeadSlots: 4,
			MaxSlots:  3,
			TimeZone:  "UTC",
		},
		RateLimit: RateLimitConfig{
			LoginPerMinute: 60,
			LoginBurst:     10,
		},
	}
}
