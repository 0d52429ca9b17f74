package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuracion del servicio.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
	DBMaxConns  int32  `env:"DB_MAX_CONNS" envDefault:"10"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret           string `env:"JWT_SECRET"`
	JWTIssuer           string `env:"JWT_ISSUER" envDefault:"prakriti-auth"`
	JWTAccessTTLMinutes int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"15"`

	// Limite de evaluaciones por usuario dentro de la ventana.
	AssessRateWindow time.Duration `env:"ASSESS_RATE_WINDOW" envDefault:"10m"`
	AssessRateMax    int           `env:"ASSESS_RATE_MAX" envDefault:"5"`

	ResultCacheTTL time.Duration `env:"RESULT_CACHE_TTL" envDefault:"30m"`

	// Ruta opcional a tablas de clasificacion en YAML.
	DoshaTablesPath string `env:"DOSHA_TABLES_PATH"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	IPRatePerMin       int      `env:"IP_RATE_PER_MIN" envDefault:"120"`
	IPRateBurst        int      `env:"IP_RATE_BURST" envDefault:"30"`
}

// LoadConfig carga la configuracion desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
