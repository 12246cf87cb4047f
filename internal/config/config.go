package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuracion del servicio.
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	JWTSecret string `env:"JWT_SECRET,required"`

	// Persistencia opcional: sin DATABASE_URL el servicio corre sin guardar
	// resultados (la persistencia es un colaborador, no parte del core).
	DatabaseURL string `env:"DATABASE_URL"`

	LLMProvider string `env:"LLM_PROVIDER" envDefault:"openai"`
	LLMAPIKey   string `env:"LLM_API_KEY,required"`
	LLMBaseURL  string `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel    string `env:"LLM_MODEL" envDefault:"gpt-5.1"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	InsightDailyTokenBudget int `env:"INSIGHT_DAILY_TOKEN_BUDGET" envDefault:"200000"`
	InsightCacheTTLHours    int `env:"INSIGHT_CACHE_TTL_HOURS" envDefault:"24"`
	InsightTimeoutSeconds   int `env:"INSIGHT_TIMEOUT_SECONDS" envDefault:"5"`
	InsightMaxAttempts      int `env:"INSIGHT_MAX_ATTEMPTS" envDefault:"3"`

	BreakerFailureThreshold int `env:"BREAKER_FAILURE_THRESHOLD" envDefault:"5"`
	BreakerRecoverySeconds  int `env:"BREAKER_RECOVERY_SECONDS" envDefault:"60"`
	BreakerHalfOpenRequests int `env:"BREAKER_HALF_OPEN_REQUESTS" envDefault:"3"`
}

// LoadConfig carga la configuracion desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
