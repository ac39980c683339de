package config

type Otel struct {
	ServiceName  string  `env:"OTEL_SERVICE_NAME" envDefault:"catalog-service"`
	CollectorURL string  `env:"OTEL_COLLECTOR_URL"`
	Insecure     bool    `env:"OTEL_INSECURE" envDefault:"true"`
	TraceIDRatio float64 `env:"OTEL_TRACE_ID_RATIO" envDefault:"0.1"`
}
