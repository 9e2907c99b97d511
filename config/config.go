package config

type AppConfig struct {
	DemoConfig *DemoConfig
}

func New() *AppConfig {
	return &AppConfig{
		DemoConfig: NewDemoConfig(),
	}
}
