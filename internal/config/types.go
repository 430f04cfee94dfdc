package config

// ConfigLogger настройки логирования
type ConfigLogger struct {
	Level      string `mapstructure:"level"`
	Encoding   string `mapstructure:"encoding"`
	OutputPath string `mapstructure:"output_path"`
}

// ConfigCatalog настройки начального набора записей
type ConfigCatalog struct {
	// SeedFile - путь к YAML-файлу с начальными записями.
	// Пустое значение означает встроенный набор.
	SeedFile string `mapstructure:"seed_file"`
}

// ConfigUI настройки представления по умолчанию
type ConfigUI struct {
	// DefaultView - представление при старте сессии: timeline или table
	DefaultView string `mapstructure:"default_view"`
}

// Config основная структура конфигурации
type Config struct {
	Logger  *ConfigLogger  `mapstructure:"logger"`
	Catalog *ConfigCatalog `mapstructure:"catalog"`
	UI      *ConfigUI      `mapstructure:"ui"`
}

// Default возвращает конфигурацию со значениями по умолчанию.
// Используется, когда конфигурационный файл отсутствует.
func Default() *Config {
	return &Config{
		Logger: &ConfigLogger{
			Level:    "info",
			Encoding: "console",
		},
		Catalog: &ConfigCatalog{},
		UI: &ConfigUI{
			DefaultView: "timeline",
		},
	}
}

// Normalize заполняет отсутствующие секции значениями по умолчанию
func (c *Config) Normalize() {
	defaults := Default()
	if c.Logger == nil {
		c.Logger = defaults.Logger
	}
	if c.Logger.Level == "" {
		c.Logger.Level = defaults.Logger.Level
	}
	if c.Logger.Encoding == "" {
		c.Logger.Encoding = defaults.Logger.Encoding
	}
	if c.Catalog == nil {
		c.Catalog = defaults.Catalog
	}
	if c.UI == nil {
		c.UI = defaults.UI
	}
	if c.UI.DefaultView == "" {
		c.UI.DefaultView = defaults.UI.DefaultView
	}
}
