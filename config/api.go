package config

// ServerConfig contains pointer channel HTTP server settings
type ServerConfig struct {
	Host         string     `yaml:"host" mapstructure:"host"`
	Port         int        `yaml:"port" mapstructure:"port"`
	ReadTimeout  int        `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout int        `yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout  int        `yaml:"idle_timeout" mapstructure:"idle_timeout"`
	CORS         CORSConfig `yaml:"cors" mapstructure:"cors"`
}

// CORSConfig restricts which browser origins may open the pointer channel.
// It is enabled by default; disabling it lets any web page drive the host.
type CORSConfig struct {
	Enabled        bool     `yaml:"enabled" mapstructure:"enabled"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// AllowsOrigin reports whether a websocket upgrade from origin should be accepted.
// An empty origin (non-browser client) is always allowed.
func (c CORSConfig) AllowsOrigin(origin string) bool {
	if !c.Enabled || origin == "" {
		return true
	}
	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}
