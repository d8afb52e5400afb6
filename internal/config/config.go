package config

// Config holds everything the commands need. Values come from flags,
// ~/.perdcomp.yaml and the environment, merged by viper in the root
// command.
type Config struct {
	StorePath string       `mapstructure:"store_path"`
	PageSize  int          `mapstructure:"page_size"`
	AliasFile string       `mapstructure:"alias_file"`
	Gemini    GeminiConfig `mapstructure:"gemini"`

	// MockExtraction swaps the Gemini call for a canned answer, for
	// offline runs and demos.
	MockExtraction bool `mapstructure:"mock_extraction"`
}

// GeminiConfig locates the extraction collaborator. The credential
// itself comes from the environment (application default credentials),
// never from this file.
type GeminiConfig struct {
	Project string `mapstructure:"project"`
	Region  string `mapstructure:"region"`
	Model   string `mapstructure:"model"`
}

// Default returns the safe defaults.
func Default() Config {
	return Config{
		PageSize: 10,
		Gemini: GeminiConfig{
			Region: "us-central1",
			Model:  "gemini-2.0-flash",
		},
	}
}
