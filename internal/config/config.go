// Package config handles demo configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Assets   AssetsConfig   `yaml:"assets"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// AssetsConfig holds asset root and model placement settings.
type AssetsConfig struct {
	Root           string   `yaml:"root"`            // assets directory
	Models         []string `yaml:"models"`          // model identifiers to place in the scene
	VertexShader   string   `yaml:"vertex_shader"`   // filename under <root>/shaders
	FragmentShader string   `yaml:"fragment_shader"` // filename under <root>/shaders
}

// CameraConfig holds first-person camera settings.
type CameraConfig struct {
	Speed       float32 `yaml:"speed"`       // movement units per frame
	Sensitivity float32 `yaml:"sensitivity"` // degrees per pixel of mouse delta
	FOV         float32 `yaml:"fov"`         // vertical field of view, degrees
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   60,
		},
		Assets: AssetsConfig{
			Root:           "assets",
			Models:         []string{"crate", "lantern"},
			VertexShader:   "vertex.glsl",
			FragmentShader: "fragment.glsl",
		},
		Camera: CameraConfig{
			Speed:       0.05,
			Sensitivity: 0.05,
			FOV:         45.0,
			Near:        0.1,
			Far:         100.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
