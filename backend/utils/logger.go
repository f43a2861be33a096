package utils

import (
	"log"
	"os"
)

// LoggerConfig define la configuración del logger.
type LoggerConfig struct {
	// Salida (os.Stdout, fichero, etc.)
	Output *os.File
	// Colorear el prefijo en consola
	EnableColors bool
}

// InitLogger inicializa y devuelve el logger del proceso.
func InitLogger(config ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	prefix := "[Progreso] "
	if cfg.EnableColors {
		prefix = "\033[36m" + prefix + "\033[0m"
	}

	return log.New(cfg.Output, prefix, log.LstdFlags|log.LUTC)
}
