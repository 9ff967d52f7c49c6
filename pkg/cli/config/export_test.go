package config

// NewRepositoryForTest creates a Repository config for testing purposes
func NewRepositoryForTest(backend, badgerPath, sqlitePath string) *Repository {
	return &Repository{
		backend:    backend,
		badgerPath: badgerPath,
		sqlitePath: sqlitePath,
	}
}

// NewEngineForTest creates an Engine config for testing purposes
func NewEngineForTest(configPath string, topRisks int, threshold float64, format string) *Engine {
	return &Engine{
		configPath: configPath,
		topRisks:   topRisks,
		threshold:  threshold,
		format:     format,
	}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}
