package bmeta

import "go.uber.org/zap"

const defaultBuildMeta = "N/A" // Значение по умолчанию

// Meta версия, дата и коммит сборки. Задаются через -ldflags.
type Meta struct {
	Version string
	Date    string
	Commit  string
}

// New подставляет N/A вместо незаданных значений.
func New(version, date, commit string) Meta {
	return Meta{
		Version: orDefault(version),
		Date:    orDefault(date),
		Commit:  orDefault(commit),
	}
}

// Log пишет метаданные сборки одной записью.
func (m Meta) Log(logger *zap.Logger) {
	logger.Info("Build info",
		zap.String("version", m.Version),
		zap.String("date", m.Date),
		zap.String("commit", m.Commit),
	)
}

func orDefault(v string) string {
	if v == "" {
		return defaultBuildMeta
	}
	return v
}
