package sl

import (
	"log/slog"
	"strings"
)

func Module(mod string) slog.Attr {
	return slog.String("module", mod)
}

func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// Secret logs only the edges of a sensitive value.
func Secret(key, value string) slog.Attr {
	return slog.String(key, mask(value))
}

func mask(value string) string {
	if len(value) == 0 {
		return ""
	}
	if len(value) <= 8 {
		return strings.Repeat("*", len(value))
	}
	return value[:3] + strings.Repeat("*", len(value)-6) + value[len(value)-3:]
}
