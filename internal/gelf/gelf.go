package gelf

import (
	"encoding/json"
	"net"
	"os"
	"strings"
	"time"
)

// Writer sends GELF messages over UDP and implements io.Writer
// so it can be used with log.SetOutput via io.MultiWriter.
type Writer struct {
	conn     net.Conn
	hostname string
	service  string
}

// New creates a GELF UDP writer connected to addr (e.g. "172.17.0.1:12201").
func New(addr, service string) (*Writer, error) {
	conn, err := net.Dial("udp", addr)
	if err != nil {
		return nil, err
	}

	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = service
	}

	return &Writer{conn: conn, hostname: hostname, service: service}, nil
}

// Write implements io.Writer. Each call sends one GELF message.
func (w *Writer) Write(p []byte) (int, error) {
	payload, err := json.Marshal(w.message(string(p), time.Now()))
	if err != nil {
		return len(p), nil
	}
	// Fire-and-forget
	w.conn.Write(payload)
	return len(p), nil
}

func (w *Writer) Close() error {
	return w.conn.Close()
}

func (w *Writer) message(line string, now time.Time) map[string]any {
	short, full, _ := strings.Cut(stripPrefix(strings.TrimRight(line, "\n")), "\n")

	msg := map[string]any{
		"version":       "1.1",
		"host":          w.hostname,
		"short_message": short,
		"timestamp":     float64(now.UnixNano()) / 1e9,
		"level":         level(short),
		"_service":      w.service,
	}
	if full != "" {
		msg["full_message"] = full
	}
	return msg
}

// stripPrefix drops the standard log date/time prefix ("2006/01/02 15:04:05 ").
func stripPrefix(msg string) string {
	if len(msg) > 20 && msg[4] == '/' && msg[7] == '/' && msg[10] == ' ' && msg[13] == ':' {
		return msg[20:]
	}
	return msg
}

func level(short string) int {
	switch {
	case strings.HasPrefix(short, "PANIC:") || strings.Contains(short, "Fatal") ||
		strings.HasPrefix(short, "Database error"):
		return 3 // Error
	case strings.HasPrefix(short, "Warning:"):
		return 4
	default:
		return 6 // Informational
	}
}
