package log

import (
	"io"
	"os"
	"sort"
	"time"

	charm "github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
)

// IdentityKey is the c.Locals key under which guards leave the caller's email.
const IdentityKey = "identity.email"

var logger = charm.NewWithOptions(os.Stdout, charm.Options{
	Formatter:       charm.JSONFormatter,
	ReportTimestamp: true,
	TimeFormat:      time.RFC3339,
	Level:           charm.InfoLevel,
})

func SetOutput(w io.Writer) { logger.SetOutput(w) }

// SetLevel accepts debug, info, warn or error. Unknown values keep the current level.
func SetLevel(level string) {
	if l, err := charm.ParseLevel(level); err == nil {
		logger.SetLevel(l)
	}
}

func write(level charm.Level, kind string, c *fiber.Ctx, action string, err error, fields map[string]any) {
	kv := []any{"kind", kind}
	if c != nil {
		kv = append(kv, "ip", c.IP(), "method", c.Method(), "path", c.Path(), "status", c.Response().StatusCode())
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			kv = append(kv, "req_id", rid)
		}
		if email, ok := c.Locals(IdentityKey).(string); ok && email != "" {
			kv = append(kv, "email", email)
		}
	}
	if err != nil {
		kv = append(kv, "err", err.Error())
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		kv = append(kv, k, fields[k])
	}
	logger.Log(level, action, kv...)
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	write(charm.InfoLevel, "info", c, action, nil, fields)
}
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	write(charm.InfoLevel, "audit", c, action, nil, fields)
}
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	write(charm.WarnLevel, "security", c, action, nil, fields)
}
func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	write(charm.ErrorLevel, "error", c, action, err, fields)
}
