package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func collectFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	fields := make(log.Fields)
	for tag, fn := range ftm {
		value := fn(c, d)
		if strValue, ok := value.(string); ok {
			if strValue != "" {
				fields[tag] = strValue
			}
			continue
		}
		fields[tag] = value
	}
	return fields
}

// New создает middleware логирования запросов
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) > 0 {
		cfg = config[0]
	}
	pid := os.Getpid()
	ftm := getFuncTagMap(cfg)
	return func(c *fiber.Ctx) error {
		// состояние времени локально для каждого запроса
		d := &data{pid: pid, start: time.Now()}
		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions {
			return err
		}

		const message = "запрос api"
		if cfg.Logger == nil {
			log.WithFields(collectFields(ftm, c, d)).Info(message)
			return err
		}
		entity := cfg.Logger.WithFields(collectFields(ftm, c, d))
		if c.Response() != nil && c.Response().StatusCode() >= 300 {
			entity.Warn(message)
		} else {
			entity.Info(message)
		}
		return err
	}
}
