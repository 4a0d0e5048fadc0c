package fiberlog

import (
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	newApp := func() (*fiber.App, *test.Hook) {
		logger, hook := test.NewNullLogger()
		app := fiber.New()
		app.Use(New(Config{
			Logger: logger,
			Tags:   []string{TagStatus, TagLatency, TagMethod, TagPath},
		}))
		return app, hook
	}

	t.Run(`request fields are logged`, func(t *testing.T) {
		app, hook := newApp()
		app.Get("/ping", func(c *fiber.Ctx) error {
			return c.SendString("pong")
		})

		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
		require.Nil(t, err)

		require.Equal(t, 1, len(hook.Entries))
		entry := hook.LastEntry()
		require.Equal(t, logrus.InfoLevel, entry.Level)
		require.Equal(t, fiber.StatusOK, entry.Data[TagStatus])
		require.Equal(t, fiber.MethodGet, entry.Data[TagMethod])
		require.Equal(t, "/ping", entry.Data[TagPath])
	})

	t.Run(`error status is logged as warning`, func(t *testing.T) {
		app, hook := newApp()
		app.Get("/fail", func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusInternalServerError)
		})

		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/fail", nil))
		require.Nil(t, err)

		require.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	})

	t.Run(`latency is tracked per request`, func(t *testing.T) {
		app, hook := newApp()
		app.Get("/slow", func(c *fiber.Ctx) error {
			time.Sleep(50 * time.Millisecond)
			return c.SendString("ok")
		})
		app.Get("/fast", func(c *fiber.Ctx) error {
			return c.SendString("ok")
		})

		// быстрый запрос стартует позже и завершается раньше медленного,
		// общее состояние занижало бы время медленного запроса
		wg := sync.WaitGroup{}
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/slow", nil), 1000)
			require.Nil(t, err)
		}()
		go func() {
			defer wg.Done()
			time.Sleep(20 * time.Millisecond)
			_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/fast", nil), 1000)
			require.Nil(t, err)
		}()
		wg.Wait()

		for _, entry := range hook.AllEntries() {
			if entry.Data[TagPath] != "/slow" {
				continue
			}
			latency, err := time.ParseDuration(entry.Data[TagLatency].(string))
			require.Nil(t, err)
			require.Equal(t, true, latency >= 40*time.Millisecond)
		}
	})
}
