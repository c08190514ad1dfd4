package api

import (
	"errors"
	"time"

	"github.com/Anirudh646/dfghjkddfghj/utils/response"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type APIServer struct {
	app           *fiber.App
	listenAddress string
}

func NewAPIServer(listenAddress string) *APIServer {
	return &APIServer{
		app: fiber.New(fiber.Config{
			AppName:      "admission-counselor",
			BodyLimit:    12 * 1024 * 1024, // essay PDFs are capped at 10MB
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 2 * time.Minute,
			ErrorHandler: ErrorHandler,
		}),
		listenAddress: listenAddress,
	}
}

// ErrorHandler renders errors that escape handlers in the response envelope
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch fe.Code {
		case fiber.StatusNotFound:
			return response.NotFound(c, "Route not found")
		case fiber.StatusMethodNotAllowed:
			return response.Error(c, fe.Code, fe.Message, "METHOD_NOT_ALLOWED")
		case fiber.StatusRequestEntityTooLarge:
			return response.Error(c, fe.Code, "Request body is too large", "PAYLOAD_TOO_LARGE")
		}
		if fe.Code < fiber.StatusInternalServerError {
			return response.BadRequest(c, fe.Message)
		}
	}
	zap.S().Errorw("unhandled error", "path", c.Path(), "method", c.Method(), "error", err)
	return response.InternalServerError(c, "")
}

func (s *APIServer) GetEngine() *fiber.App {
	return s.app
}

func (s *APIServer) Run() error {
	zap.S().Infow("starting API server", "address", s.listenAddress)
	return s.app.Listen(s.listenAddress)
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *APIServer) Shutdown(timeout time.Duration) error {
	return s.app.ShutdownWithTimeout(timeout)
}
